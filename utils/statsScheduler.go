package utils

import (
	"log"
	"time"

	"scoremate/config"
	"scoremate/database"
	"scoremate/models"

	"github.com/robfig/cron/v3"
)

// InitializeStatsScheduler starts the daily prediction volume log job. Read
// only: it counts, it never mutates.
func InitializeStatsScheduler() {
	log.Println("[STATS-SCHEDULER] Initializing stats scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.StatsCron, LogPredictionVolume); err != nil {
		log.Printf("[STATS-SCHEDULER] Invalid schedule %q: %v", config.AppConfig.StatsCron, err)
		return
	}

	c.Start()
	log.Printf("[STATS-SCHEDULER] Stats scheduler started - schedule %q", config.AppConfig.StatsCron)
}

// LogPredictionVolume logs total and last-24h prediction counts.
func LogPredictionVolume() {
	db := database.Database.Db

	var total int64
	if err := db.Model(&models.Prediction{}).Count(&total).Error; err != nil {
		log.Printf("[STATS-SCHEDULER] Error counting predictions: %v", err)
		return
	}

	var recent int64
	since := time.Now().Add(-24 * time.Hour)
	if err := db.Model(&models.Prediction{}).Where("created_at >= ?", since).Count(&recent).Error; err != nil {
		log.Printf("[STATS-SCHEDULER] Error counting recent predictions: %v", err)
		return
	}

	log.Printf("[STATS-SCHEDULER] Predictions stored: %d total, %d in the last 24h", total, recent)
}
