package database

import (
	"fmt"
	"log"

	"scoremate/models"

	"gorm.io/gorm"
)

// migration is one step in the ordered schema history. Every step must be
// idempotent: it checks what exists before changing anything, so the whole
// list is safe to run on every start against a database of any prior version.
type migration struct {
	id    string
	apply func(db *gorm.DB) error
}

// derivedColumns are the prediction score columns added after the predictions
// table first shipped. Each is checked and added individually so a database
// stopped halfway through an upgrade still converges.
var derivedColumns = []string{"Math", "Science", "Computer", "English", "OverallAverage"}

var migrationList = []migration{
	{
		id: "001_create_users",
		apply: func(db *gorm.DB) error {
			if db.Migrator().HasTable(&models.User{}) {
				return nil
			}
			return db.Migrator().CreateTable(&models.User{})
		},
	},
	{
		id: "002_create_predictions",
		apply: func(db *gorm.DB) error {
			if db.Migrator().HasTable(&models.Prediction{}) {
				return nil
			}
			return db.Migrator().CreateTable(&models.Prediction{})
		},
	},
	{
		id: "003_add_derived_score_columns",
		apply: func(db *gorm.DB) error {
			for _, col := range derivedColumns {
				if db.Migrator().HasColumn(&models.Prediction{}, col) {
					continue
				}
				if err := db.Migrator().AddColumn(&models.Prediction{}, col); err != nil {
					return fmt.Errorf("add column %s: %w", col, err)
				}
			}
			return nil
		},
	},
	{
		id: "004_create_chat_sessions",
		apply: func(db *gorm.DB) error {
			if db.Migrator().HasTable(&models.ChatSession{}) {
				return nil
			}
			return db.Migrator().CreateTable(&models.ChatSession{})
		},
	},
}

// RunMigrations applies the migration list in order. Additive only: no step
// drops a table, a column, or a row.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	for _, m := range migrationList {
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.id, err)
		}
	}

	log.Println("Migrations completed successfully.")
	return nil
}
