package dashboardController

import (
	"scoremate/database"
	"scoremate/middleware"
	"scoremate/models"
	"scoremate/reporting"
	"scoremate/scoring"

	"github.com/gofiber/fiber/v2"
)

// loadHistory fetches the authenticated user's records in insertion order and
// backfills legacy rows so every reporting function sees complete score sets.
func loadHistory(c *fiber.Ctx) ([]models.Prediction, bool) {
	username, ok := c.Locals("username").(string)
	if !ok {
		return nil, false
	}

	var records []models.Prediction
	if err := database.Database.Db.
		Where("username = ?", username).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, false
	}

	scoring.Backfill(records)
	return records, true
}

// Summary returns count, per-subject mean and per-subject maximum.
func Summary(c *fiber.Ctx) error {
	records, ok := loadHistory(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}

	summary := reporting.Summarize(records)
	if summary.Count == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No predictions yet.", summary)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary retrieved successfully.", summary)
}

// Series returns per-subject score series in insertion order for trend charts.
func Series(c *fiber.Ctx) error {
	records, ok := loadHistory(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series retrieved successfully.", fiber.Map{
		"total":  len(records),
		"series": reporting.Series(records),
	})
}

// Breakdown groups the history by a categorical dimension and averages the
// overall score per group.
func Breakdown(c *fiber.Ctx) error {
	records, ok := loadHistory(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}

	by := c.Query("by", "parental_education")
	groups, err := reporting.GroupAverage(records, by)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown dimension!", fiber.Map{
			"allowed": reporting.Dimensions,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Breakdown retrieved successfully.", fiber.Map{
		"by":     by,
		"groups": groups,
	})
}
