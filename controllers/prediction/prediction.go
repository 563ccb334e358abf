package predictionController

import (
	"errors"
	"log"

	"scoremate/database"
	"scoremate/middleware"
	"scoremate/ml"
	"scoremate/models"
	"scoremate/scoring"

	"github.com/gofiber/fiber/v2"
)

// Predict runs the score pipeline for the authenticated user and appends the
// result to their history. The computed scores are returned even when the
// insert fails; the record is then simply absent from future reads.
func Predict(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session", nil)
	}

	input, ok := c.Locals("validatedInput").(*scoring.Input)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	scores, err := scoring.PredictScores(ml.Model, *input)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			return middleware.ValidationErrorResponse(c, verr.Fields)
		}
		log.Printf("Model invocation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Prediction failed!", nil)
	}

	record := models.Prediction{
		Username:          username,
		Gender:            input.Gender,
		RaceEthnicity:     input.RaceEthnicity,
		ParentalEducation: input.ParentalEducation,
		Lunch:             input.Lunch,
		TestPrep:          input.TestPrep,
		ReadingScore:      input.ReadingScore,
		WritingScore:      input.WritingScore,
		Math:              &scores.Math,
		Science:           &scores.Science,
		Computer:          &scores.Computer,
		English:           &scores.English,
		OverallAverage:    &scores.OverallAverage,
	}

	if err := database.Database.Db.Create(&record).Error; err != nil {
		log.Printf("Error saving prediction: %v", err)
		// At-most-once durability: the scores the user just saw survive in
		// the response, the row does not.
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save prediction!", scores)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prediction saved successfully.", record)
}

// History returns the authenticated user's predictions in insertion order,
// with legacy rows backfilled in memory.
func History(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session", nil)
	}

	var records []models.Prediction
	if err := database.Database.Db.
		Where("username = ?", username).
		Order("id asc").
		Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}

	backfilled := scoring.Backfill(records)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions retrieved successfully.", fiber.Map{
		"predictions": records,
		"total":       len(records),
		"backfilled":  backfilled,
	})
}
