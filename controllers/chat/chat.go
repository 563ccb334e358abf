package chatController

import (
	"encoding/json"
	"log"
	"time"

	"scoremate/database"
	"scoremate/middleware"
	"scoremate/models"
	"scoremate/reporting"
	"scoremate/scoring"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateSession starts a new chatbot conversation for the authenticated user.
func CreateSession(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session", nil)
	}

	session := models.ChatSession{
		ID:       uuid.NewString(),
		Username: username,
		Messages: []byte("[]"),
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		log.Printf("Error creating chat session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chat session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chat session created.", session)
}

// Ask answers a question over the user's stored predictions and appends the
// exchange to the session transcript.
func Ask(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session", nil)
	}

	reqData := new(struct {
		SessionID string `json:"sessionId"`
		Query     string `json:"query"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var session models.ChatSession
	if err := database.Database.Db.
		Where("id = ? AND username = ?", reqData.SessionID, username).
		First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat session not found!", nil)
	}

	var records []models.Prediction
	if err := database.Database.Db.
		Where("username = ?", username).
		Order("id asc").
		Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}
	scoring.Backfill(records)

	answer := reporting.Answer(reqData.Query, reporting.Summarize(records))

	var transcript []models.ChatMessage
	if err := json.Unmarshal(session.Messages, &transcript); err != nil {
		log.Printf("Corrupt transcript for session %s: %v", session.ID, err)
		transcript = nil
	}
	now := time.Now()
	transcript = append(transcript,
		models.ChatMessage{Role: "user", Text: reqData.Query, At: now},
		models.ChatMessage{Role: "bot", Text: answer, At: now},
	)

	raw, err := json.Marshal(transcript)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update transcript!", nil)
	}
	session.Messages = raw
	if err := database.Database.Db.Save(&session).Error; err != nil {
		log.Printf("Error saving transcript: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update transcript!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answered.", fiber.Map{
		"answer":    answer,
		"sessionId": session.ID,
	})
}

// History returns the transcript of one owned session.
func History(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session", nil)
	}

	sessionID := c.Params("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session id!", nil)
	}

	var session models.ChatSession
	if err := database.Database.Db.
		Where("id = ? AND username = ?", sessionID, username).
		First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat session not found!", nil)
	}

	var transcript []models.ChatMessage
	if err := json.Unmarshal(session.Messages, &transcript); err != nil {
		transcript = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transcript retrieved successfully.", fiber.Map{
		"sessionId": session.ID,
		"messages":  transcript,
	})
}
