package chatValidator

import (
	"strings"

	"scoremate/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ask validator middleware
func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SessionID string `json:"sessionId"`
			Query     string `json:"query"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if _, err := uuid.Parse(reqData.SessionID); err != nil {
			errors["sessionId"] = "A valid session id is required!"
		}
		if strings.TrimSpace(reqData.Query) == "" {
			errors["query"] = "Query must not be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAsk", reqData)
		return c.Next()
	}
}
