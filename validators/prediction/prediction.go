package predictionValidator

import (
	"errors"

	"scoremate/middleware"
	"scoremate/scoring"

	"github.com/gofiber/fiber/v2"
)

// Predict validator middleware. Rejects out-of-vocabulary categoricals and
// out-of-range scores before the controller touches the model.
func Predict() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(scoring.Input)
		if err := c.BodyParser(input); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := scoring.ValidateInput(*input); err != nil {
			var verr *scoring.ValidationError
			if errors.As(err, &verr) {
				return middleware.ValidationErrorResponse(c, verr.Fields)
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedInput", input)
		return c.Next()
	}
}
