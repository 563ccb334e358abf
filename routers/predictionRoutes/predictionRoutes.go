package predictionRoutes

import (
	predictionControllers "scoremate/controllers/prediction"
	"scoremate/middleware"
	predictionValidators "scoremate/validators/prediction"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictionRoutes(app *fiber.App) {
	predictGroup := app.Group("/predict")

	predictGroup.Post("/", predictionValidators.Predict(), middleware.JWTMiddleware, predictionControllers.Predict)
	predictGroup.Get("/history", middleware.JWTMiddleware, predictionControllers.History)
}
