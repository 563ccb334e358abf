package chatRoutes

import (
	chatControllers "scoremate/controllers/chat"
	"scoremate/middleware"
	chatValidators "scoremate/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat")

	chatGroup.Post("/session", middleware.JWTMiddleware, chatControllers.CreateSession)
	chatGroup.Post("/ask", chatValidators.Ask(), middleware.JWTMiddleware, chatControllers.Ask)
	chatGroup.Get("/history/:id", middleware.JWTMiddleware, chatControllers.History)
}
