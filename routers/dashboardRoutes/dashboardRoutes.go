package dashboardRoutes

import (
	dashboardControllers "scoremate/controllers/dashboard"
	"scoremate/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/summary", middleware.JWTMiddleware, dashboardControllers.Summary)
	dashboardGroup.Get("/series", middleware.JWTMiddleware, dashboardControllers.Series)
	dashboardGroup.Get("/breakdown", middleware.JWTMiddleware, dashboardControllers.Breakdown)
}
