package main

import (
	"log"

	"scoremate/config"
	"scoremate/database"
	"scoremate/ml"
	authRoutes "scoremate/routers/authRoutes"
	chatRoutes "scoremate/routers/chatRoutes"
	dashboardRoutes "scoremate/routers/dashboardRoutes"
	predictionRoutes "scoremate/routers/predictionRoutes"
	"scoremate/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// No prediction can be served without the artifact pair.
	if err := ml.LoadArtifacts(config.AppConfig.ModelDir); err != nil {
		log.Fatalf("Failed to load model artifacts from %s: %v", config.AppConfig.ModelDir, err)
	}
	log.Printf("Model artifacts loaded (version %s)", ml.Model.Version)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	predictionRoutes.SetupPredictionRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	chatRoutes.SetupChatRoutes(app)

	utils.InitializeStatsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
