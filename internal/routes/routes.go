package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saeid-a/HealthMetricsBack/internal/config"
	"github.com/saeid-a/HealthMetricsBack/internal/events"
	"github.com/saeid-a/HealthMetricsBack/internal/handlers"
	"github.com/saeid-a/HealthMetricsBack/internal/repository"
	"github.com/saeid-a/HealthMetricsBack/internal/services"
	livews "github.com/saeid-a/HealthMetricsBack/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	measurementRepo := repository.NewMeasurementRepository(db)

	var publisher services.EventPublisher
	if cfg.AMQPUrl != "" {
		publisher = events.NewPublisher(cfg.AMQPUrl, cfg.AMQPQueue)
	}

	measurementService := services.NewMeasurementService(measurementRepo, publisher)

	feedHub := livews.NewHub()
	go feedHub.Run()

	measurementHandler := handlers.NewMeasurementHandler(measurementService, feedHub)

	api := app.Group("/api")

	measurements := api.Group("/measurements")
	measurements.Post("", measurementHandler.CreateMeasurement)
	measurements.Get("", measurementHandler.ListMeasurements)
	measurements.Get("/trends", measurementHandler.GetTrends)

	api.Use("/ws", measurementHandler.WebSocketUpgrade)
	api.Get("/ws", websocket.New(measurementHandler.HandleWebSocket))
}
