package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/HealthMetricsBack/internal/models"
	"github.com/saeid-a/HealthMetricsBack/internal/services"
	livews "github.com/saeid-a/HealthMetricsBack/internal/websocket"
)

type measurementService interface {
	Create(ctx context.Context, input services.CreateMeasurementInput) (*models.Measurement, error)
	List(ctx context.Context) ([]models.Measurement, error)
	BMITrend(ctx context.Context) ([]models.BMITrendPoint, error)
}

type MeasurementHandler struct {
	service measurementService
	hub     *livews.Hub
}

func NewMeasurementHandler(service measurementService, hub *livews.Hub) *MeasurementHandler {
	return &MeasurementHandler{
		service: service,
		hub:     hub,
	}
}

// createMeasurementRequest uses the camelCase field names existing clients
// submit; stored records go out in snake_case via the model's tags.
type createMeasurementRequest struct {
	WeightKg        float64 `json:"weightKg"`
	HeightCm        float64 `json:"heightCm"`
	Age             int     `json:"age"`
	Sex             string  `json:"sex"`
	Activity        string  `json:"activity"`
	MeasurementDate string  `json:"measurementDate"`
}

func (h *MeasurementHandler) CreateMeasurement(c *fiber.Ctx) error {
	var req createMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	measurement, err := h.service.Create(c.Context(), services.CreateMeasurementInput{
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
		Age:             req.Age,
		Sex:             req.Sex,
		ActivityLevel:   req.Activity,
		MeasurementDate: req.MeasurementDate,
	})
	if err != nil {
		if message := validationMessage(err); message != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
		}
		log.Printf("create measurement: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create measurement"})
	}

	if h.hub != nil {
		h.hub.BroadcastMeasurement(measurement)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"measurement": measurement})
}

func (h *MeasurementHandler) ListMeasurements(c *fiber.Ctx) error {
	measurements, err := h.service.List(c.Context())
	if err != nil {
		log.Printf("list measurements: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch measurements"})
	}

	return c.JSON(fiber.Map{"rows": measurements})
}

func (h *MeasurementHandler) GetTrends(c *fiber.Ctx) error {
	points, err := h.service.BMITrend(c.Context())
	if err != nil {
		log.Printf("fetch trends: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trends"})
	}

	return c.JSON(fiber.Map{"rows": points})
}

// validationMessage maps service validation errors to their client-facing
// message. Empty string means the error is not a validation failure.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, services.ErrInvalidValues):
		return "Invalid values: must be positive numbers"
	case errors.Is(err, services.ErrValuesOutOfRange):
		return "Invalid values: exceed allowed maximums"
	case errors.Is(err, services.ErrInvalidSex):
		return "sex must be one of: male, female"
	case errors.Is(err, services.ErrInvalidDate):
		return "measurementDate must be formatted as YYYY-MM-DD"
	default:
		return ""
	}
}
