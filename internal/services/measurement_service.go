package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/saeid-a/HealthMetricsBack/internal/models"
	"github.com/saeid-a/HealthMetricsBack/internal/repository"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidValues    = errors.New("values must be positive")
	ErrValuesOutOfRange = errors.New("values exceed allowed maximums")
	ErrInvalidSex       = errors.New("invalid sex")
	ErrInvalidDate      = errors.New("invalid measurement date")
)

const (
	trendWindowDays = 30

	maxWeightKg = 500
	maxHeightCm = 300
	maxAge      = 150

	dateLayout = "2006-01-02"
)

type measurementStore interface {
	Insert(ctx context.Context, input repository.CreateMeasurementInput) (*models.Measurement, error)
	ListAll(ctx context.Context) ([]models.Measurement, error)
	DailyAverageBMI(ctx context.Context, windowDays int) ([]models.BMITrendPoint, error)
}

// EventPublisher emits a notification after a measurement has been stored.
// Publish failures are logged and never surfaced to the caller.
type EventPublisher interface {
	MeasurementCreated(measurement *models.Measurement) error
}

type CreateMeasurementInput struct {
	WeightKg        float64
	HeightCm        float64
	Age             int
	Sex             string
	ActivityLevel   string
	MeasurementDate string
}

type MeasurementService struct {
	repo      measurementStore
	publisher EventPublisher
	now       func() time.Time
}

func NewMeasurementService(repo measurementStore, publisher EventPublisher) *MeasurementService {
	return &MeasurementService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create validates the submission, derives the health metrics and persists
// the measurement. No write happens when validation fails.
func (s *MeasurementService) Create(ctx context.Context, input CreateMeasurementInput) (*models.Measurement, error) {
	if input.WeightKg == 0 || input.HeightCm == 0 || input.Age == 0 || input.Sex == "" {
		return nil, ErrMissingFields
	}
	if input.WeightKg < 0 || input.HeightCm < 0 || input.Age < 0 {
		return nil, ErrInvalidValues
	}
	if input.WeightKg > maxWeightKg || input.HeightCm > maxHeightCm || input.Age > maxAge {
		return nil, ErrValuesOutOfRange
	}
	if input.Sex != "male" && input.Sex != "female" {
		return nil, ErrInvalidSex
	}

	measurementDate, err := s.resolveMeasurementDate(input.MeasurementDate)
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(MetricsInput{
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		Age:           input.Age,
		Sex:           input.Sex,
		ActivityLevel: input.ActivityLevel,
	})

	measurement, err := s.repo.Insert(ctx, repository.CreateMeasurementInput{
		WeightKg:        input.WeightKg,
		HeightCm:        input.HeightCm,
		Age:             input.Age,
		Sex:             input.Sex,
		ActivityLevel:   input.ActivityLevel,
		BMI:             metrics.BMI,
		BMICategory:     metrics.BMICategory,
		BMR:             metrics.BMR,
		DailyCalories:   metrics.DailyCalories,
		MeasurementDate: measurementDate,
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.MeasurementCreated(measurement); err != nil {
			log.Printf("publish measurement created event: %v", err)
		}
	}

	return measurement, nil
}

func (s *MeasurementService) List(ctx context.Context) ([]models.Measurement, error) {
	return s.repo.ListAll(ctx)
}

// BMITrend returns the per-day average BMI over the trailing 30 days. Days
// without measurements are absent from the series; an empty window yields an
// empty slice, not an error.
func (s *MeasurementService) BMITrend(ctx context.Context) ([]models.BMITrendPoint, error) {
	return s.repo.DailyAverageBMI(ctx, trendWindowDays)
}

// resolveMeasurementDate defaults an absent date to the current UTC calendar
// date. Dates are timezone-naive; no future-date check is applied.
func (s *MeasurementService) resolveMeasurementDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
