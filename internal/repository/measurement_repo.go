package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saeid-a/HealthMetricsBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateMeasurementInput carries the validated inputs plus the metrics
// derived from them. The repository never computes derived fields itself.
type CreateMeasurementInput struct {
	WeightKg        float64
	HeightCm        float64
	Age             int
	Sex             string
	ActivityLevel   string
	BMI             float64
	BMICategory     string
	BMR             int
	DailyCalories   int
	MeasurementDate time.Time
}

type MeasurementRepository struct {
	db DBTX
}

func NewMeasurementRepository(db DBTX) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

func (r *MeasurementRepository) Insert(ctx context.Context, input CreateMeasurementInput) (*models.Measurement, error) {
	query := `
		INSERT INTO measurements (weight_kg, height_cm, age, sex, activity_level,
			bmi, bmi_category, bmr, daily_calories, measurement_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id, weight_kg, height_cm, age, sex, activity_level,
			bmi, bmi_category, bmr, daily_calories, measurement_date, created_at
	`

	row := r.db.QueryRow(
		ctx,
		query,
		input.WeightKg,
		input.HeightCm,
		input.Age,
		input.Sex,
		input.ActivityLevel,
		input.BMI,
		input.BMICategory,
		input.BMR,
		input.DailyCalories,
		input.MeasurementDate,
	)
	return scanMeasurement(row)
}

func (r *MeasurementRepository) ListAll(ctx context.Context) ([]models.Measurement, error) {
	query := `
		SELECT id, weight_kg, height_cm, age, sex, activity_level,
			bmi, bmi_category, bmr, daily_calories, measurement_date, created_at
		FROM measurements
		ORDER BY measurement_date DESC, created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := make([]models.Measurement, 0)
	for rows.Next() {
		measurement, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, *measurement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return measurements, nil
}

// DailyAverageBMI averages BMI per measurement day over the trailing window.
// Days without measurements produce no row.
func (r *MeasurementRepository) DailyAverageBMI(ctx context.Context, windowDays int) ([]models.BMITrendPoint, error) {
	query := `
		SELECT measurement_date AS day, AVG(bmi)::float8 AS avg_bmi
		FROM measurements
		WHERE measurement_date >= CURRENT_DATE - $1::int
		GROUP BY measurement_date
		ORDER BY measurement_date
	`

	rows, err := r.db.Query(ctx, query, windowDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.BMITrendPoint, 0)
	for rows.Next() {
		var day time.Time
		var point models.BMITrendPoint
		if err := rows.Scan(&day, &point.AvgBMI); err != nil {
			return nil, err
		}
		point.Day = day.Format("2006-01-02")
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func scanMeasurement(row pgx.Row) (*models.Measurement, error) {
	var measurement models.Measurement
	var measurementDate time.Time
	err := row.Scan(
		&measurement.ID,
		&measurement.WeightKg,
		&measurement.HeightCm,
		&measurement.Age,
		&measurement.Sex,
		&measurement.ActivityLevel,
		&measurement.BMI,
		&measurement.BMICategory,
		&measurement.BMR,
		&measurement.DailyCalories,
		&measurementDate,
		&measurement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	measurement.MeasurementDate = measurementDate.Format("2006-01-02")
	return &measurement, nil
}
