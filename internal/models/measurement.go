package models

import "time"

// Measurement is a single body measurement with the health metrics derived
// from it at write time. Records are immutable once created.
type Measurement struct {
	ID              int64     `json:"id"`
	WeightKg        float64   `json:"weight_kg"`
	HeightCm        float64   `json:"height_cm"`
	Age             int       `json:"age"`
	Sex             string    `json:"sex"`
	ActivityLevel   string    `json:"activity_level"`
	BMI             float64   `json:"bmi"`
	BMICategory     string    `json:"bmi_category"`
	BMR             int       `json:"bmr"`
	DailyCalories   int       `json:"daily_calories"`
	MeasurementDate string    `json:"measurement_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// BMITrendPoint is one day of the rolling BMI trend. Days without
// measurements produce no point.
type BMITrendPoint struct {
	Day    string  `json:"day"`
	AvgBMI float64 `json:"avg_bmi"`
}
