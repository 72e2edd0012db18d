package services

import "math"

// activityMultipliers maps activity level strings to their daily-calorie
// multiplier. Unknown or empty levels fall back to the sedentary multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const sedentaryMultiplier = 1.2

type MetricsInput struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Sex           string
	ActivityLevel string
}

type Metrics struct {
	BMI           float64
	BMICategory   string
	BMR           int
	DailyCalories int
}

// ComputeMetrics derives BMI, BMI category, BMR (Mifflin-St Jeor) and the
// daily calorie target from a validated measurement input. Pure function, no
// failure modes.
//
// DailyCalories multiplies the unrounded BMR by the activity multiplier and
// rounds the product once; BMR itself is rounded independently for storage.
func ComputeMetrics(input MetricsInput) Metrics {
	heightM := input.HeightCm / 100
	bmi := math.Round(input.WeightKg/(heightM*heightM)*10) / 10

	bmr := 10*input.WeightKg + 6.25*input.HeightCm - 5*float64(input.Age)
	if input.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[input.ActivityLevel]
	if !ok {
		multiplier = sedentaryMultiplier
	}

	return Metrics{
		BMI:           bmi,
		BMICategory:   bmiCategory(bmi),
		BMR:           int(math.Round(bmr)),
		DailyCalories: int(math.Round(bmr * multiplier)),
	}
}

// bmiCategory buckets a BMI value with inclusive lower and exclusive upper
// bounds at 18.5, 25 and 30.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
