package services

import "testing"

func TestComputeMetricsReferenceExample(t *testing.T) {
	// Locks the rounding order: daily calories come from the unrounded BMR
	// (1648.75 * 1.55 = 2555.5625 -> 2556), not from the stored BMR.
	metrics := ComputeMetrics(MetricsInput{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		Sex:           "male",
		ActivityLevel: "moderate",
	})

	if metrics.BMI != 22.9 {
		t.Fatalf("expected BMI 22.9, got %v", metrics.BMI)
	}
	if metrics.BMICategory != "Normal" {
		t.Fatalf("expected category Normal, got %q", metrics.BMICategory)
	}
	if metrics.BMR != 1649 {
		t.Fatalf("expected BMR 1649, got %d", metrics.BMR)
	}
	if metrics.DailyCalories != 2556 {
		t.Fatalf("expected daily calories 2556, got %d", metrics.DailyCalories)
	}
}

func TestComputeMetricsFemaleFormula(t *testing.T) {
	metrics := ComputeMetrics(MetricsInput{
		WeightKg:      60,
		HeightCm:      165,
		Age:           25,
		Sex:           "female",
		ActivityLevel: "light",
	})

	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	if metrics.BMR != 1345 {
		t.Fatalf("expected BMR 1345, got %d", metrics.BMR)
	}
	// 1345.25 * 1.375 = 1849.71875
	if metrics.DailyCalories != 1850 {
		t.Fatalf("expected daily calories 1850, got %d", metrics.DailyCalories)
	}
	if metrics.BMI != 22.0 {
		t.Fatalf("expected BMI 22.0, got %v", metrics.BMI)
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi      float64
		expected string
	}{
		{16.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{24.999, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{41.3, "Obese"},
	}

	for _, tc := range cases {
		if got := bmiCategory(tc.bmi); got != tc.expected {
			t.Errorf("bmiCategory(%v) = %q, expected %q", tc.bmi, got, tc.expected)
		}
	}
}

func TestCategoryUsesRoundedBMI(t *testing.T) {
	// Raw BMI 24.96 rounds to 25.0 and must land in Overweight.
	metrics := ComputeMetrics(MetricsInput{
		WeightKg:      76.44,
		HeightCm:      175,
		Age:           30,
		Sex:           "male",
		ActivityLevel: "sedentary",
	})

	if metrics.BMI != 25.0 {
		t.Fatalf("expected BMI 25.0, got %v", metrics.BMI)
	}
	if metrics.BMICategory != "Overweight" {
		t.Fatalf("expected category Overweight, got %q", metrics.BMICategory)
	}
}

func TestActivityMultipliers(t *testing.T) {
	// BMR for the reference male input is 1648.75 unrounded.
	cases := []struct {
		activity string
		expected int
	}{
		{"sedentary", 1979},   // 1648.75 * 1.2 = 1978.5
		{"light", 2267},       // 1648.75 * 1.375 = 2267.03125
		{"moderate", 2556},    // 1648.75 * 1.55 = 2555.5625
		{"active", 2844},      // 1648.75 * 1.725 = 2844.09375
		{"very_active", 3133}, // 1648.75 * 1.9 = 3132.625
		{"extreme", 1979},     // unknown level falls back to sedentary
		{"", 1979},            // missing level falls back to sedentary
	}

	for _, tc := range cases {
		metrics := ComputeMetrics(MetricsInput{
			WeightKg:      70,
			HeightCm:      175,
			Age:           30,
			Sex:           "male",
			ActivityLevel: tc.activity,
		})
		if metrics.DailyCalories != tc.expected {
			t.Errorf("activity %q: expected daily calories %d, got %d",
				tc.activity, tc.expected, metrics.DailyCalories)
		}
	}
}
