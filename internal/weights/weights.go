// Package weights estimates one-rep maxes (Epley) and derives working loads.
// Invalid input never errors: it yields 0, or nil where "no value" must be
// told apart from a real zero.
package weights

import "math"

// EstimateOneRepMax applies Epley: weight * (1 + reps/30), rounded to 0.1 kg.
// A true single returns the weight as it is.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return Round(weight*(1+float64(reps)/30), 1)
}

// WeightForTargetReps is the inverse of EstimateOneRepMax.
func WeightForTargetReps(oneRepMax float64, targetReps int) float64 {
	if oneRepMax <= 0 || targetReps <= 0 {
		return 0
	}
	if targetReps == 1 {
		return oneRepMax
	}
	return Round(oneRepMax/(1+float64(targetReps)/30), 1)
}

// SuggestWeightFromLastRecord estimates the 1RM from the last logged set and
// inverts it for the prescribed rep count.
func SuggestWeightFromLastRecord(usedWeight float64, repsPerformed, targetReps int) *float64 {
	if usedWeight <= 0 || repsPerformed <= 0 || targetReps <= 0 {
		return nil
	}
	w := WeightForTargetReps(EstimateOneRepMax(usedWeight, repsPerformed), targetReps)
	if w <= 0 {
		return nil
	}
	return &w
}

// MaxBodyWeightKg bounds a plausible body weight, matching player records.
const MaxBodyWeightKg = 400

// ValidBodyWeight reports whether kg is a finite weight in (0, MaxBodyWeightKg).
func ValidBodyWeight(kg float64) bool {
	return !math.IsNaN(kg) && !math.IsInf(kg, 0) && kg > 0 && kg < MaxBodyWeightKg
}

// RelativeStrength is maxWeight per kilo of body weight, 2 decimals. It is
// nil only when the body weight is unusable; no lifted weight gives 0.
func RelativeStrength(maxWeight, bodyWeightKg float64) *float64 {
	if !ValidBodyWeight(bodyWeightKg) {
		return nil
	}
	rs := 0.0
	if maxWeight > 0 && !math.IsInf(maxWeight, 0) {
		rs = Round(maxWeight/bodyWeightKg, 2)
	}
	return &rs
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
