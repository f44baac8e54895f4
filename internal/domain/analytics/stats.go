package analytics

import "math"

// Slope returns the ordinary least-squares slope of values against their
// index (x = 0..n-1). At least two values are required.
func Slope(values []float64) (float64, bool) {
	n := float64(len(values))
	if len(values) < 2 {
		return 0, false
	}

	sumX := n * (n - 1) / 2
	var sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	return (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX), true
}

func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) (float64, bool) {
	mean, ok := Mean(values)
	if !ok {
		return 0, false
	}
	var squares float64
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}
	return math.Sqrt(squares / float64(len(values))), true
}

// ConsistencyRating buckets a rank standard deviation. Lower deviation is
// more consistent.
type ConsistencyRating string

const (
	RatingElite    ConsistencyRating = "Elite"
	RatingVeryGood ConsistencyRating = "Very Good"
	RatingGood     ConsistencyRating = "Good"
	RatingAverage  ConsistencyRating = "Average"
	RatingVolatile ConsistencyRating = "Volatile"
)

func RateConsistency(stdDev float64) ConsistencyRating {
	switch {
	case stdDev < 10:
		return RatingElite
	case stdDev < 20:
		return RatingVeryGood
	case stdDev < 30:
		return RatingGood
	case stdDev < 50:
		return RatingAverage
	default:
		return RatingVolatile
	}
}

// Percentile returns the share of values that are <= value, in percent.
func Percentile(value float64, values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v <= value {
			count++
		}
	}
	return float64(count) / float64(len(values)) * 100
}

func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
