package metrics

import "math"

// FormatFloat rounds num to precision decimal places.
func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
