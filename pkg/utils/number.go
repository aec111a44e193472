package utils

import "math"

// RoundTo arredonda para o número de casas informado; NaN e infinitos viram 0
func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	scale := math.Pow10(places)
	return math.Round(f*scale) / scale
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}
