package service

import "github.com/shopspring/decimal"

// average returns the arithmetic mean of values rounded half away from zero
// to places decimals, or 0 for an empty input.
func average(values []float64, places int32) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(values)))).Round(places).Float64()
	return avg
}

func sum(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}
