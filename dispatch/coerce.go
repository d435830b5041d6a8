package dispatch

import (
	"math"
	"strconv"
)

// IntInvalid is delivered in place of an integer that does not parse.
const IntInvalid = math.MinInt

// FloatInvalid is NaN; test for it with math.IsNaN.
var FloatInvalid = math.NaN()

func parseInt(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return IntInvalid
	}
	return v
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return FloatInvalid
	}
	return v
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
