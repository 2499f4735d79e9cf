package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ToFloatWithDefault parses s as a float64. A blank string yields defaultVal,
// anything else that does not parse is returned as an error.
func ToFloatWithDefault(s string, defaultVal float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
