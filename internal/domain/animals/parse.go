package animals

import (
	"math"
	"regexp"
	"strconv"
)

// Gramática fija, sin locale: "." como separador decimal, sin espacios alrededor,
// sin NaN/Inf ni hex.
var floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// parseAge acepta signo opcional + dígitos, dentro de int32.
func parseAge(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseMeasure se usa para peso y altura.
func parseMeasure(s string) (float64, bool) {
	if !floatPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
