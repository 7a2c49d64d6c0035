package entity

import (
	"math"
	"strconv"
	"strings"
)

// RoundCents rounds a BRL amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatBRL renders an amount the way receipts show it, e.g. "R$ 45,90".
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(RoundCents(v), 'f', 2, 64), ".", ",", 1)
}
