package main

import (
	"fmt"
	"strings"
)

// FormatDelta renders a delta percentage as received, two decimals, with
// an explicit sign when positive.
func FormatDelta(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		s = "0.00"
	}
	if v > 0 && s != "0.00" {
		s = "+" + s
	}
	return s + "%"
}

func FormatLapTime(seconds float64) string {
	return fmt.Sprintf("%.3fs", seconds)
}

func CompoundLabel(compound string) string {
	if strings.TrimSpace(compound) == "" {
		return "N/A"
	}
	return compound
}
