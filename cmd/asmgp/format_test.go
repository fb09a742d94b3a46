package main

import (
	"math"
	"testing"
)

func TestFormatMinimalPrecision(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr float64
		want       string
	}{
		{"identical", 1.5, 1.5, "1.50"},
		{"differ at 1st decimal", 1.1, 1.2, "1.20"},
		{"differ at 2nd decimal", 1.11, 1.12, "1.120"},
		{"differ at 5th decimal", 0.123451, 0.123459, "0.123459"},
		{"very small difference", 1.0000000001, 1.0000000002, "1.0000000002"},
		{"zero vs small number", 0.0, 0.001, "0.0010"},
		{"NaN", 0.0, math.NaN(), "NaN"},
		{"infinity", 0.0, math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMinimalPrecision(tt.prev, tt.curr)
			if got != tt.want {
				t.Errorf("formatMinimalPrecision(%v, %v) = %q, want %q", tt.prev, tt.curr, got, tt.want)
			}
		})
	}
}
