package main

import (
	"fmt"
	"math"
)

// formatMinimalPrecision returns curr formatted with the minimum decimal
// precision needed to visibly distinguish it from prev, plus one extra
// digit for clarity — so consecutive fitness-improvement lines in the
// progress log never look identical to the eye.
func formatMinimalPrecision(prev, curr float64) string {
	if math.IsNaN(prev) || math.IsNaN(curr) || math.IsInf(prev, 0) || math.IsInf(curr, 0) || prev == curr {
		return fmt.Sprintf("%.2f", curr)
	}

	const maxPrecision = 10
	for precision := 1; precision <= maxPrecision; precision++ {
		format := fmt.Sprintf("%%.%df", precision)
		if fmt.Sprintf(format, prev) != fmt.Sprintf(format, curr) {
			clarity := precision + 1
			if clarity > maxPrecision {
				clarity = maxPrecision
			}
			return fmt.Sprintf(fmt.Sprintf("%%.%df", clarity), curr)
		}
	}
	return fmt.Sprintf(fmt.Sprintf("%%.%df", maxPrecision), curr)
}
