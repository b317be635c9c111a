package money

import "math"

// Amounts are carried as int64 cents everywhere in the application and only
// converted to two-decimal values at the JSON boundary. This keeps repeated
// additions exact; float64 is never summed directly.

// FromDecimal converts a decimal amount (e.g. 35.50) to cents.
// The value is rounded to the nearest cent to absorb float input noise.
func FromDecimal(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToDecimal converts cents to a decimal amount for display.
func ToDecimal(cents int64) float64 {
	return float64(cents) / 100
}
