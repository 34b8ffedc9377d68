package measure

import "math"

// Convert maps a value to the paired unit using a scalar factor.
// Pure and stateless. A zero factor yields zero; callers that invert a
// factor via 1/factor must validate it first (see ValidateFactor).
func Convert(value, factor float64) float64 {
	return value * factor
}

// ValidateFactor rejects factors that cannot safely be inverted.
func ValidateFactor(factor float64) error {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrInvalidFactor
	}
	return nil
}
