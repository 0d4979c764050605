package common

// Lerp interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 restricts t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// UniformRange returns a + (b-a)*u for a unit sample u. Callers pass rng.Float64().
func UniformRange(a, b, u float64) float64 {
	if b <= a {
		return a
	}
	return a + (b-a)*u
}
