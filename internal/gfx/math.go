package gfx

func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
