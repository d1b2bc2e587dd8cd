package tilt

import "math"

// Smooth moves current toward target by the exponential decay factor
// 1 - exp(-dt/tau). dt and tau are in seconds.
func Smooth(current, target, dt, tau float64) float64 {
	if tau <= 0 {
		return target
	}
	k := 1 - math.Exp(-dt/tau)
	return current + (target-current)*k
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// round keeps three decimals and folds negative zero into zero.
func round(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

// remap linearly maps v from [fromMin, fromMax] into [toMin, toMax].
func remap(v, fromMin, fromMax, toMin, toMax float64) float64 {
	return round(toMin + (toMax-toMin)*(v-fromMin)/(fromMax-fromMin))
}
