// SPDX-License-Identifier: EPL-2.0

package sinc

// interpNearest returns the single convolved tap directly.
func interpNearest[T Sample](y T) T {
	return y
}

// interpLinear blends two convolved taps at x = 0 and x = 1.
func interpLinear[T Sample](frac, y0, y1 T) T {
	return (1-frac)*y0 + frac*y1
}

// interpCubic fits a cubic polynomial through four convolved taps at
// x = -1, 0, 1, 2 and evaluates it at x = frac. These coefficients must
// match the reference implementation exactly for Cubic mode to be
// interoperable across implementations.
func interpCubic[T Sample](frac, yNeg1, y0, y1, y2 T) T {
	a0 := y0
	a1 := T(-1.0/3.0)*yNeg1 - T(0.5)*y0 + y1 - T(1.0/6.0)*y2
	a2 := T(0.5)*(yNeg1+y1) - y0
	a3 := T(0.5)*(y0-y1) + T(1.0/6.0)*(y2-yNeg1)
	return a0 + a1*frac + a2*frac*frac + a3*frac*frac*frac
}
