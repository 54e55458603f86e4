// SPDX-License-Identifier: EPL-2.0

package sinc

// roundUp8 rounds n up to the nearest multiple of 8. The sinc convolution
// unrolls its accumulator by 8, so every kernel length must satisfy this.
func roundUp8(n int) int {
	return ((n + 7) / 8) * 8
}

// effectiveCutoff lowers the sinc cutoff for downsampling (ratio < 1) to
// avoid aliasing; it is left unchanged for ratio >= 1.
func effectiveCutoff(fCutoff, ratio float64) float64 {
	if ratio >= 1 {
		return fCutoff
	}
	return fCutoff * ratio
}

// withinTolerance reports whether r sits within ±10% of original.
func withinTolerance(r, original float64) bool {
	rel := r / original
	return rel > 0.9 && rel < 1.1
}
