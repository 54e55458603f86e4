// SPDX-License-Identifier: EPL-2.0

package sinc

import "math"

// FixedOut requests a variable-length input chunk per channel (the exact
// length is reported by FramesNeeded before each Process call) and
// produces a fixed-length output chunk.
type FixedOut[T Sample] struct {
	channels      int
	chunkOut      int
	oversampling  int
	sincLen       int
	interpolation InterpolationType

	idx               float64
	ratio             float64
	ratioOriginal     float64
	neededInput       int
	currentBufferFill int

	sincs   [][]T
	history [][]T
}

var _ Driver[float64] = (*FixedOut[float64])(nil)

// NewFixedOut builds a FixedOut driver for the given starting ratio
// (output rate / input rate), interpolation parameters, fixed output
// chunk size, and channel count.
func NewFixedOut[T Sample](ratio float64, params Parameters, chunkOut, channels int) *FixedOut[T] {
	sincLen := roundUp8(params.SincLen)
	fEff := effectiveCutoff(params.FCutoff, ratio)
	sincs := BuildSincs[T](sincLen, params.OversamplingFactor, fEff, params.Window)

	neededInput := int(math.Ceil(float64(chunkOut)/ratio)) + 2 + sincLen/2
	bufLen := 3*neededInput/2 + 2*sincLen
	history := make([][]T, channels)
	for c := range history {
		history[c] = make([]T, bufLen)
	}

	return &FixedOut[T]{
		channels:          channels,
		chunkOut:          chunkOut,
		oversampling:      params.OversamplingFactor,
		sincLen:           sincLen,
		interpolation:     params.Interpolation,
		idx:               -float64(sincLen) / 2,
		ratio:             ratio,
		ratioOriginal:     ratio,
		neededInput:       neededInput,
		currentBufferFill: neededInput,
		sincs:             sincs,
		history:           history,
	}
}

// FramesNeeded reports how many input frames per channel the next Process
// call expects. Call this before each Process call.
func (f *FixedOut[T]) FramesNeeded() int {
	return f.neededInput
}

// Process resamples exactly enough input to produce chunkOut output
// frames. The required input length is whatever FramesNeeded returned
// most recently.
func (f *FixedOut[T]) Process(input [][]T) ([][]T, error) {
	if len(input) != f.channels {
		return nil, ErrWrongChannelCount
	}

	active := make([]int, 0, f.channels)
	for c, wave := range input {
		if len(wave) == 0 {
			continue
		}
		if len(wave) != f.neededInput {
			return nil, ErrWrongFrameCount
		}
		active = append(active, c)
	}

	l := f.sincLen
	for _, wave := range f.history {
		copy(wave[:2*l], wave[f.currentBufferFill:f.currentBufferFill+2*l])
	}
	f.currentBufferFill = f.neededInput

	out := make([][]T, f.channels)
	for _, c := range active {
		copy(f.history[c][2*l:2*l+f.neededInput], input[c])
		out[c] = make([]T, f.chunkOut)
	}

	idx := f.idx
	dt := 1.0 / f.ratio

	switch f.interpolation {
	case Cubic:
		for n := 0; n < f.chunkOut; n++ {
			idx += dt
			taps := nearestTimes4(idx, f.oversampling)
			frac := T(fracOf(idx, f.oversampling))
			for _, c := range active {
				history := f.history[c]
				p0 := convolve(history, taps[0].n+2*l, f.sincs[taps[0].k])
				p1 := convolve(history, taps[1].n+2*l, f.sincs[taps[1].k])
				p2 := convolve(history, taps[2].n+2*l, f.sincs[taps[2].k])
				p3 := convolve(history, taps[3].n+2*l, f.sincs[taps[3].k])
				out[c][n] = interpCubic(frac, p0, p1, p2, p3)
			}
		}
	case Linear:
		for n := 0; n < f.chunkOut; n++ {
			idx += dt
			taps := nearestTimes2(idx, f.oversampling)
			frac := T(fracOf(idx, f.oversampling))
			for _, c := range active {
				history := f.history[c]
				p0 := convolve(history, taps[0].n+2*l, f.sincs[taps[0].k])
				p1 := convolve(history, taps[1].n+2*l, f.sincs[taps[1].k])
				out[c][n] = interpLinear(frac, p0, p1)
			}
		}
	default: // Nearest
		for n := 0; n < f.chunkOut; n++ {
			idx += dt
			t := nearestTime(idx, f.oversampling)
			for _, c := range active {
				history := f.history[c]
				p := convolve(history, t.n+2*l, f.sincs[t.k])
				out[c][n] = interpNearest(p)
			}
		}
	}

	f.idx = idx - float64(f.currentBufferFill)
	f.neededInput = int(math.Ceil(f.idx+float64(f.chunkOut)/f.ratio+float64(l))) + 2

	return out, nil
}

// SetResampleRatio updates the live resample ratio; see Driver. The
// driver's history buffer length is fixed at construction time and is not
// reallocated here, matching the reference implementation this engine was
// distilled from; see the package's design notes on the ±10% bound.
func (f *FixedOut[T]) SetResampleRatio(r float64) error {
	if !withinTolerance(r, f.ratioOriginal) {
		return ErrRatioOutOfRange
	}
	f.ratio = r
	f.neededInput = int(math.Ceil(f.idx+float64(f.chunkOut)/f.ratio+float64(f.sincLen))) + 2
	return nil
}

// SetResampleRatioRelative updates the ratio relative to the original one.
func (f *FixedOut[T]) SetResampleRatioRelative(s float64) error {
	return f.SetResampleRatio(f.ratioOriginal * s)
}
