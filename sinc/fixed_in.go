// SPDX-License-Identifier: EPL-2.0

package sinc

// FixedIn accepts a fixed-length input chunk per channel and produces a
// variable-length output chunk, approximately chunk_in * ratio frames.
type FixedIn[T Sample] struct {
	channels      int
	chunkIn       int
	oversampling  int
	sincLen       int
	interpolation InterpolationType

	idx           float64
	ratio         float64
	ratioOriginal float64

	sincs   [][]T
	history [][]T
}

var _ Driver[float64] = (*FixedIn[float64])(nil)

// NewFixedIn builds a FixedIn driver for the given starting ratio
// (output rate / input rate), interpolation parameters, fixed input chunk
// size, and channel count.
func NewFixedIn[T Sample](ratio float64, params Parameters, chunkIn, channels int) *FixedIn[T] {
	sincLen := roundUp8(params.SincLen)
	fEff := effectiveCutoff(params.FCutoff, ratio)
	sincs := BuildSincs[T](sincLen, params.OversamplingFactor, fEff, params.Window)

	history := make([][]T, channels)
	for c := range history {
		history[c] = make([]T, chunkIn+2*sincLen)
	}

	return &FixedIn[T]{
		channels:      channels,
		chunkIn:       chunkIn,
		oversampling:  params.OversamplingFactor,
		sincLen:       sincLen,
		interpolation: params.Interpolation,
		idx:           -float64(sincLen) / 2,
		ratio:         ratio,
		ratioOriginal: ratio,
		sincs:         sincs,
		history:       history,
	}
}

// FramesNeeded always returns the chunk size this driver was built with.
func (f *FixedIn[T]) FramesNeeded() int {
	return f.chunkIn
}

// Process resamples one chunk of audio. The input length is fixed; the
// output length varies by at most a few frames around chunkIn * ratio.
func (f *FixedIn[T]) Process(input [][]T) ([][]T, error) {
	if len(input) != f.channels {
		return nil, ErrWrongChannelCount
	}

	active := make([]int, 0, f.channels)
	for c, wave := range input {
		if len(wave) == 0 {
			continue
		}
		if len(wave) != f.chunkIn {
			return nil, ErrWrongFrameCount
		}
		active = append(active, c)
	}

	l := f.sincLen
	for _, wave := range f.history {
		copy(wave[:2*l], wave[f.chunkIn:f.chunkIn+2*l])
	}

	out := make([][]T, f.channels)
	for _, c := range active {
		copy(f.history[c][2*l:2*l+f.chunkIn], input[c])
		out[c] = make([]T, int(float64(f.chunkIn)*f.ratio)+10)
	}

	idx := f.idx
	dt := 1.0 / f.ratio
	endIdx := float64(f.chunkIn - (l + 1))
	n := 0

	switch f.interpolation {
	case Cubic:
		for idx < endIdx {
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
			n++
		}
	case Linear:
		for idx < endIdx {
			idx += dt
			taps := nearestTimes2(idx, f.oversampling)
			frac := T(fracOf(idx, f.oversampling))
			for _, c := range active {
				history := f.history[c]
				p0 := convolve(history, taps[0].n+2*l, f.sincs[taps[0].k])
				p1 := convolve(history, taps[1].n+2*l, f.sincs[taps[1].k])
				out[c][n] = interpLinear(frac, p0, p1)
			}
			n++
		}
	default: // Nearest
		for idx < endIdx {
			idx += dt
			t := nearestTime(idx, f.oversampling)
			for _, c := range active {
				history := f.history[c]
				p := convolve(history, t.n+2*l, f.sincs[t.k])
				out[c][n] = interpNearest(p)
			}
			n++
		}
	}

	for _, c := range active {
		out[c] = out[c][:n]
	}

	f.idx = idx - float64(f.chunkIn)
	return out, nil
}

// SetResampleRatio updates the live resample ratio; see Driver.
func (f *FixedIn[T]) SetResampleRatio(r float64) error {
	if !withinTolerance(r, f.ratioOriginal) {
		return ErrRatioOutOfRange
	}
	f.ratio = r
	return nil
}

// SetResampleRatioRelative updates the ratio relative to the original one.
func (f *FixedIn[T]) SetResampleRatioRelative(s float64) error {
	return f.SetResampleRatio(f.ratioOriginal * s)
}
