// SPDX-License-Identifier: EPL-2.0

// Package sinc implements asynchronous, band-limited sample rate conversion
// using windowed sinc interpolation.
//
// The resample ratio between input and output sample rates is arbitrary and
// can be adjusted at run time within ±10% of the ratio the driver was built
// with. Two driver shapes are provided:
//
//   - FixedIn accepts a fixed-length input chunk and returns a
//     variable-length output chunk.
//   - FixedOut requests a variable-length input chunk (the exact length is
//     reported by FramesNeeded before each call) and returns a fixed-length
//     output chunk.
//
// Both drivers build a bank of oversampled, windowed sinc kernels once at
// construction and never rebuild it, so a ratio change does not change the
// anti-aliasing cutoff the bank was designed for. That is safe within the
// ±10% window for ordinary cutoff/oversampling choices.
//
// # Choosing parameters
//
// sinc_len trades CPU for stopband attenuation; 64-256 is typical.
// oversampling_factor trades memory for interpolation accuracy: Linear mode
// needs a large factor (128-256) to push artefacts below the noise floor,
// while Cubic needs far fewer (16-32). Nearest mode needs no interpolation
// error budget at all when the resample ratio is an exact rational multiple
// of 1/oversampling_factor — for example 48kHz->96kHz with
// oversampling_factor=2, or 44.1kHz->48kHz with oversampling_factor=160
// (since 48000/44100 = 160/147).
//
// # Example
//
//	params := sinc.Parameters{
//		SincLen:            256,
//		FCutoff:            0.95,
//		OversamplingFactor: 128,
//		Interpolation:      sinc.Cubic,
//		Window:             sinc.BlackmanHarris,
//	}
//	r := sinc.NewFixedIn[float64](48000.0/44100.0, params, 1024, 2)
//	out, err := r.Process(wavesIn)
package sinc
