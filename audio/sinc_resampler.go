// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sincresample/sinc"
)

// SincResampler streams from src to a new sample rate using the sinc
// package's windowed-sinc engine. Unlike Resampler, it supports live ratio
// adjustment via SetResampleRatio and produces band-limited output, at a
// higher CPU cost than the cubic-spline Resampler.
type SincResampler struct {
	src      Source
	channels int
	chunkIn  int
	dstRate  int

	driver *sinc.FixedIn[float32]

	deinterleaved [][]float32
	srcBuf        []float32

	pending [][]float32
	pendPos int

	eof bool
}

// NewSincResampler builds a SincResampler targeting dstRate, reading chunkIn
// frames from src at a time. params controls the sinc engine's filter
// length, oversampling, and interpolation mode; see sinc.Parameters.
func NewSincResampler(src Source, dstRate int, params sinc.Parameters, chunkIn int) *SincResampler {
	channels := src.Channels()
	ratio := float64(dstRate) / float64(src.SampleRate())

	deinterleaved := make([][]float32, channels)
	for c := range deinterleaved {
		deinterleaved[c] = make([]float32, chunkIn)
	}

	return &SincResampler{
		src:           src,
		channels:      channels,
		chunkIn:       chunkIn,
		dstRate:       dstRate,
		driver:        sinc.NewFixedIn[float32](ratio, params, chunkIn, channels),
		deinterleaved: deinterleaved,
		srcBuf:        make([]float32, chunkIn*channels),
	}
}

func (s *SincResampler) SampleRate() int { return s.dstRate }
func (s *SincResampler) Channels() int   { return s.channels }
func (s *SincResampler) BufSize() int    { return s.src.BufSize() }

func (s *SincResampler) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// SetResampleRatio adjusts the live output/input rate ratio. The new ratio
// must stay within +/-10% of the ratio SincResampler was constructed with.
func (s *SincResampler) SetResampleRatio(ratio float64) error {
	return s.driver.SetResampleRatio(ratio)
}

// SetResampleRatioRelative scales the current ratio by a factor relative to
// the original construction-time ratio.
func (s *SincResampler) SetResampleRatioRelative(scale float64) error {
	return s.driver.SetResampleRatioRelative(scale)
}

// fillChunk reads one chunkIn-frame block from src, zero-padding the tail on
// a short final read, and runs it through the sinc driver.
func (s *SincResampler) fillChunk() error {
	n, err := s.src.ReadSamples(s.srcBuf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w", err)
	}
	frames := n / s.channels

	for c := range s.deinterleaved {
		wave := s.deinterleaved[c]
		for i := 0; i < frames; i++ {
			wave[i] = s.srcBuf[i*s.channels+c]
		}
		for i := frames; i < s.chunkIn; i++ {
			wave[i] = 0
		}
	}

	out, perr := s.driver.Process(s.deinterleaved)
	if perr != nil {
		return fmt.Errorf("%w", perr)
	}
	s.pending = out
	s.pendPos = 0

	if err == io.EOF {
		s.eof = true
	}
	return nil
}

// ReadSamples produces interleaved float32 samples at the configured
// destination rate. dst length must be a multiple of Channels().
func (s *SincResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	framesNeeded := len(dst) / s.channels

	for written < framesNeeded {
		if s.pending == nil || s.pendPos >= len(s.pending[0]) {
			if s.eof {
				if written == 0 {
					return 0, io.EOF
				}
				return written * s.channels, io.EOF
			}
			if err := s.fillChunk(); err != nil {
				return written * s.channels, err
			}
			if len(s.pending) == 0 || len(s.pending[0]) == 0 {
				if s.eof {
					if written == 0 {
						return 0, io.EOF
					}
					return written * s.channels, io.EOF
				}
				continue
			}
		}

		for c := 0; c < s.channels; c++ {
			dst[written*s.channels+c] = s.pending[c][s.pendPos]
		}
		s.pendPos++
		written++
	}

	return written * s.channels, nil
}
