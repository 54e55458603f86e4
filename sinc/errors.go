// SPDX-License-Identifier: EPL-2.0

package sinc

import "errors"

var (
	// ErrWrongChannelCount is returned when the number of input channels
	// passed to Process does not match the channel count the driver was
	// constructed with.
	ErrWrongChannelCount = errors.New("sinc: wrong number of channels in input")

	// ErrWrongFrameCount is returned when a non-empty input channel's
	// length does not match the expected frame count for this call.
	ErrWrongFrameCount = errors.New("sinc: wrong number of frames in input channel")

	// ErrRatioOutOfRange is returned by SetResampleRatio and
	// SetResampleRatioRelative when the requested ratio falls outside
	// ±10% of the ratio the driver was constructed with.
	ErrRatioOutOfRange = errors.New("sinc: new resample ratio is too far from original")
)
