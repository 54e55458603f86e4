// SPDX-License-Identifier: EPL-2.0

package sinc

// Driver is the contract shared by FixedIn and FixedOut.
//
// Process is a synchronous, CPU-bound call: it neither blocks nor yields,
// and concurrent calls against the same Driver are undefined. Distinct
// Drivers on different goroutines are independent. A call to
// SetResampleRatio or SetResampleRatioRelative must be ordered before the
// next Process call for its effect to apply to it.
type Driver[T Sample] interface {
	// Process consumes one chunk of multi-channel input and produces one
	// chunk of multi-channel output. input must have exactly as many
	// channels as the driver was constructed with; each inner slice is
	// either empty (channel muted, produces an empty output slice and
	// otherwise does not affect processing) or of the length this driver
	// currently expects for that side of the conversion.
	Process(input [][]T) ([][]T, error)

	// SetResampleRatio updates the live resample ratio. It fails with
	// ErrRatioOutOfRange if r sits outside ±10% of the ratio the driver
	// was constructed with.
	SetResampleRatio(r float64) error

	// SetResampleRatioRelative is equivalent to
	// SetResampleRatio(original * s), where original is the ratio used
	// at construction.
	SetResampleRatioRelative(s float64) error

	// FramesNeeded reports how many frames the next Process call expects
	// per active input channel.
	FramesNeeded() int
}
