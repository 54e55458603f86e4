// SPDX-License-Identifier: EPL-2.0

package sinc

// Sample is the element type a driver operates on. The engine supports
// float32 for lower memory/bandwidth use and float64 for higher precision;
// accumulation in the convolution and interpolation stages happens in this
// same precision.
type Sample interface {
	~float32 | ~float64
}
