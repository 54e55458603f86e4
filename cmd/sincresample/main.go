// SPDX-License-Identifier: EPL-2.0

// Command sincresample decodes an audio file, resamples it through the sinc
// engine, mixes it down to mono, and writes a 16-bit PCM WAV.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ik5/sincresample/audio"
	"github.com/ik5/sincresample/formats/aiff"
	"github.com/ik5/sincresample/formats/mp3"
	"github.com/ik5/sincresample/formats/vorbis"
	"github.com/ik5/sincresample/formats/wav"
	"github.com/ik5/sincresample/sinc"
	"github.com/ik5/sincresample/utils"
)

func main() {
	var (
		rate         = pflag.IntP("rate", "r", 8000, "output sample rate in Hz")
		sincLen      = pflag.Int("sinc-len", 128, "sinc filter length per oversampled phase")
		fCutoff      = pflag.Float64("cutoff", 0.95, "relative cutoff frequency (0, 1]")
		oversampling = pflag.Int("oversampling", 256, "number of oversampled filter phases")
		interp       = pflag.String("interp", "cubic", "interpolation mode: nearest, linear, cubic")
		window       = pflag.String("window", "blackman-harris", "window function: blackman-harris, blackman, hann, hamming, nuttall")
		chunk        = pflag.Int("chunk", 4096, "frames decoded per processing step")
		driver       = pflag.String("driver", "fixed-in", "sinc driver variant: fixed-in, fixed-out")
		naive        = pflag.Bool("naive", false, "use the cubic-spline Resampler instead of the sinc engine")
	)
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: sincresample [flags] <input.{wav|mp3|ogg|aiff}> <output.wav>")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() < 2 {
		pflag.Usage()
		os.Exit(1)
	}
	inPath := pflag.Arg(0)
	outPath := pflag.Arg(1)

	interpolation, err := parseInterpolation(*interp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	windowFn, err := parseWindow(*window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	ext := filepath.Ext(inPath)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	dec, ok := reg.Get(ext)
	if !ok {
		fmt.Fprintln(os.Stderr, "unsupported format:", ext)
		os.Exit(1)
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer src.Close()

	params := sinc.Parameters{
		SincLen:            *sincLen,
		FCutoff:            *fCutoff,
		OversamplingFactor: *oversampling,
		Interpolation:      interpolation,
		Window:             windowFn,
	}

	var pcm16 []int16
	switch {
	case *naive:
		pipeline := audio.NewMonoMixer(audio.NewResampler(src, *rate))
		pcm16, err = drainToPCM16(pipeline, *chunk)
	case *driver == "fixed-out":
		pcm16, err = runFixedOut(src, *rate, params, *chunk)
	default:
		pipeline := audio.NewMonoMixer(audio.NewSincResampler(src, *rate, params, *chunk))
		pcm16, err = drainToPCM16(pipeline, *chunk)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := wav.WriteWAV16(outFile, *rate, pcm16); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Wrote:", outPath)
}

// drainToPCM16 reads a mono Source to exhaustion and converts it to int16 PCM.
func drainToPCM16(pipeline audio.Source, chunk int) ([]int16, error) {
	var pcm16 []int16
	buf := make([]float32, chunk)

	for {
		n, err := pipeline.ReadSamples(buf)
		if n > 0 {
			for i := range n {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}

// runFixedOut drives sinc.FixedOut directly: it pulls fixed-out's own
// FramesNeeded() worth of input per step, rather than pushing fixed-size
// chunks the way the Source/ReadSamples contract does. The whole source is
// read into memory up front since FixedOut's pull cadence doesn't match a
// streaming Source's push cadence.
func runFixedOut(src audio.Source, rate int, params sinc.Parameters, chunk int) ([]int16, error) {
	channels := src.Channels()
	ratio := float64(rate) / float64(src.SampleRate())

	in := make([][]float32, channels)
	readBuf := make([]float32, chunk*channels)
	for {
		n, err := src.ReadSamples(readBuf)
		frames := n / channels
		for c := 0; c < channels; c++ {
			for i := 0; i < frames; i++ {
				in[c] = append(in[c], readBuf[i*channels+c])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	driver := sinc.NewFixedOut[float32](ratio, params, chunk, channels)
	outCh := make([][]float32, channels)
	pos := 0

	for pos < len(in[0]) {
		needed := driver.FramesNeeded()
		step := make([][]float32, channels)
		for c := range step {
			end := min(pos+needed, len(in[c]))
			seg := make([]float32, needed)
			copy(seg, in[c][pos:end])
			step[c] = seg
		}

		out, err := driver.Process(step)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		for c := range out {
			outCh[c] = append(outCh[c], out[c]...)
		}
		pos += needed
	}

	pcm16 := make([]int16, len(outCh[0]))
	for i := range pcm16 {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += outCh[c][i]
		}
		pcm16[i] = utils.Float32ToInt16(sum / float32(channels))
	}

	return pcm16, nil
}

func parseInterpolation(s string) (sinc.InterpolationType, error) {
	switch s {
	case "nearest":
		return sinc.Nearest, nil
	case "linear":
		return sinc.Linear, nil
	case "cubic":
		return sinc.Cubic, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode %q (want nearest, linear, cubic)", s)
	}
}

func parseWindow(s string) (sinc.WindowFunction, error) {
	switch s {
	case "blackman-harris":
		return sinc.BlackmanHarris, nil
	case "blackman":
		return sinc.Blackman, nil
	case "hann":
		return sinc.Hann, nil
	case "hamming":
		return sinc.Hamming, nil
	case "nuttall":
		return sinc.Nuttall, nil
	default:
		return 0, fmt.Errorf("unknown window function %q (want blackman-harris, blackman, hann, hamming, nuttall)", s)
	}
}
