// SPDX-License-Identifier: EPL-2.0

package qcaudio

import (
	"bytes"
	"fmt"

	"github.com/Markl1n1/qc-audio/audio"
	"github.com/Markl1n1/qc-audio/dsp"
	"github.com/Markl1n1/qc-audio/formats/wav"
)

// Stage names reported through the progress callback.
type Stage string

const (
	StageDecoding      Stage = "decoding"
	StagePreprocessing Stage = "preprocessing"
	StageResampling    Stage = "resampling"
	StageConcatenating Stage = "concatenating"
	StageNormalizing   Stage = "normalizing"
	StageEncoding      Stage = "encoding"
)

// ProgressFunc is invoked at stage boundaries. For per-file stages index is
// the zero-based position of the file being processed; for stages that act
// on the whole merged buffer index is -1. total is always the input file
// count. The callback is side-effect only and may be nil.
type ProgressFunc func(stage Stage, index, total int)

// RawAudioFile is one input recording: its raw encoded bytes plus the
// caller-declared name and content type. The buffer is owned by the caller
// and is never modified; decoding always works on a private copy.
type RawAudioFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Options configures a merge run. Use DefaultOptions as the starting point;
// a zero TargetSampleRate is treated as 16000.
type Options struct {
	// TargetSampleRate is the output rate in Hz. Every input is resampled
	// to this rate before concatenation.
	TargetSampleRate int

	// Preprocess enables the speech cleanup chain (high-pass, low-pass,
	// compressor) per file, at the file's source rate.
	Preprocess bool

	// NormalizePeak scales the merged buffer so its peak reaches 0.95.
	NormalizePeak bool

	// Quality selects the resampling algorithm; QualitySinc by default.
	Quality audio.Quality

	// OnProgress, when set, receives coarse stage notifications.
	OnProgress ProgressFunc

	// Registry overrides the decoder registry; nil means DefaultRegistry.
	Registry *audio.Registry
}

// DefaultOptions returns the standard configuration: 16 kHz output, peak
// normalization on, preprocessing off, sinc resampling.
func DefaultOptions() Options {
	return Options{
		TargetSampleRate: 16000,
		NormalizePeak:    true,
		Quality:          audio.QualitySinc,
	}
}

// Result is the outcome of one merge call.
type Result struct {
	// Encoded is the complete WAV container (44-byte header + 16-bit PCM).
	Encoded []byte

	// DurationSeconds is FrameCount / SampleRate.
	DurationSeconds float64

	SampleRate int
	Channels   int
	FrameCount int
}

// Merge decodes the given recordings, downmixes each to mono, optionally
// runs the speech cleanup chain, resamples everything to the target rate,
// concatenates the results in input order with no gaps, optionally peak
// normalizes the whole buffer, and encodes it as 16-bit PCM WAV.
//
// Files are processed one at a time, fully, so decode memory stays bounded
// to one file; the resampled segments and the merged buffer are held in
// memory for the whole call, which grows without limit for very long inputs.
//
// At least two files are required. Any decode failure aborts the whole merge
// with a *DecodeError naming the file: silently dropping a recording from
// the merged stream is never acceptable.
func Merge(files []RawAudioFile, opts Options) (*Result, error) {
	if len(files) < 2 {
		return nil, ErrInsufficientInput
	}

	if opts.TargetSampleRate <= 0 {
		opts.TargetSampleRate = 16000
	}
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	progress := opts.OnProgress
	if progress == nil {
		progress = func(Stage, int, int) {}
	}

	total := len(files)
	segments := make([][]float32, 0, total)

	for i, f := range files {
		progress(StageDecoding, i, total)

		mono, srcRate, err := decodeMono(registry, f)
		if err != nil {
			return nil, &DecodeError{File: f.Name, Err: err}
		}

		if opts.Preprocess {
			progress(StagePreprocessing, i, total)
			// Fresh chain per file: filter state must never leak
			// across recordings.
			mono = dsp.NewSpeechChain(srcRate).Process(mono)
		}

		progress(StageResampling, i, total)
		segments = append(segments, audio.Resample(mono, srcRate, opts.TargetSampleRate, opts.Quality))
	}

	progress(StageConcatenating, -1, total)
	merged := audio.Concat(segments)

	if opts.NormalizePeak {
		progress(StageNormalizing, -1, total)
		Normalize(merged)
	}

	progress(StageEncoding, -1, total)

	var buf bytes.Buffer
	buf.Grow(44 + len(merged)*2)
	if err := wav.EncodePCM16(&buf, opts.TargetSampleRate, merged); err != nil {
		return nil, &EncodeError{Err: err}
	}

	return &Result{
		Encoded:         buf.Bytes(),
		DurationSeconds: float64(len(merged)) / float64(opts.TargetSampleRate),
		SampleRate:      opts.TargetSampleRate,
		Channels:        1,
		FrameCount:      len(merged),
	}, nil
}

// decodeMono decodes one file and drains it to a mono buffer at the source
// rate. Decoding gets a private copy of the bytes: some decoders consume or
// reposition their input, and the caller's buffer must stay untouched.
func decodeMono(registry *audio.Registry, f RawAudioFile) ([]float32, int, error) {
	if len(f.Data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty file", ErrUnknownFormat)
	}

	format := DetectFormat(f.Name, f.ContentType, f.Data)
	if format == "" {
		return nil, 0, ErrUnknownFormat
	}

	decoder, ok := registry.Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%w: no decoder for %q", ErrUnknownFormat, format)
	}

	data := make([]byte, len(f.Data))
	copy(data, f.Data)

	src, err := decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	mono, err := audio.CollectMono(src)
	if err != nil {
		return nil, 0, err
	}

	return mono, src.SampleRate(), nil
}
