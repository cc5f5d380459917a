package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/Markl1n1/qc-audio/audio"
)

// maxZeroReads bounds how many consecutive (0, nil) reads from the
// underlying decoder are retried before the stream is treated as finished.
const maxZeroReads = 8

// oggReader is the subset of oggvorbis.Reader used here, split out so tests
// can substitute their own implementation.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads whole frames; round the request down to a frame
	// boundary.
	samplesWanted := len(dst) / s.channels * s.channels
	if cap(s.frameBuf) < samplesWanted {
		s.frameBuf = make([]float32, samplesWanted)
	}
	s.frameBuf = s.frameBuf[:samplesWanted]

	var n int
	var err error
	// An io.Reader-style decoder may legally return (0, nil); retry a few
	// times so a stalled decoder cannot spin the caller forever.
	for attempt := 0; attempt < maxZeroReads; attempt++ {
		n, err = s.dec.Read(s.frameBuf)
		if n > 0 || err != nil {
			break
		}
	}
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	copy(dst, s.frameBuf[:n])
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
