package audio

import (
	"fmt"
	"io"
)

// CollectMono drains src through a MonoMixer and returns the whole stream as
// a single mono buffer at the source sample rate.
//
// The returned slice holds one float32 per frame in [-1,1]. Memory grows with
// the stream length; callers processing very long recordings should be aware
// the entire signal is held in memory at once.
func CollectMono(src Source) ([]float32, error) {
	mono := NewMonoMixer(src)

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	// Assume around two seconds up front; grow from there.
	samples := make([]float32, 0, src.SampleRate()*2)
	buf := make([]float32, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
