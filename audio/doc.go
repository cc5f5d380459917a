// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the merge pipeline:
//   - Source interface for decoded audio input
//   - MonoMixer for channel downmixing
//   - Resample for sample rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing them to be chained
// with processors such as MonoMixer.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// CollectMono combines the two steps and drains a whole source into one
// buffer:
//
//	samples, err := audio.CollectMono(source)
//
// # Resampling
//
// Resample converts a mono buffer between sample rates:
//
//	out := audio.Resample(samples, 44100, 16000, audio.QualitySinc)
//
// QualitySinc (the default everywhere in this module) is a band-limited
// windowed-sinc resampler that suppresses energy above the output Nyquist
// frequency before decimation. QualityNearest trades that anti-aliasing for
// speed and is only appropriate when fidelity does not matter.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
package audio
