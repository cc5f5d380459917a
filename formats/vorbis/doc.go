// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which already emits
// float32 samples, so the adapter only forwards them as an audio.Source:
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are interleaved float32 values in [-1.0, 1.0] at the stream's
// native sample rate and channel count.
package vorbis
