// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3 and exposes the stream
// as an audio.Source of float32 samples in [-1.0, 1.0]:
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-mp3 always outputs two interleaved channels regardless of the source
// layout, so the reported channel count is 2; downstream mixing reduces it
// as needed.
package mp3
