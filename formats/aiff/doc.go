// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// Decoding is built on github.com/go-audio/aiff and supports PCM AIFF files
// with 8/16/24/32-bit depth, any channel count and any sample rate:
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing float32 samples in
// [-1.0, 1.0]. Inputs that are not seekable are buffered in memory, since
// go-audio walks the IFF chunk structure with random access.
package aiff
