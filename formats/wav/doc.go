// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and 16-bit PCM encoding.
//
// Decoding is built on github.com/go-audio/wav and supports PCM WAV files
// with 8/16/24/32-bit depth, any channel count and any sample rate:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Encoding
//
// EncodePCM16 writes mono float32 samples as a canonical 44-byte-header
// 16-bit PCM WAV:
//
//	var buf bytes.Buffer
//	err := wav.EncodePCM16(&buf, 16000, samples)
//
// WriteWAV16 does the same for samples that are already quantized to int16.
// The header layout and the float-to-int16 mapping are fixed: consumers of
// the merge pipeline validate the container structure byte for byte.
//
// # Error Handling
//
// The package defines sentinel errors:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCMSupported: compressed WAV variants are rejected
//   - ErrUnsupportedBitDepth: bit depth outside 8/16/24/32
//   - ErrUnsupportedWavLayout: malformed format chunk
//   - ErrInvalidEncodeInput: bad arguments to the encoder
package wav
