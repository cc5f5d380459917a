// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Markl1n1/qc-audio/utils"
)

// headerSize is the canonical RIFF/fmt/data header length.
const headerSize = 44

// EncodePCM16 serializes mono float32 samples as a 16-bit PCM WAV stream.
// Each sample is clamped to [-1,1] and mapped to int16 with negative values
// scaled by 32768 and positive values by 32767; downstream services validate
// this exact container layout, so the header and mapping must not drift.
func EncodePCM16(w io.Writer, sampleRate int, samples []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidEncodeInput, sampleRate)
	}

	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return err
	}

	// Convert and write in chunks to bound the scratch buffer.
	const chunkFrames = 8192
	bufFrames := min(len(samples), chunkFrames)
	buf := make([]byte, bufFrames*2)

	for i := 0; i < len(samples); i += chunkFrames {
		end := min(i+chunkFrames, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(utils.Float32ToInt16(s)))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate from already
// quantized samples.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidEncodeInput, sampleRate)
	}

	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return err
	}

	const chunkFrames = 8192
	bufFrames := min(len(samples), chunkFrames)
	buf := make([]byte, bufFrames*2)

	for i := 0; i < len(samples); i += chunkFrames {
		end := min(i+chunkFrames, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// writeHeader emits the canonical 44-byte mono PCM header.
func writeHeader(w io.Writer, sampleRate, frames int) error {
	numChannels := uint16(1)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(frames * 2)
	riffSize := 36 + dataSize

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
