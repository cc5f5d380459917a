package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestEncodePCM16_HeaderLayout(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 320) // 20ms at 16kHz
	var buf bytes.Buffer

	if err := EncodePCM16(&buf, 16000, samples); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+len(samples)*2 {
		t.Fatalf("encoded size = %d, want %d", len(data), headerSize+len(samples)*2)
	}

	dataSize := uint32(len(samples) * 2)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{name: "chunk id", got: string(data[0:4]), want: "RIFF"},
		{name: "riff size", got: binary.LittleEndian.Uint32(data[4:8]), want: 36 + dataSize},
		{name: "format", got: string(data[8:12]), want: "WAVE"},
		{name: "subchunk1 id", got: string(data[12:16]), want: "fmt "},
		{name: "subchunk1 size", got: binary.LittleEndian.Uint32(data[16:20]), want: uint32(16)},
		{name: "audio format", got: binary.LittleEndian.Uint16(data[20:22]), want: uint16(1)},
		{name: "channels", got: binary.LittleEndian.Uint16(data[22:24]), want: uint16(1)},
		{name: "sample rate", got: binary.LittleEndian.Uint32(data[24:28]), want: uint32(16000)},
		{name: "byte rate", got: binary.LittleEndian.Uint32(data[28:32]), want: uint32(32000)},
		{name: "block align", got: binary.LittleEndian.Uint16(data[32:34]), want: uint16(2)},
		{name: "bits per sample", got: binary.LittleEndian.Uint16(data[34:36]), want: uint16(16)},
		{name: "subchunk2 id", got: string(data[36:40]), want: "data"},
		{name: "data size", got: binary.LittleEndian.Uint32(data[40:44]), want: dataSize},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("header field %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestEncodePCM16_SampleMapping(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 1, -1, 0.5, -0.5, 2, -2}
	want := []int16{0, 32767, -32768, 16383, -16384, 32767, -32768}

	var buf bytes.Buffer
	if err := EncodePCM16(&buf, 8000, samples); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	data := buf.Bytes()[headerSize:]
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
		if got != w {
			t.Errorf("sample %d encoded as %d, want %d", i, got, w)
		}
	}
}

func TestEncodePCM16_EmptySamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodePCM16(&buf, 16000, nil); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("encoded size = %d, want bare %d-byte header", buf.Len(), headerSize)
	}

	if got := binary.LittleEndian.Uint32(buf.Bytes()[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func TestEncodePCM16_InvalidRate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := EncodePCM16(&buf, 0, []float32{0})

	if !errors.Is(err, ErrInvalidEncodeInput) {
		t.Errorf("EncodePCM16(rate=0) error = %v, want ErrInvalidEncodeInput", err)
	}
}

func TestWriteWAV16_MatchesFloatEncoder(t *testing.T) {
	t.Parallel()

	floats := []float32{0, 0.25, -0.25, 1, -1}
	ints := make([]int16, len(floats))
	for i, f := range floats {
		if f < 0 {
			ints[i] = int16(f * 32768)
		} else {
			ints[i] = int16(f * 32767)
		}
	}

	var a, b bytes.Buffer
	if err := EncodePCM16(&a, 8000, floats); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}
	if err := WriteWAV16(&b, 8000, ints); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("float and int16 encoders produced different bytes for equivalent input")
	}
}

// TestEncodePCM16_RoundTrip feeds the encoder's output back through this
// package's decoder and compares what comes out.
func TestEncodePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	const rate = 16000

	samples := make([]float32, rate)
	for i := range samples {
		tt := float64(i) / rate
		samples[i] = float32(0.8 * math.Sin(2*math.Pi*440*tt))
	}

	var buf bytes.Buffer
	if err := EncodePCM16(&buf, rate, samples); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != rate {
		t.Errorf("decoded sample rate = %d, want %d", src.SampleRate(), rate)
	}
	if src.Channels() != 1 {
		t.Errorf("decoded channels = %d, want 1", src.Channels())
	}

	var decoded []float32
	readBuf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(readBuf)
		if n > 0 {
			decoded = append(decoded, readBuf[:n]...)
		}
		if err != nil {
			break
		}
	}

	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}

	for i := range samples {
		if diff := math.Abs(float64(decoded[i] - samples[i])); diff > 1e-3 {
			t.Fatalf("decoded[%d] = %v, want ≈%v (diff %v)", i, decoded[i], samples[i], diff)
		}
	}
}
