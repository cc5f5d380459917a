package qcaudio

import (
	"bytes"
	"path"
	"strings"

	"github.com/Markl1n1/qc-audio/audio"
	"github.com/Markl1n1/qc-audio/formats/aiff"
	"github.com/Markl1n1/qc-audio/formats/mp3"
	"github.com/Markl1n1/qc-audio/formats/vorbis"
	"github.com/Markl1n1/qc-audio/formats/wav"
)

// Format keys used by the default registry.
const (
	FormatWAV    = "wav"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg"
	FormatAIFF   = "aiff"
)

// DefaultRegistry returns a registry with all built-in decoders registered.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(FormatWAV, wav.Decoder{})
	r.Register(FormatMP3, mp3.Decoder{})
	r.Register(FormatVorbis, vorbis.Decoder{})
	r.Register(FormatAIFF, aiff.Decoder{})
	return r
}

var contentTypes = map[string]string{
	"audio/wav":       FormatWAV,
	"audio/wave":      FormatWAV,
	"audio/x-wav":     FormatWAV,
	"audio/mpeg":      FormatMP3,
	"audio/mp3":       FormatMP3,
	"audio/ogg":       FormatVorbis,
	"application/ogg": FormatVorbis,
	"audio/aiff":      FormatAIFF,
	"audio/x-aiff":    FormatAIFF,
}

var extensions = map[string]string{
	".wav":  FormatWAV,
	".wave": FormatWAV,
	".mp3":  FormatMP3,
	".ogg":  FormatVorbis,
	".oga":  FormatVorbis,
	".aiff": FormatAIFF,
	".aif":  FormatAIFF,
}

// DetectFormat resolves a registry format key for a file, trying the declared
// content type first, then the filename extension, then the leading magic
// bytes. It returns "" when nothing matches.
func DetectFormat(name, contentType string, data []byte) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if f, ok := contentTypes[ct]; ok {
		return f
	}

	if f, ok := extensions[strings.ToLower(path.Ext(name))]; ok {
		return f
	}

	return sniffFormat(data)
}

// sniffFormat inspects leading magic bytes.
func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWAV
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatVorbis
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("FORM")) && (bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return FormatAIFF
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Bare MPEG audio frame sync
		return FormatMP3
	default:
		return ""
	}
}
