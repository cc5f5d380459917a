// SPDX-License-Identifier: EPL-2.0

// Package qcaudio merges heterogeneous call recordings into one canonical
// mono 16-bit PCM WAV buffer, ready for a transcription service.
//
// Given an ordered set of recordings in any supported codec (WAV, MP3, Ogg
// Vorbis, AIFF) at any sample rate and channel count, Merge produces a
// single continuous waveform at one target rate:
//
//	files := []qcaudio.RawAudioFile{
//	    {Name: "agent.mp3", ContentType: "audio/mpeg", Data: agentBytes},
//	    {Name: "client.wav", ContentType: "audio/wav", Data: clientBytes},
//	}
//
//	result, err := qcaudio.Merge(files, qcaudio.DefaultOptions())
//	if err != nil {
//	    // A *qcaudio.DecodeError names the file that failed.
//	}
//	// result.Encoded is a complete WAV container.
//
// # Pipeline
//
// Each file is processed fully before the next one begins:
//
//  1. Decode to linear PCM (formats subpackages)
//  2. Downmix to mono by channel averaging (audio.MonoMixer)
//  3. Optional speech cleanup: high-pass, low-pass, compressor (dsp)
//  4. Resample to the target rate (audio.Resample, windowed-sinc)
//
// The per-file results are then concatenated in input order with no gaps,
// optionally peak normalized to 0.95, and serialized as 16-bit PCM WAV.
//
// # Progress Reporting
//
// Options.OnProgress receives a coarse stage name at each stage boundary,
// with the file index for per-file stages. The callback is threaded through
// the call explicitly, so concurrent merges never share callback state.
//
// # Failure Model
//
// A merge is all-or-nothing. Any file that cannot be decoded aborts the
// whole call with a *DecodeError identifying it; there is no skip-and-
// continue mode, because silently dropping a recording would corrupt the
// transcript built from the output.
//
// # Memory
//
// Decoded audio is held one file at a time, but the resampled segments and
// the merged buffer live in memory for the whole call. Hours-long inputs
// will use proportional memory; there is no built-in duration ceiling.
package qcaudio
