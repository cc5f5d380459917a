// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the speech preprocessing filters used by the merge
// pipeline: second-order biquad sections and a soft-knee dynamic range
// compressor, combined into the fixed SpeechChain.
//
// All processors work on mono float32 buffers in place and keep their state
// between calls, so one instance must only ever see one continuous signal.
// The pipeline builds a fresh SpeechChain per input file for exactly that
// reason.
//
//	chain := dsp.NewSpeechChain(44100)
//	samples = chain.Process(samples)
//
// Filters run at the source sample rate, before any resampling, so their
// corner frequencies are not distorted by resampling artifacts.
package dsp
