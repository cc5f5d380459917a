package dsp

// Speech cleanup defaults. The corner frequencies bracket the useful speech
// band; the compressor settings follow common spoken-word practice.
const (
	speechHighPassHz = 80
	speechLowPassHz  = 7500
	speechFilterQ    = 0.7

	speechCompThresholdDB = -24
	speechCompKneeDB      = 12
	speechCompRatio       = 4
	speechCompAttackMs    = 3
	speechCompReleaseMs   = 250
)

// SpeechChain is the fixed three-stage cleanup chain for spoken audio:
// high-pass (handling noise, HVAC rumble), low-pass (hiss above the speech
// band), then dynamic range compression (speaker volume variance).
//
// A SpeechChain carries filter state across Process calls, so a fresh chain
// must be built for each independent recording.
type SpeechChain struct {
	highpass   *Biquad
	lowpass    *Biquad
	compressor *Compressor
}

// NewSpeechChain builds a chain for one recording at the given sample rate.
// The low-pass stage is omitted when its corner sits at or above Nyquist
// (e.g. 8 kHz sources), where the filter would be unstable and the hiss it
// targets cannot exist anyway.
func NewSpeechChain(sampleRate int) *SpeechChain {
	c := &SpeechChain{
		highpass: NewHighPass(sampleRate, speechHighPassHz, speechFilterQ),
		compressor: NewCompressor(sampleRate,
			speechCompThresholdDB, speechCompKneeDB, speechCompRatio,
			speechCompAttackMs, speechCompReleaseMs),
	}

	if speechLowPassHz < sampleRate/2 {
		c.lowpass = NewLowPass(sampleRate, speechLowPassHz, speechFilterQ)
	}

	return c
}

// Process runs the stages over samples in place, in order, and returns the
// same slice.
func (c *SpeechChain) Process(samples []float32) []float32 {
	samples = c.highpass.Process(samples)
	if c.lowpass != nil {
		samples = c.lowpass.Process(samples)
	}
	return c.compressor.Process(samples)
}

// Reset clears all stage state.
func (c *SpeechChain) Reset() {
	c.highpass.Reset()
	if c.lowpass != nil {
		c.lowpass.Reset()
	}
	c.compressor.Reset()
}
