package resample

// Kernel design defaults
const (
	// defaultAttenuation is the stopband attenuation in dB. Retro styles
	// are band-limited well below the new Nyquist afterwards, so 80 dB is
	// ample.
	defaultAttenuation = 80.0

	// defaultPassband is the fraction of the output Nyquist kept flat.
	defaultPassband = 0.9

	// defaultTransitionBW is the transition width (normalized to the
	// sample rate) used to size the kernel.
	defaultTransitionBW = 0.05

	// defaultPhases is the number of kernel table entries per input sample.
	defaultPhases = 256

	// nyquistFraction converts a passband fraction to cycles per sample.
	nyquistFraction = 0.5

	// maxRatio bounds the conversion ratio in either direction.
	maxRatio = 256.0
)
