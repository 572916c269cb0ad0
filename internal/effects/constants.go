package effects

// AM modulation constants
const (
	// DefaultAMDepth is the envelope depth used when a style enables AM
	// without naming one.
	DefaultAMDepth = 0.3
)

// Noise constants
const (
	// Stream selectors for the PCG generator; each noise source draws from
	// its own stream so seeds do not correlate between stages.
	noiseStream      = 0x6e6f697365
	crackleStream    = 0x637261636b
	mechanicalStream = 0x6d65636820
)

// Crackle constants
const (
	// crackleTailSamples is the length of each impulse's decay tail.
	crackleTailSamples = 12

	// crackleTailDecay is the per-sample decay of the tail.
	crackleTailDecay = 0.55

	// crackleMinMagnitude is the smallest impulse, as a fraction of intensity.
	crackleMinMagnitude = 0.3
)

// Warmth constants
const (
	warmthOrder = 2
)

// Wow & flutter constants
const (
	// Hermite interpolation coefficients
	// y = ((a*x + b)*x + c)*x + d with
	// a = -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)

// Distortion constants
const (
	// distortionDriveScale maps a distortion level of 1 to a tanh drive of 11.
	distortionDriveScale = 10.0
)

// Mechanical noise constants
const (
	// rumbleCutoffHz is the lowpass corner of turntable rumble.
	rumbleCutoffHz = 120.0
	rumbleOrder    = 2

	// rotationHz is the thump rate of a 78 rpm disc.
	rotationHz = 78.0 / 60.0

	// thumpLevel scales the once-per-revolution thump relative to rumble.
	thumpLevel = 3.0

	// thumpWidthSeconds is the duration of each thump.
	thumpWidthSeconds = 0.004
)

// Reverb constants
const (
	// MaxReverbDecay keeps the feedback comb stable.
	MaxReverbDecay = 0.999
)

// Compression constants
const (
	// compressorKneeDB is the soft-knee width.
	compressorKneeDB = 6.0
)

// Normalization constants
const (
	// peakEpsilon avoids division by zero on silence.
	peakEpsilon = 1e-9
)
