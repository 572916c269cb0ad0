package filter

// Nyquist guard constants
const (
	// nyquistMarginHz keeps the upper edge this far below Nyquist.
	nyquistMarginHz = 100.0

	// lowpassFloorHz is the smallest lowpass cutoff handed to the designer.
	lowpassFloorHz = 50.0

	// bandpassLowFloorHz is the smallest bandpass low edge.
	bandpassLowFloorHz = 1.0

	// normEpsilon keeps normalized frequencies strictly inside (0, 1).
	normEpsilon = 1e-6

	// fallbackOrder is the lowpass order used when a band collapses.
	fallbackOrder = 2

	// maxOrder bounds the Butterworth order.
	maxOrder = 24
)

// Bilinear transform constants (designs are done at fs = 2, so Nyquist = 1)
const (
	designFs     = 2.0
	bilinearFs2  = 2.0 * designFs // 2*fs term of the bilinear map
	prewarpScale = 2.0 * designFs // 2*fs term of the prewarp tan()
	halfDivisor  = 2.0
)

// Zero-phase filtering constants
const (
	// padMultiplier sets the odd-extension length: 3 * (2*sections + 1).
	padMultiplier = 3

	// poleImagTolerance separates real from complex poles.
	poleImagTolerance = 1e-10
)

// Sinc table constants
const (
	sincZeroThreshold = 1e-10
	minTablePhases    = 2
)
