package main

const (
	// styleColumnWidth pads style identifiers in the styles listing.
	styleColumnWidth = 16

	// Response probe frequencies start here and double up to Nyquist.
	analysisStartHz = 31.25
	octave          = 2.0

	// nyquistProbeFraction keeps the last probe just below Nyquist.
	nyquistProbeFraction = 0.99
)
