package analysis

const (
	minSpectrumLength = 2

	// hannScale undoes the Hann coherent gain (x2) and folds the negative
	// frequencies into the one-sided bins (x2).
	hannScale = 4.0
)
