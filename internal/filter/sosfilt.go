package filter

// Filter runs x through the cascade once (causal, transposed direct form II)
// starting from zero state.
func (s Spec) Filter(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	state := make([][2]float64, len(s.Sections))
	runSections(s.Sections, y, state)
	return y
}

// FiltFilt applies the cascade forward and backward for a zero-phase
// result whose magnitude response is the square of the single pass.
//
// The input is extended at both ends by odd reflection of
// 3*(2*sections+1) samples (capped at len(x)-1), and each pass starts
// from the steady-state section state scaled to the first sample so the
// edges do not ring. x is not modified.
func FiltFilt(s Spec, x []float64) []float64 {
	n := len(x)
	if n == 0 || len(s.Sections) == 0 {
		out := make([]float64, n)
		copy(out, x)
		return out
	}

	padLen := min(padMultiplier*(2*len(s.Sections)+1), n-1)
	ext := oddExtend(x, padLen)
	zi := steadyState(s.Sections)

	runSections(s.Sections, ext, scaledState(zi, ext[0]))
	reverse(ext)
	runSections(s.Sections, ext, scaledState(zi, ext[0]))
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])
	return out
}

// runSections filters buf in place through every section in turn.
func runSections(sections []Section, buf []float64, state [][2]float64) {
	for i, sec := range sections {
		z1, z2 := state[i][0], state[i][1]
		for j, v := range buf {
			y := sec.B0*v + z1
			z1 = sec.B1*v - sec.A1*y + z2
			z2 = sec.B2*v - sec.A2*y
			buf[j] = y
		}
		state[i][0], state[i][1] = z1, z2
	}
}

// steadyState returns the per-section state that a unit step input would
// settle into. Each section's state is scaled by the DC gain of the
// sections before it, since that is the level its input settles to.
func steadyState(sections []Section) [][2]float64 {
	zi := make([][2]float64, len(sections))
	scale := 1.0
	for i, sec := range sections {
		g := sec.dcGain()
		zi[i][0] = scale * (g - sec.B0)
		zi[i][1] = scale * (sec.B2 - sec.A2*g)
		scale *= g
	}
	return zi
}

func scaledState(zi [][2]float64, x0 float64) [][2]float64 {
	out := make([][2]float64, len(zi))
	for i := range zi {
		out[i][0] = zi[i][0] * x0
		out[i][1] = zi[i][1] * x0
	}
	return out
}

// oddExtend reflects x about its end points: 2*x[0]-x[pad..1] in front and
// 2*x[n-1]-x[n-2..n-1-pad] behind.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)
	first, last := x[0], x[n-1]
	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:], x)
	return ext
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
