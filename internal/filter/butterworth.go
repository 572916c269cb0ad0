// Package filter designs the IIR band-limiting filters used by the effect
// chain and the windowed-sinc kernel used by the resampler.
//
// IIR filters are Butterworth designs produced from the analog prototype
// through a pre-warped bilinear transform and emitted as cascaded
// second-order sections. Sections keep high orders at low normalized
// cutoffs numerically stable, where a single transfer-function polynomial
// would not be.
package filter

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"
)

// Kind identifies the filter response.
type Kind int

const (
	// Lowpass passes frequencies below the cutoff.
	Lowpass Kind = iota

	// Bandpass passes frequencies between two edges.
	Bandpass
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Bandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// Section is one biquad with a0 normalized to 1:
//
//	H(z) = (B0 + B1 z⁻¹ + B2 z⁻²) / (1 + A1 z⁻¹ + A2 z⁻²)
type Section struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// dcGain returns the section gain at z = 1.
func (s Section) dcGain() float64 {
	den := 1 + s.A1 + s.A2
	if den == 0 {
		return 0
	}
	return (s.B0 + s.B1 + s.B2) / den
}

// at evaluates the section's transfer function at z = e^{jω}.
func (s Section) at(omega float64) complex128 {
	z1 := cmplx.Exp(complex(0, -omega))
	z2 := z1 * z1
	num := complex(s.B0, 0) + complex(s.B1, 0)*z1 + complex(s.B2, 0)*z2
	den := 1 + complex(s.A1, 0)*z1 + complex(s.A2, 0)*z2
	return num / den
}

// Spec is a designed filter. Wn holds the normalized edge frequencies
// actually used (Nyquist = 1): one value for lowpass, two for bandpass.
type Spec struct {
	Kind     Kind
	Order    int
	Wn       []float64
	Sections []Section

	// Degraded reports that a bandpass request collapsed and a lowpass
	// was designed in its place.
	Degraded bool
}

// butterPrototype returns the poles of the order-n analog Butterworth
// lowpass prototype with unit cutoff.
func butterPrototype(n int) []complex128 {
	poles := make([]complex128, 0, n)
	for m := -n + 1; m < n; m += 2 {
		theta := math.Pi * float64(m) / (halfDivisor * float64(n))
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}
	return poles
}

// prewarp maps a normalized digital frequency to the analog frequency
// that the bilinear transform sends back onto it.
func prewarp(wn float64) float64 {
	return prewarpScale * math.Tan(math.Pi*wn/designFs)
}

// bilinear maps an analog pole to the z-plane.
func bilinear(p complex128) complex128 {
	return (complex(bilinearFs2, 0) + p) / (complex(bilinearFs2, 0) - p)
}

// butterLowpass designs an order-n lowpass at normalized cutoff wn.
func butterLowpass(n int, wn float64) []Section {
	warped := prewarp(wn)
	proto := butterPrototype(n)

	poles := make([]complex128, len(proto))
	for i, p := range proto {
		poles[i] = bilinear(p * complex(warped, 0))
	}

	// N zeros at z = -1: (1 + z⁻¹)² per biquad, (1 + z⁻¹) for a lone real pole.
	sections := pairPoles(poles, Section{B0: 1, B1: 2, B2: 1}, Section{B0: 1, B1: 1})
	normalizeGain(sections, 0)
	return sections
}

// butterBandpass designs an order-n bandpass between normalized edges
// lo and hi. The result has 2n poles.
func butterBandpass(n int, lo, hi float64) []Section {
	wl := prewarp(lo)
	wh := prewarp(hi)
	bw := wh - wl
	wo := math.Sqrt(wl * wh)
	proto := butterPrototype(n)

	poles := make([]complex128, 0, 2*len(proto))
	for _, p := range proto {
		half := p * complex(bw/halfDivisor, 0)
		root := cmplx.Sqrt(half*half - complex(wo*wo, 0))
		poles = append(poles, bilinear(half+root), bilinear(half-root))
	}

	// n zeros at z = +1 and n at z = -1: (1 - z⁻²) per biquad.
	sections := pairPoles(poles, Section{B0: 1, B2: -1}, Section{B0: 1, B2: -1})
	centre := halfDivisor * math.Atan(wo/bilinearFs2)
	normalizeGain(sections, centre)
	return sections
}

// pairPoles groups z-plane poles into biquads. Complex poles are paired
// with their conjugates, real poles two at a time; a leftover real pole
// gets a first-order section built from single.
func pairPoles(poles []complex128, pair, single Section) []Section {
	var complexPoles []complex128
	var realPoles []float64
	for _, p := range poles {
		switch {
		case math.Abs(imag(p)) <= poleImagTolerance:
			realPoles = append(realPoles, real(p))
		case imag(p) > 0:
			complexPoles = append(complexPoles, p)
		}
	}

	// Poles nearest the unit circle go last so the cascade's early
	// sections carry the low-Q poles.
	slices.SortFunc(complexPoles, func(a, b complex128) int {
		return cmp.Compare(cmplx.Abs(a), cmplx.Abs(b))
	})
	slices.SortFunc(realPoles, func(a, b float64) int {
		return cmp.Compare(math.Abs(a), math.Abs(b))
	})

	sections := make([]Section, 0, len(poles)/2+1)
	for len(realPoles) >= 2 {
		r1, r2 := realPoles[0], realPoles[1]
		realPoles = realPoles[2:]
		s := pair
		s.A1 = -(r1 + r2)
		s.A2 = r1 * r2
		sections = append(sections, s)
	}
	if len(realPoles) == 1 {
		s := single
		s.A1 = -realPoles[0]
		sections = append(sections, s)
	}
	for _, p := range complexPoles {
		s := pair
		s.A1 = -2 * real(p)
		s.A2 = real(p)*real(p) + imag(p)*imag(p)
		sections = append(sections, s)
	}
	return sections
}

// normalizeGain scales the first section so the cascade has unit
// magnitude at omega (radians per sample).
func normalizeGain(sections []Section, omega float64) {
	if len(sections) == 0 {
		return
	}
	h := complex(1, 0)
	for _, s := range sections {
		h *= s.at(omega)
	}
	mag := cmplx.Abs(h)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return
	}
	g := 1 / mag
	sections[0].B0 *= g
	sections[0].B1 *= g
	sections[0].B2 *= g
}
