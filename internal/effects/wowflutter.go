package effects

import "math"

// WowFlutterParams describes the transport speed variation. Intensities are
// peak fractional speed deviations (0.001 = 0.1 %).
type WowFlutterParams struct {
	WowFreq          float64
	FlutterFreq      float64
	WowIntensity     float64
	FlutterIntensity float64
}

// displacement returns how far ahead of real time (in seconds) a transport
// running at speed 1 + Σ I·sin(2π f t) has read by time t.
func (p WowFlutterParams) displacement(t float64) float64 {
	var d float64
	for _, m := range [...]struct{ freq, intensity float64 }{
		{p.WowFreq, p.WowIntensity},
		{p.FlutterFreq, p.FlutterIntensity},
	} {
		if m.freq <= 0 || m.intensity == 0 {
			continue
		}
		w := 2 * math.Pi * m.freq
		d += m.intensity / w * (1 - math.Cos(w*t))
	}
	return d
}

// WowFlutter re-reads x at a time-varying position, emulating slow (wow)
// and fast (flutter) speed variation of a mechanical transport. Read
// positions between samples use 4-point Hermite interpolation; reads past
// the end hold the last sample.
func WowFlutter(x []float64, sampleRate float64, p WowFlutterParams) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 || sampleRate <= 0 {
		copy(out, x)
		return out
	}

	for i := range out {
		t := float64(i) / sampleRate
		pos := float64(i) + sampleRate*p.displacement(t)
		out[i] = hermiteAt(x, pos)
	}
	return out
}

// hermiteAt interpolates x at fractional position pos with edge clamping.
func hermiteAt(x []float64, pos float64) float64 {
	n := len(x)
	if pos <= 0 {
		return x[0]
	}
	if pos >= float64(n-1) {
		return x[n-1]
	}

	i := int(pos)
	frac := pos - float64(i)
	at := func(k int) float64 {
		return x[min(max(k, 0), n-1)]
	}
	y0, y1, y2, y3 := at(i-1), at(i), at(i+1), at(i+2)

	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*frac+coefB)*frac+coefC)*frac + coefD
}
