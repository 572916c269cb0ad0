package effects

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// SoftClip blends x with a tanh saturation of x. level in [0, 1] sets both
// the blend and the drive; the saturated path is normalized by tanh(drive)
// so full scale stays at full scale. Level 0 returns a copy of x.
func SoftClip(x []float64, level float64) []float64 {
	out := make([]float64, len(x))
	level = mathutil.Clamp(level, 0, 1)
	if level == 0 {
		copy(out, x)
		return out
	}

	drive := 1 + level*distortionDriveScale
	norm := math.Tanh(drive)
	for i, v := range x {
		out[i] = (1-level)*v + level*math.Tanh(drive*v)/norm
	}
	return out
}
