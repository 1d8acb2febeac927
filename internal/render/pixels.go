package render

import (
	"image/color"

	"sand-ca/internal/sims/sand"
)

// basePalette holds the base color per material, indexed by material value.
var basePalette = [...]color.RGBA{
	sand.Air:   {R: 24, G: 24, B: 28, A: 255},
	sand.Rock:  {R: 110, G: 108, B: 100, A: 255},
	sand.Sand:  {R: 214, G: 174, B: 96, A: 255},
	sand.Water: {R: 52, G: 120, B: 220, A: 255},
	sand.Smoke: {R: 182, G: 182, B: 190, A: 255},
}

// tintShade scales the base color per tint level, None through Darkest.
var tintShade = [4]float64{1.0, 0.85, 0.7, 0.55}

// shaded caches the palette with every tint level applied.
var shaded [len(basePalette)][len(tintShade)]color.RGBA

func init() {
	for m, base := range basePalette {
		for t, factor := range tintShade {
			shaded[m][t] = color.RGBA{
				R: uint8(float64(base.R) * factor),
				G: uint8(float64(base.G) * factor),
				B: uint8(float64(base.B) * factor),
				A: base.A,
			}
		}
	}
}

// MaterialColor returns the display color for a material at a tint level.
// Out-of-range values clamp to the last known entry.
func MaterialColor(m sand.Material, t sand.Tint) color.RGBA {
	if int(m) >= len(shaded) {
		m = sand.Material(len(shaded) - 1)
	}
	if int(t) >= len(tintShade) {
		t = sand.Tint(len(tintShade) - 1)
	}
	return shaded[m][t]
}

// FillRGBA converts the material and tint buffers into RGBA pixels in buf.
// buf must hold four bytes per cell.
func FillRGBA(buf []byte, materials []sand.Material, tints []sand.Tint) {
	for i, m := range materials {
		col := MaterialColor(m, tints[i])
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
