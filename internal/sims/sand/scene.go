package sand

import (
	"github.com/aquilax/go-perlin"

	"sand-ca/internal/core"
)

// buildDunes seeds a rock floor, a perlin-shaped sand surface and water
// pooled in the dips below the configured waterline. Cells go through
// Place so the seeded regions start the first tick awake.
func (w *World) buildDunes(seed int64) {
	p := w.cfg.Params
	noise := perlin.NewPerlin(p.NoiseAlpha, p.NoiseBeta, p.NoiseOctaves, seed)
	rng := core.NewRNG(seed)

	rockTop := w.h - p.RockDepth
	if rockTop < 0 {
		rockTop = 0
	}
	waterline := int(float64(w.h) * p.WaterLine)

	for x := 0; x < w.w; x++ {
		n := noise.Noise1D(float64(x) / float64(w.w) * p.NoiseScale)
		surface := int(float64(w.h)*p.DuneBase - n*float64(w.h)*p.DuneAmplitude)
		if surface < 0 {
			surface = 0
		}
		if surface > rockTop {
			surface = rockTop
		}

		for y := surface; y < rockTop; y++ {
			w.Place(x, y, Sand, Tint(rng.Uint8n(4)), p.SandSpread)
		}
		for y := rockTop; y < w.h; y++ {
			w.Place(x, y, Rock, TintNone, 0)
		}
		for y := waterline; y < surface; y++ {
			w.Place(x, y, Water, TintNone, p.WaterSpread)
		}
	}
}
