package sand

import "strconv"

// Scene names accepted by Config.Scene.
const (
	SceneEmpty = "empty"
	SceneDunes = "dunes"
)

// Params holds tunables for scene seeding.
type Params struct {
	NoiseAlpha    float64
	NoiseBeta     float64
	NoiseOctaves  int32
	NoiseScale    float64
	DuneBase      float64
	DuneAmplitude float64
	RockDepth     int
	WaterLine     float64
	SandSpread    uint8
	WaterSpread   uint8
}

// Config controls the sand world dimensions and scene seeding.
type Config struct {
	Width     int
	Height    int
	ChunkSize int

	Seed  int64
	Scene string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     320,
		Height:    200,
		ChunkSize: 8,
		Seed:      1337,
		Scene:     SceneEmpty,
		Params: Params{
			NoiseAlpha:    2,
			NoiseBeta:     2,
			NoiseOctaves:  3,
			NoiseScale:    3,
			DuneBase:      0.55,
			DuneAmplitude: 0.2,
			RockDepth:     4,
			WaterLine:     0.6,
			SandSpread:    2,
			WaterSpread:   5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["chunk_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && (v == SceneEmpty || v == SceneDunes) {
		c.Scene = v
	}
	if v, ok := cfg["noise_alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseAlpha = parsed
		}
	}
	if v, ok := cfg["noise_beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseBeta = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.NoiseOctaves = int32(parsed)
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["dune_base"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DuneBase = parsed
		}
	}
	if v, ok := cfg["dune_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DuneAmplitude = parsed
		}
	}
	if v, ok := cfg["rock_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RockDepth = parsed
		}
	}
	if v, ok := cfg["water_line"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.WaterLine = parsed
		}
	}
	if v, ok := cfg["sand_spread"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.SandSpread = uint8(parsed)
		}
	}
	if v, ok := cfg["water_spread"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.WaterSpread = uint8(parsed)
		}
	}
	return c
}
