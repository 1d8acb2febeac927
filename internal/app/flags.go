package app

import (
	"flag"

	"sand-ca/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	ChunkSize int
	Scale     int
	TPS       int
	Seed      int64
	Scene     string
	Brush     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     320,
		Height:    200,
		ChunkSize: 8,
		Scale:     3,
		TPS:       60,
		Seed:      1337,
		Scene:     sand.SceneDunes,
		Brush:     3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.ChunkSize, "chunk", c.ChunkSize, "chunk size in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world reset")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene (empty or dunes)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius")
}

// SimConfig converts the flags into an engine configuration.
func (c *Config) SimConfig() sand.Config {
	cfg := sand.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.ChunkSize = c.ChunkSize
	cfg.Seed = c.Seed
	cfg.Scene = c.Scene
	return cfg
}
