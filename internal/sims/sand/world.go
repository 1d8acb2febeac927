package sand

import "sand-ca/internal/core"

// World owns the dense cell grid of a falling-sand automaton together with
// the chunk bookkeeping that lets the stepper skip quiescent regions.
//
// Cells are stored in parallel row-major slices: one material, one tint and
// one spread value per cell, plus a transient dirty flag that only ever
// holds state while Step runs. Chunks are tracked in two coarse bitmaps:
// active chunks are swept by the current tick, forecast chunks are staged
// for the next one.
type World struct {
	cfg Config

	w, h int

	chunkSize int
	chunkCols int
	chunkRows int

	hot      bool
	active   []bool
	forecast []bool

	materials []Material
	tints     []Tint
	spreads   []uint8
	dirty     []bool
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h, chunkSize int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.ChunkSize = chunkSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	total := cfg.Width * cfg.Height
	cols := (cfg.Width + cfg.ChunkSize - 1) / cfg.ChunkSize
	rows := (cfg.Height + cfg.ChunkSize - 1) / cfg.ChunkSize
	return &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		chunkSize: cfg.ChunkSize,
		chunkCols: cols,
		chunkRows: rows,
		active:    make([]bool, cols*rows),
		forecast:  make([]bool, cols*rows),
		materials: make([]Material, total),
		tints:     make([]Tint, total),
		spreads:   make([]uint8, total),
		dirty:     make([]bool, total),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Materials exposes the row-major material buffer. Callers must treat the
// slice as read-only and must not retain it across Reset.
func (w *World) Materials() []Material { return w.materials }

// Tints exposes the row-major tint buffer under the same contract as
// Materials.
func (w *World) Tints() []Tint { return w.tints }

// Hot reports whether any chunk is active, i.e. whether the next Step call
// can do work at all.
func (w *World) Hot() bool { return w.hot }

// Get returns the material at (x, y), reporting false out of range.
func (w *World) Get(x, y int) (Material, bool) {
	if x < 0 || y < 0 || x >= w.w || y >= w.h {
		return Air, false
	}
	return w.materials[y*w.w+x], true
}

// Reset restores every cell to air and clears all chunk activity without
// reallocating, then seeds the configured scene. A zero seed falls back to
// the configured one.
func (w *World) Reset(seed int64) {
	for i := range w.materials {
		w.materials[i] = Air
		w.tints[i] = TintNone
		w.spreads[i] = 0
		w.dirty[i] = false
	}
	w.hot = false
	for i := range w.active {
		w.active[i] = false
		w.forecast[i] = false
	}

	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if w.cfg.Scene == SceneDunes && w.w > 0 && w.h > 0 {
		w.buildDunes(effective)
	}
}

// Place overwrites the cell at (x, y) with the given material, tint and
// spread. Out-of-range coordinates are a silent no-op. The cell is marked
// dirty for the remainder of any in-progress tick, its chunk neighborhood
// is woken, and all staged chunks are promoted immediately so a manual
// placement becomes simulatable without waiting a tick.
func (w *World) Place(x, y int, m Material, t Tint, spread uint8) {
	if x < 0 || y < 0 || x >= w.w || y >= w.h {
		return
	}
	i := y*w.w + x
	w.materials[i] = m
	w.tints[i] = t
	w.spreads[i] = spread
	w.dirty[i] = true

	w.warmUp(x, y)
	for c, staged := range w.forecast {
		if staged {
			w.active[c] = true
			w.forecast[c] = false
		}
	}
	w.hot = true
}
