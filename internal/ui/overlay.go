//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sand-ca/internal/sims/sand"
)

// Overlay highlights the chunks the activity tracker will sweep, so the
// dirty-region optimization can be watched while the simulation runs.
// Toggled with Tab.
type Overlay struct {
	world *sand.World
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *sand.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw tints every active chunk on top of the rendered grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	span := o.world.ChunkSize() * scale
	cols := o.world.ChunkCols()
	if span <= 0 || cols <= 0 {
		return
	}
	for i, on := range o.world.ActiveChunks() {
		if !on {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(span), float64(span))
		op.GeoM.Translate(float64((i%cols)*span), float64((i/cols)*span))
		op.ColorM.Scale(1, 0.4, 0.25, 0.18)
		screen.DrawImage(o.pixel, op)
	}
}
