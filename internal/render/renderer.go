//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sand-ca/internal/sims/sand"
)

// GridPainter updates a single RGBA image from the world's raw buffers.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the material and tint buffers into the painter image and
// draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, materials []sand.Material, tints []sand.Tint, scale int) {
	if len(materials) != gp.w*gp.h || len(tints) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, materials, tints)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
