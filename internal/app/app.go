//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/sims/sand"
	"sand-ca/internal/ui"
)

// brushSpread is the per-material probe distance given to painted cells.
var brushSpread = map[sand.Material]uint8{
	sand.Sand:  2,
	sand.Water: 5,
	sand.Smoke: 5,
}

// Game adapts the sand world to the ebiten.Game interface and owns the
// brush state for interactive painting.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	rng     *core.RNG

	scale    int
	brush    int
	material sand.Material
	paused   bool
	tickOnce bool
	seed     int64

	painting     bool
	lastX, lastY int
}

// New constructs a Game hosting the provided world.
func New(world *sand.World, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(world, cfg.Scale),
		rng:      core.NewRNG(cfg.Seed),
		scale:    cfg.Scale,
		brush:    cfg.Brush,
		material: sand.Sand,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.painting = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleBrushKeys()
	g.handlePainting()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.material = sand.Sand
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.material = sand.Water
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.material = sand.Smoke
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		g.material = sand.Rock
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit5):
		g.material = sand.Air
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.brush--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.brush++
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.brush += int(wy)
	}
	if g.brush < 0 {
		g.brush = 0
	}
	if g.brush > 32 {
		g.brush = 32
	}
}

func (g *Game) handlePainting() {
	material := g.material
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		pressed = true
		material = sand.Air
	}
	if !pressed {
		g.painting = false
		return
	}

	mx, my := ebiten.CursorPosition()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	x, y := mx/scale, my/scale

	tint := sand.TintNone
	if material == sand.Sand {
		tint = sand.Tint(g.rng.Uint8n(4))
	}
	spread := brushSpread[material]

	if g.painting {
		g.world.Paint(g.lastX, g.lastY, x, y, g.brush, material, tint, spread)
	} else {
		g.world.Paint(x, y, x, y, g.brush, material, tint, spread)
	}
	g.painting = true
	g.lastX, g.lastY = x, y
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Materials(), g.world.Tints(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s r=%d", g.material, g.brush))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
