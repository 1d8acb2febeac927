package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/sims/sand"
)

// brushSpread is the per-material probe distance given to painted cells.
var brushSpread = map[sand.Material]uint8{
	sand.Sand:  2,
	sand.Water: 5,
	sand.Smoke: 5,
}

// hotkeys maps number keys to brush materials.
var hotkeys = map[rune]sand.Material{
	'1': sand.Sand,
	'2': sand.Water,
	'3': sand.Smoke,
	'4': sand.Rock,
	'5': sand.Air,
}

func main() {
	width := flag.Int("w", 160, "grid width in cells")
	height := flag.Int("h", 96, "grid height in cells (two per terminal row)")
	chunk := flag.Int("chunk", 8, "chunk size in cells")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Int64("seed", 1337, "scene seed")
	scene := flag.String("scene", sand.SceneDunes, "initial scene (empty or dunes)")
	brush := flag.Int("brush", 2, "initial brush radius")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.ChunkSize = *chunk
	cfg.Seed = *seed
	cfg.Scene = *scene

	world := sand.NewWithConfig(cfg)
	world.Reset(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	fs := core.NewFixedStep(*tps)
	material := sand.Sand
	radius := *brush
	paused := false
	painting := false
	lastX, lastY := 0, 0

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					close(quit)
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					world.Step()
				case ev.Rune() == 'r':
					world.Reset(*seed)
				case ev.Rune() == '+':
					if radius < 32 {
						radius++
					}
				case ev.Rune() == '-':
					if radius > 0 {
						radius--
					}
				default:
					if m, ok := hotkeys[ev.Rune()]; ok {
						material = m
					}
				}
			case *tcell.EventMouse:
				// Terminal cells are two grid rows tall.
				mx, my := ev.Position()
				x, y := mx, my*2
				m := material
				pressed := ev.Buttons()&tcell.ButtonPrimary != 0
				if !pressed && ev.Buttons()&tcell.ButtonSecondary != 0 {
					pressed = true
					m = sand.Air
				}
				if pressed {
					if painting {
						world.Paint(lastX, lastY, x, y, radius, m, sand.TintNone, brushSpread[m])
					} else {
						world.Paint(x, y, x, y, radius, m, sand.TintNone, brushSpread[m])
					}
					painting = true
					lastX, lastY = x, y
				} else {
					painting = false
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		default:
			if fs.ShouldStep() {
				if !paused {
					world.Step()
				}
				draw(screen, world)
			}
			time.Sleep(time.Millisecond)
		}
	}
}

// draw renders two grid rows per terminal row using the upper half block,
// with the top cell as foreground and the bottom cell as background.
func draw(screen tcell.Screen, world *sand.World) {
	size := world.Size()
	materials := world.Materials()
	tints := world.Tints()

	for ty := 0; ty*2 < size.H; ty++ {
		top := ty * 2
		bottom := top + 1
		for x := 0; x < size.W; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(materials, tints, size.W, x, top))
			if bottom < size.H {
				style = style.Background(cellColor(materials, tints, size.W, x, bottom))
			}
			screen.SetContent(x, ty, '▀', nil, style)
		}
	}
	screen.Show()
}

func cellColor(materials []sand.Material, tints []sand.Tint, w, x, y int) tcell.Color {
	i := y*w + x
	col := render.MaterialColor(materials[i], tints[i])
	return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
}
