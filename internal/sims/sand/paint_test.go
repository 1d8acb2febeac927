package sand

import "testing"

func TestPaintPointStampsDisc(t *testing.T) {
	world := New(11, 11, 8)
	world.Paint(5, 5, 5, 5, 2, Rock, TintNone, 0)

	mustRock := [][2]int{{5, 5}, {3, 5}, {7, 5}, {5, 3}, {5, 7}, {6, 6}}
	for _, c := range mustRock {
		if m, _ := world.Get(c[0], c[1]); m != Rock {
			t.Fatalf("cell (%d,%d) = %v, expected rock", c[0], c[1], m)
		}
	}
	// Bounding-box corners fail the rounded-distance test.
	mustAir := [][2]int{{3, 3}, {7, 7}, {3, 7}, {7, 3}}
	for _, c := range mustAir {
		if m, _ := world.Get(c[0], c[1]); m != Air {
			t.Fatalf("cell (%d,%d) = %v, expected air outside the disc", c[0], c[1], m)
		}
	}
}

func TestPaintVerticalStrokeWalksRows(t *testing.T) {
	world := New(8, 12, 8)
	world.Paint(3, 8, 3, 1, 0, Rock, TintNone, 0)

	// The walk starts at the topmost endpoint and covers the vertical span.
	for y := 1; y <= 7; y++ {
		if m, _ := world.Get(3, y); m != Rock {
			t.Fatalf("cell (3,%d) = %v, expected rock", y, m)
		}
	}
	if m, _ := world.Get(3, 0); m != Air {
		t.Fatal("stroke must not extend above the top endpoint")
	}
	if m, _ := world.Get(2, 4); m != Air {
		t.Fatal("zero radius must stamp single cells")
	}
}

func TestPaintDiagonalCoversTheSegment(t *testing.T) {
	world := New(10, 10, 8)
	world.Paint(0, 0, 7, 7, 1, Rock, TintNone, 0)

	if m, _ := world.Get(3, 3); m != Rock {
		t.Fatal("diagonal stroke must cover the midpoint")
	}
	if m, _ := world.Get(7, 0); m != Air {
		t.Fatal("diagonal stroke must stay near the segment")
	}
}

func TestPaintClipsOutsideTheGrid(t *testing.T) {
	world := New(8, 8, 8)
	world.Paint(0, 0, 0, 3, 3, Rock, TintNone, 0)

	// The disc is clipped at the edges and the in-range part landed.
	if m, _ := world.Get(0, 0); m != Rock {
		t.Fatal("clipped stroke must still stamp in-range cells")
	}
}

func TestPaintFullyOutsideIsANoOp(t *testing.T) {
	world := New(8, 8, 8)
	world.Paint(-9, -9, -9, -4, 2, Rock, TintNone, 0)

	for i, m := range world.Materials() {
		if m != Air {
			t.Fatalf("cell %d mutated by an out-of-range stroke", i)
		}
	}
	if world.Hot() {
		t.Fatal("an out-of-range stroke must not wake anything")
	}
}

func TestPaintWakesChunksLikePlacement(t *testing.T) {
	world := New(16, 16, 8)
	world.Paint(2, 2, 5, 2, 1, Sand, TintDark, 2)

	if !world.Hot() {
		t.Fatal("painting must set the hot flag")
	}
	if !world.ActiveChunks()[0] {
		t.Fatal("painting must activate the painted chunk")
	}
}
