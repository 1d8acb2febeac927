package sand

import (
	"slices"
	"testing"
)

func TestWarmUpWakesChunkNeighborhood(t *testing.T) {
	world := New(32, 32, 8)
	world.Place(9, 9, Sand, TintNone, 0)

	// (9,9) sits in chunk (1,1); the whole 3x3 neighborhood activates.
	for cy := 0; cy < world.ChunkRows(); cy++ {
		for cx := 0; cx < world.ChunkCols(); cx++ {
			want := cx <= 2 && cy <= 2
			got := world.ActiveChunks()[cy*world.ChunkCols()+cx]
			if got != want {
				t.Fatalf("chunk (%d,%d) active = %v, expected %v", cx, cy, got, want)
			}
		}
	}
}

func TestWarmUpClampsAtEdges(t *testing.T) {
	world := New(32, 32, 8)
	world.Place(0, 0, Sand, TintNone, 0)

	active := 0
	for _, on := range world.ActiveChunks() {
		if on {
			active++
		}
	}
	// Corner chunk only has three existing neighbors.
	if active != 4 {
		t.Fatalf("corner placement woke %d chunks, expected 4", active)
	}
}

func TestBoundaryPlacementWakesBothChunks(t *testing.T) {
	world := New(16, 8, 8)
	world.Place(7, 0, Sand, TintNone, 0)

	if !world.ActiveChunks()[0] || !world.ActiveChunks()[1] {
		t.Fatal("placing at a chunk boundary must activate both chunks")
	}
}

func TestMovesActivateChunksForNextTick(t *testing.T) {
	world := New(8, 24, 8)
	world.Place(4, 0, Sand, TintNone, 2)

	world.Step()

	// The fall staged activity, which Step promoted for the next tick.
	if !world.Hot() {
		t.Fatal("a tick with movement must leave the world hot")
	}
	if slices.Contains(world.forecast, true) {
		t.Fatal("forecast must be cleared when the tick commits")
	}
	if !slices.Contains(world.active, true) {
		t.Fatal("the moved cell's chunk must be active for the next tick")
	}
}

func TestInactiveChunksAreNeverVisited(t *testing.T) {
	world := New(16, 16, 8)
	// Build an unsupported grain directly, bypassing Place so no chunk
	// wakes up. The grid is hot but the grain's chunk stays inactive.
	world.materials[4*16+12] = Sand
	world.spreads[4*16+12] = 2
	world.Place(1, 1, Rock, TintNone, 0)
	world.active[1] = false
	world.active[3] = false

	world.Step()

	if world.materials[4*16+12] != Sand {
		t.Fatal("a cell in an inactive chunk must not be simulated")
	}
}
