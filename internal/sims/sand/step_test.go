package sand

import "testing"

func TestSandFallsStraightDown(t *testing.T) {
	world := New(3, 3, 3)
	world.Place(1, 0, Sand, TintDark, 2)

	world.Step()

	if m, _ := world.Get(1, 0); m != Air {
		t.Fatalf("origin = %v, expected air", m)
	}
	if m, _ := world.Get(1, 1); m != Sand {
		t.Fatalf("cell below = %v, expected sand", m)
	}
	if world.Tints()[1*3+1] != TintDark {
		t.Fatal("tint must travel with the falling cell")
	}

	world.Step()
	if m, _ := world.Get(1, 2); m != Sand {
		t.Fatal("sand must keep falling to the bottom row")
	}

	// Settled sand stops generating work.
	world.Step()
	if world.Hot() {
		t.Fatal("settled world must go cold")
	}
}

func TestSandRollsDiagonallyOffAPeak(t *testing.T) {
	world := New(3, 2, 3)
	world.Place(1, 1, Sand, TintNone, 2)
	world.Place(1, 0, Sand, TintNone, 2)

	world.Step()

	if m, _ := world.Get(1, 0); m != Air {
		t.Fatal("stacked sand must roll off the peak")
	}
	if m, _ := world.Get(1, 1); m != Sand {
		t.Fatal("base grain must stay put")
	}
	// Row 0 sweeps left to right, so the first diagonal probe goes right.
	if m, _ := world.Get(2, 1); m != Sand {
		t.Fatal("rolling grain must land down-right")
	}
}

func TestSandWithZeroSpreadStacks(t *testing.T) {
	world := New(3, 2, 3)
	world.Place(1, 1, Sand, TintNone, 0)
	world.Place(1, 0, Sand, TintNone, 0)

	world.Step()

	if m, _ := world.Get(1, 0); m != Sand {
		t.Fatal("zero spread must disable diagonal rolling")
	}
}

func TestSandSinksThroughWater(t *testing.T) {
	world := New(1, 3, 3)
	world.Place(0, 0, Sand, TintNone, 2)
	world.Place(0, 1, Water, TintNone, 5)
	world.Place(0, 2, Rock, TintNone, 0)

	world.Step()

	if m, _ := world.Get(0, 0); m != Water {
		t.Fatalf("top = %v, expected displaced water", m)
	}
	if m, _ := world.Get(0, 1); m != Sand {
		t.Fatalf("middle = %v, expected sunken sand", m)
	}
}

func TestWaterLevelsHorizontally(t *testing.T) {
	world := New(3, 1, 3)
	world.Place(0, 0, Water, TintNone, 5)

	world.Step()

	// Row 0 sweeps left to right; the leveling pass probes right first.
	if m, _ := world.Get(0, 0); m != Air {
		t.Fatal("water must leave its column when it cannot fall")
	}
	if m, _ := world.Get(1, 0); m != Water {
		t.Fatal("water must slide one cell toward the preferred side")
	}
}

func TestWaterDoesNotSinkThroughWater(t *testing.T) {
	world := New(1, 2, 2)
	world.Place(0, 0, Water, TintDark, 0)
	world.Place(0, 1, Water, TintDarker, 0)

	world.Step()

	if world.Tints()[0] != TintDark || world.Tints()[1] != TintDarker {
		t.Fatal("stacked water must not exchange cells")
	}
}

func TestSmokeRisesIntoAir(t *testing.T) {
	world := New(1, 3, 3)
	world.Place(0, 2, Smoke, TintNone, 3)

	world.Step()

	if m, _ := world.Get(0, 2); m != Air {
		t.Fatal("smoke must leave the bottom cell")
	}
	if m, _ := world.Get(0, 1); m != Smoke {
		t.Fatal("smoke must rise exactly one cell per tick")
	}

	world.Step()
	if m, _ := world.Get(0, 0); m != Smoke {
		t.Fatal("smoke must keep rising to the top")
	}
}

func TestSmokeStopsUnderRock(t *testing.T) {
	world := New(1, 3, 3)
	world.Place(0, 0, Rock, TintNone, 0)
	world.Place(0, 2, Smoke, TintNone, 0)

	world.Step()
	world.Step()

	if m, _ := world.Get(0, 1); m != Smoke {
		t.Fatal("smoke must stop directly under the rock")
	}
	if m, _ := world.Get(0, 0); m != Rock {
		t.Fatal("rock never moves")
	}
}

func TestSmokeMovesOncePerTick(t *testing.T) {
	world := New(1, 4, 4)
	world.Place(0, 3, Smoke, TintNone, 0)

	world.Step()

	// The destination cell is dirty for the rest of the tick, so a single
	// tick can only carry the smoke up one row even though rows above are
	// swept afterwards.
	if m, _ := world.Get(0, 2); m != Smoke {
		t.Fatal("smoke must advance exactly one row per tick")
	}
	if m, _ := world.Get(0, 1); m == Smoke {
		t.Fatal("smoke must not move twice in one tick")
	}
}

func TestRockNeverMoves(t *testing.T) {
	world := New(3, 3, 3)
	world.Place(1, 0, Rock, TintNone, 0)

	for i := 0; i < 4; i++ {
		world.Step()
	}

	if m, _ := world.Get(1, 0); m != Rock {
		t.Fatal("rock must hang in place forever")
	}
}
