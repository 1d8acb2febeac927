package sand

import (
	"slices"
	"testing"
)

func TestDunesSceneDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.Scene = SceneDunes

	world := NewWithConfig(cfg)
	world.Reset(11)
	first := append([]Material(nil), world.Materials()...)
	firstTints := append([]Tint(nil), world.Tints()...)

	world.Reset(11)

	if !slices.Equal(first, world.Materials()) {
		t.Fatal("dunes scene must be deterministic per seed")
	}
	if !slices.Equal(firstTints, world.Tints()) {
		t.Fatal("dunes tints must be deterministic per seed")
	}
}

func TestDunesSceneLayersMaterials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.Scene = SceneDunes

	world := NewWithConfig(cfg)
	world.Reset(3)

	counts := map[Material]int{}
	for _, m := range world.Materials() {
		counts[m]++
	}
	if counts[Sand] == 0 {
		t.Fatal("dunes scene must seed sand")
	}
	if counts[Rock] == 0 {
		t.Fatal("dunes scene must seed a rock floor")
	}
	if !world.Hot() {
		t.Fatal("a seeded scene must start hot")
	}

	// The bottom row is always rock floor.
	for x := 0; x < 64; x++ {
		if m, _ := world.Get(x, 47); m != Rock {
			t.Fatalf("column %d bottom cell is %v, expected rock", x, m)
		}
	}
}

func TestFromMapParsesAndValidates(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":          "100",
		"h":          "80",
		"chunk_size": "16",
		"seed":       "9",
		"scene":      "dunes",
		"rock_depth": "6",
	})
	if cfg.Width != 100 || cfg.Height != 80 || cfg.ChunkSize != 16 {
		t.Fatal("dimension keys not applied")
	}
	if cfg.Seed != 9 || cfg.Scene != SceneDunes || cfg.Params.RockDepth != 6 {
		t.Fatal("seed/scene/param keys not applied")
	}

	cfg = FromMap(map[string]string{
		"w":     "-4",
		"scene": "volcano",
	})
	defaults := DefaultConfig()
	if cfg.Width != defaults.Width || cfg.Scene != defaults.Scene {
		t.Fatal("invalid values must fall back to defaults")
	}
}
