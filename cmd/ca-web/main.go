package main

import (
	"flag"
	"log"

	"sand-ca/internal/sims/sand"
	"sand-ca/internal/web"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	width := flag.Int("w", 320, "grid width in cells")
	height := flag.Int("h", 200, "grid height in cells")
	chunk := flag.Int("chunk", 8, "chunk size in cells")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Int64("seed", 1337, "scene seed")
	scene := flag.String("scene", sand.SceneDunes, "initial scene (empty or dunes)")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.ChunkSize = *chunk
	cfg.Seed = *seed
	cfg.Scene = *scene

	world := sand.NewWithConfig(cfg)
	world.Reset(*seed)

	srv := web.NewServer(world, *tps)
	log.Printf("serving on http://localhost%s", *addr)
	log.Fatal(srv.ListenAndServe(*addr))
}
