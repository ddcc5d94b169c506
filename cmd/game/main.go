// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 picks a time-based seed")
	tickRate := flag.Int("tick-rate", 0, "simulation ticks per second; 0 uses the default")
	towersPath := flag.String("towers-config", "", "path to tower tuning JSON overrides")
	levelPath := flag.String("level", "", "path to authored level JSON")
	flag.Parse()

	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatalf("Failed to load tower definitions: %v", err)
		}
	}

	cfg := server.DefaultConfig()
	cfg.Addr = *addr
	cfg.Seed = *seed
	if *tickRate > 0 {
		cfg.TickRate = *tickRate
	}
	if *levelPath != "" {
		level, err := defs.LoadLevelDefinition(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		cfg.Level = level
	}

	log.Printf("go-lane-defense listening on %s", cfg.Addr)
	log.Fatal(server.StartApp(cfg))
}
