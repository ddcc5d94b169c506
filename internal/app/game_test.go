package app

import (
	"errors"
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/pkg/geom"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(defs.DefaultLevel, 1)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// buildableTiles returns tiles that pass the bounds and route-clearance
// checks, enough for the economy scenarios.
func buildableTiles(g *Game, n int) []component.Tile {
	var tiles []component.Tile
	for row := -9; row <= 9 && len(tiles) < n; row++ {
		for col := -9; col <= 9 && len(tiles) < n; col++ {
			tile := component.Tile{Col: col, Row: row}
			pos := TileCenter(tile)
			if pos.X < g.Level.MinX || pos.X > g.Level.MaxX || pos.Z < g.Level.MinZ || pos.Z > g.Level.MaxZ {
				continue
			}
			if g.Route.DistanceTo(pos) < config.PathClearance {
				continue
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// TestPlacementEconomy replays the scenario: starting gold 3000, tower
// cost 50 — 60 placements succeed, the 61st fails with insufficient gold.
func TestPlacementEconomy(t *testing.T) {
	g := newTestGame(t)
	if cost := defs.TowerLibrary[defs.TowerArrow].Cost; cost != 50 {
		t.Fatalf("arrow cost = %d, scenario expects 50", cost)
	}

	tiles := buildableTiles(g, 61)
	if len(tiles) < 61 {
		t.Fatalf("level only has %d buildable tiles, need 61", len(tiles))
	}

	for i := 0; i < 60; i++ {
		if _, err := g.PlaceTower(defs.TowerArrow, tiles[i]); err != nil {
			t.Fatalf("placement %d failed: %v", i+1, err)
		}
	}
	if g.World.GameState.Gold != 0 {
		t.Errorf("gold = %d after 60 placements, want 0", g.World.GameState.Gold)
	}

	_, err := g.PlaceTower(defs.TowerArrow, tiles[60])
	if !errors.Is(err, ErrInsufficientGold) {
		t.Errorf("61st placement error = %v, want ErrInsufficientGold", err)
	}
	if len(g.World.Towers) != 60 {
		t.Errorf("towers = %d, want 60", len(g.World.Towers))
	}
}

// TestPlacementValidation covers the remaining rejection reasons; state
// must be unmodified on every failure.
func TestPlacementValidation(t *testing.T) {
	g := newTestGame(t)
	goldBefore := g.World.GameState.Gold

	// On the route: the default level runs along z=-16 at x in [-20,10].
	if _, err := g.PlaceTower(defs.TowerArrow, component.Tile{Col: 0, Row: -9}); !errors.Is(err, ErrOnPath) {
		t.Errorf("on-path placement error = %v, want ErrOnPath", err)
	}

	// Out of bounds.
	if _, err := g.PlaceTower(defs.TowerArrow, component.Tile{Col: 50, Row: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds error = %v, want ErrOutOfBounds", err)
	}

	// Occupied tile.
	tile := buildableTiles(g, 1)[0]
	if _, err := g.PlaceTower(defs.TowerArrow, tile); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	if _, err := g.PlaceTower(defs.TowerFrost, tile); !errors.Is(err, ErrTileOccupied) {
		t.Errorf("occupied-tile error = %v, want ErrTileOccupied", err)
	}

	if g.World.GameState.Gold != goldBefore-defs.TowerLibrary[defs.TowerArrow].Cost {
		t.Error("failed placements changed the gold ledger")
	}
}

// TestPlacementRejectedOutsideBuildPhase: phase-violating commands are
// reported, not silently ignored.
func TestPlacementRejectedOutsideBuildPhase(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	tile := buildableTiles(g, 1)[0]
	if _, err := g.PlaceTower(defs.TowerArrow, tile); !errors.Is(err, ErrNotInBuildPhase) {
		t.Errorf("placement in WAVE error = %v, want ErrNotInBuildPhase", err)
	}
	if err := g.StartWave(); !errors.Is(err, ErrNotInBuildPhase) {
		t.Errorf("second StartWave error = %v, want ErrNotInBuildPhase", err)
	}
}

// TestWaveEnemyCountScaling replays the scenario: base 200, increment 100,
// wave 3 has 400 enemies queued.
func TestWaveEnemyCountScaling(t *testing.T) {
	g := newTestGame(t)
	g.World.GameState.WaveNumber = 3

	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	want := config.EnemiesPerWave + 2*config.EnemiesIncrementPerWave
	if got := len(g.World.Wave.Pending); got != want {
		t.Errorf("wave 3 queued %d enemies, want %d", got, want)
	}
}

// TestSpawnSchedule verifies enemies appear at their precomputed delays.
func TestSpawnSchedule(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	// After just over two spawn intervals, three enemies are out
	// (delays 0, 1x and 2x interval).
	interval := float64(config.SpawnInterval)
	ticks := int(2.1*interval/0.05) + 1
	for i := 0; i < ticks; i++ {
		g.Update(0.05)
	}
	if got := g.World.Enemies.Len(); got != 3 {
		t.Errorf("enemies spawned = %d, want 3", got)
	}
}

// TestEscapeCostsLifeAndGameOver replays the scenario: lives 1, one enemy
// reaches the end — phase flips to GAME_OVER with lives 0.
func TestEscapeCostsLifeAndGameOver(t *testing.T) {
	g := newTestGame(t)
	gs := g.World.GameState
	gs.Lives = 1
	gs.Phase = component.WavePhase
	g.World.Wave = &component.Wave{Number: 1}

	enemy := &component.Enemy{
		PathProgress:    0.999,
		Health:          100,
		MaxHealth:       100,
		BaseSpeed:       50,
		SpeedMultiplier: 1,
		SlowMultiplier:  1,
	}
	g.World.Enemies.Add(enemy)

	for i := 0; i < 10 && gs.Phase != component.GameOverPhase; i++ {
		g.Update(0.05)
	}

	if gs.Phase != component.GameOverPhase {
		t.Fatal("escape with 1 life did not end the game")
	}
	if gs.Lives != 0 {
		t.Errorf("lives = %d, want 0", gs.Lives)
	}
	if g.World.Enemies.Len() != 0 {
		t.Error("escaped enemy not removed")
	}

	// Terminal phase: the battle stays frozen until Reset, but the clock
	// keeps running so lingering cosmetics can drain.
	timeAtGameOver := g.World.GameTime
	g.Update(0.05)
	if g.World.GameTime <= timeAtGameOver {
		t.Error("clock stopped in GAME_OVER")
	}
	if gs.Phase != component.GameOverPhase {
		t.Error("left GAME_OVER without an explicit Reset")
	}
	if gs.Lives != 0 {
		t.Error("lives changed in GAME_OVER")
	}
}

// TestEffectsExpireOutsideWave: effect records drain on the simulation
// clock in every phase, including the terminal one.
func TestEffectsExpireOutsideWave(t *testing.T) {
	g := newTestGame(t)
	g.World.GameState.Phase = component.GameOverPhase
	g.World.Effects.Add(&component.Effect{
		Kind:      component.EffectImpact,
		ExpiresAt: g.World.GameTime + config.EffectDuration,
	})

	steps := int(config.EffectDuration/0.05) + 2
	for i := 0; i < steps; i++ {
		g.Update(0.05)
	}
	if g.World.Effects.Len() != 0 {
		t.Error("effect record survived past its expiry in GAME_OVER")
	}
}

// TestLeftoverProjectilesResolveInBuild: a shell still in flight when the
// wave ends keeps falling during BUILD instead of freezing mid-air.
func TestLeftoverProjectilesResolveInBuild(t *testing.T) {
	g := newTestGame(t)
	g.World.Projectiles.Add(&component.Projectile{
		Kind:      defs.TowerFlame,
		Ballistic: true,
		Position:  geom.Vec3{Y: 3},
		Velocity:  geom.Vec3{Y: -1},
		Damage:    45,
		HitRadius: 1.0,
		SpawnedAt: g.World.GameTime,
	})

	for i := 0; i < 200 && g.World.Projectiles.Len() > 0; i++ {
		g.Update(0.05)
	}
	if g.World.Projectiles.Len() != 0 {
		t.Error("projectile frozen mid-air outside the wave phase")
	}
}

// TestWaveCompletionReturnsToBuild: all spawned, last enemy killed — back
// to BUILD with the wave index incremented and no reward lost.
func TestWaveCompletionReturnsToBuild(t *testing.T) {
	g := newTestGame(t)
	gs := g.World.GameState
	gs.Phase = component.WavePhase
	g.World.Wave = &component.Wave{Number: 1} // empty queue: all spawned

	enemy := &component.Enemy{
		PathProgress:    0.1,
		Health:          1,
		MaxHealth:       1,
		BaseSpeed:       1,
		SpeedMultiplier: 1,
		SlowMultiplier:  1,
		GoldReward:      config.EnemyGoldReward,
	}
	id := g.World.Enemies.Add(enemy)
	goldBefore := gs.Gold

	// Kill it, then let the death animation play out.
	system.ApplyDamage(g.World, id, enemy.Health)
	steps := int(config.DeathDuration/0.05) + 3
	for i := 0; i < steps; i++ {
		g.Update(0.05)
	}

	if gs.Phase != component.BuildPhase {
		t.Fatalf("phase = %s, want BUILD", gs.Phase)
	}
	if gs.WaveNumber != 2 {
		t.Errorf("wave number = %d, want 2", gs.WaveNumber)
	}
	if gs.Gold != goldBefore+config.EnemyGoldReward {
		t.Errorf("gold = %d, want %d", gs.Gold, goldBefore+config.EnemyGoldReward)
	}

	found := false
	for _, ev := range g.DrainEvents() {
		if ev.Type == event.WaveEnded {
			found = true
		}
	}
	if !found {
		t.Error("no WaveEnded event")
	}
}

// TestResetRestoresDefaults: reset is atomic and complete.
func TestResetRestoresDefaults(t *testing.T) {
	g := newTestGame(t)
	tile := buildableTiles(g, 1)[0]
	if _, err := g.PlaceTower(defs.TowerArrow, tile); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	for i := 0; i < 40; i++ {
		g.Update(0.05)
	}

	g.Reset()

	gs := g.World.GameState
	if gs.Phase != component.BuildPhase || gs.WaveNumber != 1 {
		t.Errorf("phase/wave after reset = %s/%d", gs.Phase, gs.WaveNumber)
	}
	if gs.Gold != config.StartingGold || gs.Lives != config.StartingLives {
		t.Errorf("gold/lives after reset = %d/%d", gs.Gold, gs.Lives)
	}
	if len(g.World.Towers) != 0 || g.World.Enemies.Len() != 0 || g.World.Projectiles.Len() != 0 {
		t.Error("entities survived the reset")
	}
	if g.World.GameTime != 0 {
		t.Error("simulation clock survived the reset")
	}
	if len(g.DrainEvents()) != 0 {
		t.Error("stale events survived the reset")
	}

	// The freed tile is buildable again.
	if _, err := g.PlaceTower(defs.TowerArrow, tile); err != nil {
		t.Errorf("placement on freed tile after reset: %v", err)
	}
}

// TestUpdateClampsDeltaTime: an absurd dt advances the clock by at most
// the configured maximum.
func TestUpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(t)
	g.Update(10.0)
	if g.World.GameTime != config.MaxDeltaTime {
		t.Errorf("GameTime = %v after dt=10, want %v", g.World.GameTime, config.MaxDeltaTime)
	}
	g.Update(-1)
	if g.World.GameTime != config.MaxDeltaTime {
		t.Error("negative dt advanced the clock")
	}
}

// TestSnapshotIsolation: mutating a snapshot never perturbs the sim.
func TestSnapshotIsolation(t *testing.T) {
	g := newTestGame(t)
	gs := g.World.GameState
	gs.Phase = component.WavePhase
	g.World.Wave = &component.Wave{Number: 1}
	g.World.Enemies.Add(&component.Enemy{
		Health: 100, MaxHealth: 100, BaseSpeed: 1, SpeedMultiplier: 1, SlowMultiplier: 1,
	})
	g.Update(0.05)

	snap := g.Snapshot()
	snap.Enemies[0].Health = -777
	snap.Gold = -1

	if e := g.World.Enemies.Entries()[0].Value; e.Health != 100 {
		t.Error("snapshot mutation reached the live enemy")
	}
	if g.World.GameState.Gold < 0 {
		t.Error("snapshot mutation reached the gold ledger")
	}
}
