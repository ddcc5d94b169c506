// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/geom"
)

// Ошибки валидации размещения. Возвращаются синхронно, состояние при
// отказе не меняется; вызывающий различает причины через errors.Is.
var (
	ErrNotInBuildPhase  = errors.New("command only valid in build phase")
	ErrUnknownTowerKind = errors.New("unknown tower kind")
	ErrOutOfBounds      = errors.New("tile is outside the buildable area")
	ErrOnPath           = errors.New("tile blocks the enemy route")
	ErrTileOccupied     = errors.New("tile is already occupied")
	ErrInsufficientGold = errors.New("not enough gold")
)

// TileCenter — мировая позиция центра тайла, Y — высота дула башни.
func TileCenter(tile component.Tile) geom.Vec3 {
	return geom.Vec3{
		X: (float64(tile.Col) + 0.5) * config.TileSize,
		Y: config.TowerMuzzleHeight,
		Z: (float64(tile.Row) + 0.5) * config.TileSize,
	}
}

// PlaceTower пытается поставить башню на тайл. Проверки: фаза, известный
// вид, границы, не на маршруте, тайл свободен, хватает золота. Золото
// списывается атомарно с созданием башни.
func (g *Game) PlaceTower(kind defs.TowerKind, tile component.Tile) (types.EntityID, error) {
	gs := g.World.GameState
	if gs.Phase != component.BuildPhase {
		return 0, fmt.Errorf("place tower in phase %s: %w", gs.Phase, ErrNotInBuildPhase)
	}

	def, ok := defs.TowerLibrary[kind]
	if !ok {
		return 0, fmt.Errorf("place tower %d: %w", kind, ErrUnknownTowerKind)
	}

	pos := TileCenter(tile)
	if pos.X < g.Level.MinX || pos.X > g.Level.MaxX || pos.Z < g.Level.MinZ || pos.Z > g.Level.MaxZ {
		return 0, ErrOutOfBounds
	}
	if g.Route.DistanceTo(pos) < config.PathClearance {
		return 0, ErrOnPath
	}
	if _, taken := g.occupied[tile]; taken {
		return 0, ErrTileOccupied
	}
	if gs.Gold < def.Cost {
		return 0, fmt.Errorf("cost %d, gold %d: %w", def.Cost, gs.Gold, ErrInsufficientGold)
	}

	gs.Gold -= def.Cost
	id := g.World.NewEntity()
	g.World.Towers[id] = &component.Tower{
		Kind:     kind,
		Tile:     tile,
		Position: pos,
		// Первый выстрел рассинхронизируется случайным сдвигом, чтобы
		// поставленные подряд башни не били залпом.
		LastFiredAt: g.World.GameTime - g.Rng.Range(def.Cooldown()),
	}
	g.occupied[tile] = id

	g.Events.Push(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}
