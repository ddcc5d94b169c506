// internal/app/snapshot.go
package app

import (
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/geom"
)

// Снапшот — неизменяемая копия состояния для рендера и UI. Всё копируется
// по значению: потребитель может делать со своей копией что угодно,
// симуляцию это не заденет.

type EnemySnapshot struct {
	ID           types.EntityID `json:"id"`
	Position     geom.Vec3      `json:"position"`
	Heading      geom.Vec3      `json:"heading"`
	PathProgress float64        `json:"path_progress"`
	Health       int            `json:"health"`
	MaxHealth    int            `json:"max_health"`
	Dying        bool           `json:"dying"`
	Slowed       bool           `json:"slowed"`
}

type TowerSnapshot struct {
	ID       types.EntityID `json:"id"`
	Kind     string         `json:"kind"`
	Tile     component.Tile `json:"tile"`
	Position geom.Vec3      `json:"position"`
}

type ProjectileSnapshot struct {
	ID        types.EntityID `json:"id"`
	Kind      string         `json:"kind"`
	Position  geom.Vec3      `json:"position"`
	Ballistic bool           `json:"ballistic"`
}

type EffectSnapshot struct {
	Kind     component.EffectKind `json:"kind"`
	Position geom.Vec3            `json:"position"`
	To       geom.Vec3            `json:"to"`
}

// PoolStats — счётчики вытеснений для настройки ёмкостей.
type PoolStats struct {
	EnemyEvictions      uint64 `json:"enemy_evictions"`
	ProjectileEvictions uint64 `json:"projectile_evictions"`
	EffectEvictions     uint64 `json:"effect_evictions"`
}

type Snapshot struct {
	Time        float64              `json:"time"`
	Phase       component.Phase      `json:"phase"`
	WaveNumber  int                  `json:"wave_number"`
	Gold        int                  `json:"gold"`
	Lives       int                  `json:"lives"`
	Enemies     []EnemySnapshot      `json:"enemies"`
	Towers      []TowerSnapshot      `json:"towers"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
	Effects     []EffectSnapshot     `json:"effects"`
	Pools       PoolStats            `json:"pools"`
}

// Snapshot строит копию состояния после тика.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	gs := w.GameState
	now := w.GameTime

	snap := Snapshot{
		Time:       now,
		Phase:      gs.Phase,
		WaveNumber: gs.WaveNumber,
		Gold:       gs.Gold,
		Lives:      gs.Lives,
		Pools: PoolStats{
			EnemyEvictions:      w.Enemies.Evictions(),
			ProjectileEvictions: w.Projectiles.Evictions(),
			EffectEvictions:     w.Effects.Evictions(),
		},
	}

	snap.Enemies = make([]EnemySnapshot, 0, w.Enemies.Len())
	for _, e := range w.Enemies.Entries() {
		en := e.Value
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:           e.ID,
			Position:     en.Position,
			Heading:      en.Heading,
			PathProgress: en.PathProgress,
			Health:       en.Health,
			MaxHealth:    en.MaxHealth,
			Dying:        en.Dying,
			Slowed:       en.CurrentSlow(now) != 1.0,
		})
	}

	snap.Towers = make([]TowerSnapshot, 0, len(w.Towers))
	for id, t := range w.Towers {
		snap.Towers = append(snap.Towers, TowerSnapshot{
			ID:       id,
			Kind:     t.Kind.String(),
			Tile:     t.Tile,
			Position: t.Position,
		})
	}
	sort.Slice(snap.Towers, func(i, j int) bool { return snap.Towers[i].ID < snap.Towers[j].ID })

	snap.Projectiles = make([]ProjectileSnapshot, 0, w.Projectiles.Len())
	for _, e := range w.Projectiles.Entries() {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			ID:        e.ID,
			Kind:      e.Value.Kind.String(),
			Position:  e.Value.Position,
			Ballistic: e.Value.Ballistic,
		})
	}

	snap.Effects = make([]EffectSnapshot, 0, w.Effects.Len())
	for _, e := range w.Effects.Entries() {
		snap.Effects = append(snap.Effects, EffectSnapshot{
			Kind:     e.Value.Kind,
			Position: e.Value.Position,
			To:       e.Value.To,
		})
	}

	return snap
}
