// internal/entity/world.go
package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/types"
)

// World владеет всем изменяемым состоянием симуляции. Единственный
// писатель — оркестратор; внешние потребители видят только снапшоты.
type World struct {
	GameTime float64 // монотонные часы симуляции, секунды
	NextID   types.EntityID

	Enemies     *Pool[*component.Enemy]
	Projectiles *Pool[*component.Projectile]
	Effects     *Pool[*component.Effect]

	// Башни не пулируются: их десятки и живут они до сброса.
	Towers map[types.EntityID]*component.Tower

	Wave      *component.Wave // nil вне фазы WAVE
	GameState *component.GameState
}

func NewWorld() *World {
	w := &World{NextID: 1}
	w.Enemies = NewPool[*component.Enemy](config.MaxEnemies, w.NewEntity)
	w.Projectiles = NewPool[*component.Projectile](config.MaxProjectiles, w.NewEntity)
	w.Effects = NewPool[*component.Effect](config.MaxEffects, w.NewEntity)
	w.Towers = make(map[types.EntityID]*component.Tower)
	w.GameState = &component.GameState{
		Phase:      component.BuildPhase,
		WaveNumber: 1,
		Gold:       config.StartingGold,
		Lives:      config.StartingLives,
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}
