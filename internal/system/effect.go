// internal/system/effect.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// EffectSystem убирает отжившие косметические записи из пула.
type EffectSystem struct {
	world *entity.World
}

func NewEffectSystem(world *entity.World) *EffectSystem {
	return &EffectSystem{world: world}
}

func (s *EffectSystem) Update(deltaTime float64) {
	now := s.world.GameTime
	var expired []types.EntityID
	for _, e := range s.world.Effects.Entries() {
		if now >= e.Value.ExpiresAt {
			expired = append(expired, e.ID)
		}
	}
	for _, id := range expired {
		s.world.Effects.Remove(id)
	}
}
