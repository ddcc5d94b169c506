// internal/system/movement.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/path"
)

// MovementSystem продвигает врагов по маршруту и управляет таймерами
// статусов: истечением замедления и анимацией смерти.
type MovementSystem struct {
	world  *entity.World
	events *event.Queue
	route  *path.Route
}

func NewMovementSystem(world *entity.World, events *event.Queue, route *path.Route) *MovementSystem {
	return &MovementSystem{world: world, events: events, route: route}
}

func (s *MovementSystem) Update(deltaTime float64) {
	now := s.world.GameTime
	totalLen := s.route.TotalLength()
	var expired []types.EntityID

	for _, e := range s.world.Enemies.Entries() {
		enemy := e.Value

		if enemy.Dying {
			enemy.DeathTimer -= deltaTime
			if enemy.DeathTimer <= 0 {
				expired = append(expired, e.ID)
			}
			continue
		}

		// Замедление проверяется каждый тик, а не по событию:
		// истёкший дебафф молча возвращается к 1.0.
		if enemy.SlowMultiplier != 1.0 && now >= enemy.SlowExpiresAt {
			enemy.SlowMultiplier = 1.0
		}

		speed := enemy.BaseSpeed * enemy.SpeedMultiplier * enemy.CurrentSlow(now)
		enemy.PathProgress += speed / totalLen * deltaTime
		if enemy.PathProgress >= 1.0 {
			enemy.PathProgress = 1.0
			enemy.ReachedEnd = true
		}

		pos, heading := s.route.PositionAt(enemy.PathProgress)

		// Косметическое виляние: две синусоиды со сдвигом фаз, повёрнутые
		// в поперечник маршрута. В pathProgress не возвращается.
		offset := config.WanderAmplitude1*math.Sin(config.WanderFrequency1*now+enemy.JitterSeed) +
			config.WanderAmplitude2*math.Sin(config.WanderFrequency2*now+enemy.JitterSeed*2.7)
		perp := geom.Vec3{X: -heading.Z, Z: heading.X}

		enemy.Position = pos.Add(perp.Scale(offset))
		enemy.Heading = heading
	}

	// Удаляем отыгравших анимацию смерти и отдаём рендеру прощальный эффект.
	for _, id := range expired {
		if enemy, ok := s.world.Enemies.Get(id); ok {
			s.world.Effects.Add(&component.Effect{
				Kind:      component.EffectDeath,
				Position:  enemy.Position,
				ExpiresAt: now + config.EffectDuration,
			})
		}
		s.world.Enemies.Remove(id)
		s.events.Push(event.Event{Type: event.EnemyDied, Data: id})
	}
}
