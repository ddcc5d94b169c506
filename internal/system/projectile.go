// internal/system/projectile.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/geom"
)

// ProjectileSystem интегрирует движение снарядов и находит столкновения.
type ProjectileSystem struct {
	world  *entity.World
	combat *CombatSystem
}

func NewProjectileSystem(world *entity.World, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, combat: combat}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	now := s.world.GameTime
	var removals []types.EntityID

	for _, e := range s.world.Projectiles.Entries() {
		proj := e.Value

		// Снаряды с истёкшим сроком жизни отбрасываются без эффекта:
		// иначе недостижимые цели копили бы их бесконечно.
		if now-proj.SpawnedAt > config.ProjectileMaxLifetime {
			removals = append(removals, e.ID)
			continue
		}

		if proj.Ballistic {
			proj.Velocity.Y += config.Gravity * deltaTime
			proj.Position = proj.Position.Add(proj.Velocity.Scale(deltaTime))
		} else {
			// Самонаведение: каждый тик пересчитываем направление на
			// текущую точку прицеливания цели.
			target, ok := s.world.Enemies.Get(proj.TargetID)
			if !ok || target.Dying {
				// Цель пропала — снаряд исчезает без детонации.
				removals = append(removals, e.ID)
				continue
			}
			aim := target.Position.Add(geom.Vec3{Y: config.EnemyAimHeight})
			dir := aim.Sub(proj.Position).Normalized()
			proj.Position = proj.Position.Add(dir.Scale(proj.Speed * deltaTime))
		}

		// Короткая пауза после спавна, чтобы не засчитать столкновение
		// прямо у дула.
		if now-proj.SpawnedAt < config.ProjectileGracePeriod {
			continue
		}

		hit := false
		for _, ee := range s.world.Enemies.Entries() {
			enemy := ee.Value
			if enemy.Dying {
				continue
			}
			center := enemy.Position.Add(geom.Vec3{Y: config.EnemyAimHeight})
			if geom.Dist(proj.Position, center) <= proj.HitRadius {
				s.combat.ResolveImpact(proj, proj.Position, ee.ID)
				removals = append(removals, e.ID)
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		// Навесной снаряд, долетевший до земли, детонирует там: урон по
		// площади не должен зависеть от того, стоял ли кто-то ровно в точке.
		if proj.Ballistic && proj.Position.Y <= 0 {
			s.combat.ResolveImpact(proj, proj.Position, 0)
			removals = append(removals, e.ID)
		}
	}

	for _, id := range removals {
		s.world.Projectiles.Remove(id)
	}
}
