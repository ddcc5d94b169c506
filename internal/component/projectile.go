// internal/component/projectile.go
package component

import (
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/geom"
)

// Projectile — летящий снаряд. Либо самонаводящийся (TargetID), либо
// баллистический (скорость решена один раз при выстреле, перенацеливания нет).
type Projectile struct {
	Kind defs.TowerKind

	Position geom.Vec3

	// Самонаведение: каждый тик направление пересчитывается на точку
	// прицеливания цели. Если цель исчезла или умирает — снаряд
	// отбрасывается без детонации.
	TargetID types.EntityID
	Speed    float64

	// Баллистика (Flame): интегрируется как velocity.y += g*dt.
	Ballistic bool
	Velocity  geom.Vec3

	Damage    int
	HitRadius float64
	SpawnedAt float64
}
