// internal/component/enemy.go
package component

import "go-lane-defense/pkg/geom"

// Enemy — вражеская сущность на маршруте.
type Enemy struct {
	PathProgress float64 // нормализованный прогресс по маршруту, [0,1]

	Health    int
	MaxHealth int

	BaseSpeed       float64
	SpeedMultiplier float64 // множитель сложности волны, фиксируется при спавне

	// Замедление — мультипликативный дебафф с точкой истечения по часам
	// симуляции. Повторное наложение обновляет оба поля (не стакается).
	SlowMultiplier float64
	SlowExpiresAt  float64

	// Умирающий враг неуязвим, не является целью и не платит награду
	// повторно; после DeathTimer удаляется из пула.
	Dying      bool
	DeathTimer float64

	GoldReward int

	// Фаза косметического виляния, своя у каждого врага.
	JitterSeed float64

	// Кэш последнего тика: мировая позиция (с вилянием) и курс.
	Position geom.Vec3
	Heading  geom.Vec3

	ReachedEnd bool // достиг конца маршрута, будет обработан как "ушедший"
}

// CurrentSlow возвращает действующий множитель скорости с учётом истечения.
func (e *Enemy) CurrentSlow(now float64) float64 {
	if e.SlowMultiplier != 1.0 && now < e.SlowExpiresAt {
		return e.SlowMultiplier
	}
	return 1.0
}
