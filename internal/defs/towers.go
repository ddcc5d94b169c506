// internal/defs/towers.go
package defs

import "fmt"

// TowerKind — закрытый набор видов башен. Открытой диспетчеризации нет:
// Combat-система делает один исчерпывающий switch по этому тегу.
type TowerKind int

const (
	TowerArrow TowerKind = iota
	TowerFlame
	TowerFrost
	TowerLightning
	towerKindCount
)

func (k TowerKind) String() string {
	switch k {
	case TowerArrow:
		return "ARROW"
	case TowerFlame:
		return "FLAME"
	case TowerFrost:
		return "FROST"
	case TowerLightning:
		return "LIGHTNING"
	}
	return fmt.Sprintf("TowerKind(%d)", int(k))
}

// ParseTowerKind разбирает строковый тег (команды с клиента приходят строками).
func ParseTowerKind(s string) (TowerKind, bool) {
	switch s {
	case "ARROW":
		return TowerArrow, true
	case "FLAME":
		return TowerFlame, true
	case "FROST":
		return TowerFrost, true
	case "LIGHTNING":
		return TowerLightning, true
	}
	return 0, false
}

// TowerDefinition — статические характеристики вида башни.
// Поля специальных механик заполнены только у соответствующих видов.
type TowerDefinition struct {
	Name     string  `json:"name"`
	Cost     int     `json:"cost"`
	Range    float64 `json:"range"`     // планарный радиус действия
	FireRate float64 `json:"fire_rate"` // выстрелов в секунду
	Damage   int     `json:"damage"`

	// Arrow: критический удар.
	CritChance     float64 `json:"crit_chance,omitempty"`
	CritMultiplier float64 `json:"crit_multiplier,omitempty"`

	// Flame, Frost: урон по площади.
	SplashRadius float64 `json:"splash_radius,omitempty"`

	// Frost: замедление.
	SlowFactor   float64 `json:"slow_factor,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty"`

	// Lightning: цепная молния.
	ChainRange float64 `json:"chain_range,omitempty"`
	ChainHops  int     `json:"chain_hops,omitempty"` // дополнительных прыжков после основной цели

	// Снаряд. Ballistic — навесная траектория (Flame), иначе самонаведение.
	// У Lightning снаряда нет, разряд мгновенный.
	ProjectileSpeed float64 `json:"projectile_speed,omitempty"`
	HitRadius       float64 `json:"hit_radius,omitempty"`
	Ballistic       bool    `json:"ballistic,omitempty"`
}

// Cooldown — минимальный интервал между выстрелами, в секундах симуляции.
func (d TowerDefinition) Cooldown() float64 { return 1.0 / d.FireRate }

// TowerLibrary — таблица характеристик по виду башни. Значения по умолчанию
// можно переопределить из JSON (см. loader.go).
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerArrow: {
		Name:            "Arrow",
		Cost:            50,
		Range:           8.0,
		FireRate:        2.0,
		Damage:          33,
		CritChance:      0.2,
		CritMultiplier:  2.5,
		ProjectileSpeed: 30.0,
		HitRadius:       0.7,
	},
	TowerFlame: {
		Name:            "Flame",
		Cost:            120,
		Range:           7.0,
		FireRate:        0.8,
		Damage:          45,
		SplashRadius:    2.0,
		ProjectileSpeed: 14.0, // только стартовая горизонтальная оценка, решается баллистикой
		HitRadius:       1.0,
		Ballistic:       true,
	},
	TowerFrost: {
		Name:            "Frost",
		Cost:            100,
		Range:           7.0,
		FireRate:        1.0,
		Damage:          18,
		SplashRadius:    1.8,
		SlowFactor:      0.5,
		SlowDuration:    2.0,
		ProjectileSpeed: 22.0,
		HitRadius:       0.8,
	},
	TowerLightning: {
		Name:       "Lightning",
		Cost:       150,
		Range:      9.0,
		FireRate:   0.7,
		Damage:     40,
		ChainRange: 3.5,
		ChainHops:  3,
	},
}
