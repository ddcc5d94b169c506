// internal/defs/level.go
package defs

import "go-lane-defense/pkg/geom"

// LevelDefinition — авторская карта: маршрут врагов и границы зоны
// строительства. Поиска пути нет, маршрут фиксирован.
type LevelDefinition struct {
	Waypoints []geom.Vec3 `json:"waypoints"`
	MinX      float64     `json:"min_x"`
	MaxX      float64     `json:"max_x"`
	MinZ      float64     `json:"min_z"`
	MaxZ      float64     `json:"max_z"`
}

// DefaultLevel — S-образный маршрут через квадратную площадку 40x40.
var DefaultLevel = LevelDefinition{
	Waypoints: []geom.Vec3{
		{X: -20, Y: 0, Z: -16},
		{X: 10, Y: 0, Z: -16},
		{X: 10, Y: 0, Z: -4},
		{X: -10, Y: 0, Z: -4},
		{X: -10, Y: 0, Z: 8},
		{X: 12, Y: 0, Z: 8},
		{X: 12, Y: 0, Z: 16},
		{X: 20, Y: 0, Z: 16},
	},
	MinX: -20, MaxX: 20,
	MinZ: -20, MaxZ: 20,
}
