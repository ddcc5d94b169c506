// internal/component/tower.go
package component

import (
	"go-lane-defense/internal/defs"
	"go-lane-defense/pkg/geom"
)

// Tile — клетка строительной сетки.
type Tile struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Tower — размещённая башня. Характеристики берутся из defs.TowerLibrary
// по виду, здесь только изменяемое состояние.
type Tower struct {
	Kind     defs.TowerKind
	Tile     Tile
	Position geom.Vec3 // центр тайла, Y — высота дула

	// Часы симуляции последнего выстрела. При постройке инициализируется
	// как now - random(0, cooldown), чтобы одновременно поставленные башни
	// не стреляли залпами.
	LastFiredAt float64
}
