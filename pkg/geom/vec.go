// pkg/geom/vec.go
package geom

import "math"

// Vec3 — точка или вектор в мировых координатах. Ось Y направлена вверх,
// плоскость XZ — "земля".
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dist — полное 3D-расстояние (используется при проверке столкновений).
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// PlanarDist — расстояние в плоскости XZ, без учёта высоты.
// Радиус действия башен считается именно так.
func PlanarDist(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
