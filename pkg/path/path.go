// pkg/path/path.go
package path

import (
	"errors"
	"math"
	"sort"

	"go-lane-defense/pkg/geom"
)

// Route — авторский маршрут врагов: ломаная из путевых точек с заранее
// построенной таблицей накопленных длин сегментов. Таблица строится один
// раз, все запросы позиции — чистые функции от progress.
type Route struct {
	waypoints []geom.Vec3
	cumLen    []float64 // cumLen[i] — длина пути от начала до waypoints[i]
	total     float64
}

var ErrTooFewWaypoints = errors.New("path: route needs at least two waypoints")

// NewRoute строит маршрут и таблицу длин.
func NewRoute(waypoints []geom.Vec3) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}
	r := &Route{
		waypoints: append([]geom.Vec3(nil), waypoints...),
		cumLen:    make([]float64, len(waypoints)),
	}
	for i := 1; i < len(waypoints); i++ {
		r.cumLen[i] = r.cumLen[i-1] + geom.Dist(waypoints[i-1], waypoints[i])
	}
	r.total = r.cumLen[len(r.cumLen)-1]
	return r, nil
}

// TotalLength — полная длина маршрута в мировых единицах.
func (r *Route) TotalLength() float64 { return r.total }

// Waypoints возвращает копию путевых точек (для отрисовки маршрута).
func (r *Route) Waypoints() []geom.Vec3 {
	return append([]geom.Vec3(nil), r.waypoints...)
}

// PositionAt переводит нормализованный прогресс [0,1] в мировую позицию
// и курс. Гарантии: PositionAt(0) — первая точка, PositionAt(1) — последняя,
// пройденная дуга монотонна по progress.
func (r *Route) PositionAt(progress float64) (pos geom.Vec3, heading geom.Vec3) {
	progress = geom.Clamp(progress, 0, 1)
	dist := progress * r.total

	// Ищем сегмент, содержащий dist: первая точка с cumLen >= dist.
	i := sort.SearchFloat64s(r.cumLen, dist)
	if i == 0 {
		i = 1
	}
	a := r.waypoints[i-1]
	b := r.waypoints[i]
	segLen := r.cumLen[i] - r.cumLen[i-1]

	dir := b.Sub(a)
	if segLen > 0 {
		t := (dist - r.cumLen[i-1]) / segLen
		pos = a.Add(dir.Scale(t))
	} else {
		pos = a // вырожденный сегмент из совпадающих точек
	}
	return pos, dir.Normalized()
}

// DistanceTo — планарное расстояние от точки до ближайшего сегмента
// маршрута. Используется проверкой "башня не на пути".
func (r *Route) DistanceTo(p geom.Vec3) float64 {
	best := math.MaxFloat64
	for i := 1; i < len(r.waypoints); i++ {
		d := planarSegmentDist(p, r.waypoints[i-1], r.waypoints[i])
		if d < best {
			best = d
		}
	}
	return best
}

func planarSegmentDist(p, a, b geom.Vec3) float64 {
	abx, abz := b.X-a.X, b.Z-a.Z
	apx, apz := p.X-a.X, p.Z-a.Z
	segSq := abx*abx + abz*abz
	t := 0.0
	if segSq > 0 {
		t = geom.Clamp((apx*abx+apz*abz)/segSq, 0, 1)
	}
	cx := a.X + abx*t
	cz := a.Z + abz*t
	dx, dz := p.X-cx, p.Z-cz
	return math.Sqrt(dx*dx + dz*dz)
}
