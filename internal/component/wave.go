// internal/component/wave.go
package component

// PendingSpawn — описатель ещё не появившегося врага. Очередь строится
// целиком при входе в волну, время появления предвычислено.
type PendingSpawn struct {
	SpawnAt         float64 // время волны, когда враг появляется
	Health          int
	SpeedMultiplier float64
}

// Wave — состояние текущей волны.
type Wave struct {
	Number  int
	Elapsed float64 // часы волны, растут только в фазе WAVE
	Pending []PendingSpawn
}

// AllSpawned — все описатели волны уже превращены во врагов.
func (w *Wave) AllSpawned() bool { return len(w.Pending) == 0 }
