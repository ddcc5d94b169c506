// internal/event/types.go
package event

const (
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	WaveStarted    EventType = "WaveStarted"    // Волна началась
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	GameOver       EventType = "GameOver"       // Жизни закончились
	EnemyDied      EventType = "EnemyDied"      // Враг уничтожен (в момент удаления)
	EnemyEscaped   EventType = "EnemyEscaped"   // Враг дошёл до конца маршрута
	ProjectileHit  EventType = "ProjectileHit"  // Снаряд попал
	CriticalHit    EventType = "CriticalHit"    // Критический удар
	ChainArc       EventType = "ChainArc"       // Прыжок цепной молнии
)
