// internal/config/config.go
package config

const (
	// Тики симуляции. dt приходит снаружи и обрезается до MaxDeltaTime,
	// иначе большой шаг интеграции протаскивает снаряды сквозь радиус столкновения.
	TickRate     = 60
	MaxDeltaTime = 0.06

	StartingGold  = 3000
	StartingLives = 20

	// Волны: количество врагов и масштабирование сложности.
	EnemiesPerWave          = 200
	EnemiesIncrementPerWave = 100
	SpawnInterval           = 0.35 // секунд между появлениями врагов
	HealthScalePerWave      = 1.15
	SpeedScalePerWave       = 1.05

	EnemyBaseHealth = 500
	EnemyBaseSpeed  = 2.4 // мировых единиц в секунду
	EnemyGoldReward = 3
	EnemyAimHeight  = 0.9 // куда целятся самонаводящиеся снаряды
	DeathDuration   = 0.8 // длительность анимации смерти до удаления из пула

	// Косметическое виляние врагов поперёк маршрута.
	// Никогда не влияет на pathProgress.
	WanderAmplitude1 = 0.35
	WanderFrequency1 = 2.3
	WanderAmplitude2 = 0.18
	WanderFrequency2 = 5.1

	// Снаряды.
	ProjectileGracePeriod = 0.08 // после спавна столкновения не засчитываются
	ProjectileMaxLifetime = 6.0
	Gravity               = -30.0 // игровая гравитация, не физическая
	BallisticTimeFactor   = 1.25  // множитель к эвристике времени падения, > 1
	TowerMuzzleHeight     = 2.2

	// Размещение башен.
	TileSize      = 2.0
	PathClearance = 1.6 // минимальная дистанция от центра тайла до маршрута

	// Ёмкости пулов. Переполнение — не ошибка: вытесняется самый старый
	// элемент (FIFO), счётчик вытеснений доступен для диагностики.
	MaxEnemies     = 512
	MaxProjectiles = 256
	MaxEffects     = 128

	// Время жизни косметических эффектов (вспышки, дуги молний).
	EffectDuration = 0.4
)
