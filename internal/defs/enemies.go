// internal/defs/enemies.go
package defs

import (
	"math"

	"go-lane-defense/internal/config"
)

// EnemyDefinition — базовые характеристики врага до масштабирования по волне.
type EnemyDefinition struct {
	Health     int     `json:"health"`
	Speed      float64 `json:"speed"`
	GoldReward int     `json:"gold_reward"`
}

// DefaultEnemy используется всеми волнами; разнообразие задаётся
// масштабированием, а не зоопарком видов.
var DefaultEnemy = EnemyDefinition{
	Health:     config.EnemyBaseHealth,
	Speed:      config.EnemyBaseSpeed,
	GoldReward: config.EnemyGoldReward,
}

// WaveScaling описывает прогрессию сложности между волнами.
type WaveScaling struct {
	BaseCount      int     `json:"base_count"`
	CountIncrement int     `json:"count_increment"`
	SpawnInterval  float64 `json:"spawn_interval"`
	HealthScale    float64 `json:"health_scale"`
	SpeedScale     float64 `json:"speed_scale"`
}

var DefaultWaveScaling = WaveScaling{
	BaseCount:      config.EnemiesPerWave,
	CountIncrement: config.EnemiesIncrementPerWave,
	SpawnInterval:  config.SpawnInterval,
	HealthScale:    config.HealthScalePerWave,
	SpeedScale:     config.SpeedScalePerWave,
}

// EnemyCount — количество врагов в волне: base + (wave-1)*increment.
func (w WaveScaling) EnemyCount(wave int) int {
	return w.BaseCount + (wave-1)*w.CountIncrement
}

// ScaledHealth — здоровье врага в волне wave.
func (w WaveScaling) ScaledHealth(base int, wave int) int {
	return int(math.Round(float64(base) * math.Pow(w.HealthScale, float64(wave-1))))
}

// ScaledSpeedMultiplier — множитель скорости для волны wave.
func (w WaveScaling) ScaledSpeedMultiplier(wave int) float64 {
	return math.Pow(w.SpeedScale, float64(wave-1))
}
