// internal/system/wave.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/utils"
)

// WaveSystem строит очередь появлений при входе в волну и превращает
// созревшие описатели во врагов.
type WaveSystem struct {
	world   *entity.World
	rng     *utils.PRNGService
	scaling defs.WaveScaling
	enemy   defs.EnemyDefinition
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		world:   world,
		rng:     rng,
		scaling: defs.DefaultWaveScaling,
		enemy:   defs.DefaultEnemy,
	}
}

// StartWave собирает очередь описателей для волны number. Все параметры
// сложности фиксируются здесь: count = base + (n-1)*inc, здоровье и
// скорость растут степенным масштабом.
func (s *WaveSystem) StartWave(number int) *component.Wave {
	count := s.scaling.EnemyCount(number)
	health := s.scaling.ScaledHealth(s.enemy.Health, number)
	speedMul := s.scaling.ScaledSpeedMultiplier(number)

	pending := make([]component.PendingSpawn, count)
	for i := range pending {
		pending[i] = component.PendingSpawn{
			SpawnAt:         float64(i) * s.scaling.SpawnInterval,
			Health:          health,
			SpeedMultiplier: speedMul,
		}
	}

	return &component.Wave{Number: number, Pending: pending}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.world.Wave
	if wave == nil {
		return
	}
	wave.Elapsed += deltaTime

	spawned := 0
	for _, p := range wave.Pending {
		if p.SpawnAt > wave.Elapsed {
			break // очередь отсортирована по времени появления
		}
		s.spawnEnemy(p)
		spawned++
	}
	wave.Pending = wave.Pending[spawned:]
}

func (s *WaveSystem) spawnEnemy(p component.PendingSpawn) {
	s.world.Enemies.Add(&component.Enemy{
		PathProgress:    0,
		Health:          p.Health,
		MaxHealth:       p.Health,
		BaseSpeed:       s.enemy.Speed,
		SpeedMultiplier: p.SpeedMultiplier,
		SlowMultiplier:  1.0,
		GoldReward:      s.enemy.GoldReward,
		JitterSeed:      s.rng.Range(2 * math.Pi),
	})
}
