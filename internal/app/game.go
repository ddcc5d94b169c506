// internal/app/game.go
package app

import (
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/path"
)

// Game — оркестратор симуляции. Владеет всем изменяемым состоянием,
// исполняет команды и прогоняет системы в фиксированном порядке один раз
// за тик. Внутри нет ни горутин, ни колбэков: единственная точка входа —
// Update(dt), потребители читают снапшоты и вычитывают очередь событий.
type Game struct {
	World  *entity.World
	Route  *path.Route
	Level  defs.LevelDefinition
	Events *event.Queue
	Rng    *utils.PRNGService

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EffectSystem     *system.EffectSystem

	occupied map[component.Tile]types.EntityID
	seed     int64
}

// NewGame создаёт сессию на авторском уровне. seed = 0 — случайный рандом,
// иначе бой полностью воспроизводим.
func NewGame(level defs.LevelDefinition, seed int64) (*Game, error) {
	route, err := path.NewRoute(level.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("invalid level route: %w", err)
	}

	g := &Game{
		Route: route,
		Level: level,
		Rng:   utils.NewPRNGService(seed),
		seed:  seed,
	}
	g.initState()
	return g, nil
}

// initState собирает мир и системы с нуля. Используется и при создании,
// и при сбросе: извне частично инициализированное состояние не видно.
func (g *Game) initState() {
	g.World = entity.NewWorld()
	g.Events = event.NewQueue()
	g.occupied = make(map[component.Tile]types.EntityID)

	g.MovementSystem = system.NewMovementSystem(g.World, g.Events, g.Route)
	g.CombatSystem = system.NewCombatSystem(g.World, g.Events, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.CombatSystem)
	g.WaveSystem = system.NewWaveSystem(g.World, g.Rng)
	g.EffectSystem = system.NewEffectSystem(g.World)
}

// Update — один тик симуляции. Порядок фиксирован: движение → стрельба →
// снаряды → учёт, чтобы каждое боевое решение видело позиции текущего тика.
// Часы идут в любой фазе: вне волны бой стоит, но снаряды, оставшиеся в
// полёте, долетают или истекают, а косметические эффекты гаснут — снапшот
// не должен замирать с вечными вспышками.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	// Большой dt срезается, иначе интеграция становится нестабильной.
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	g.World.GameTime += deltaTime
	gs := g.World.GameState

	if gs.Phase == component.WavePhase {
		g.WaveSystem.Update(deltaTime)
		g.MovementSystem.Update(deltaTime)
		g.CombatSystem.Update(deltaTime)
		g.ProjectileSystem.Update(deltaTime)
		g.waveBookkeeping()
	} else {
		g.ProjectileSystem.Update(deltaTime)
	}

	g.EffectSystem.Update(deltaTime)
}

// waveBookkeeping — хвост тика волны: ушедшие враги, конец игры,
// завершение волны.
func (g *Game) waveBookkeeping() {
	gs := g.World.GameState

	// Враг, дошедший до конца маршрута, уходит: минус одна жизнь,
	// награды нет. Умирающие не считаются — их добили раньше.
	var escaped []types.EntityID
	for _, e := range g.World.Enemies.Entries() {
		if e.Value.ReachedEnd && !e.Value.Dying {
			escaped = append(escaped, e.ID)
		}
	}
	for _, id := range escaped {
		g.World.Enemies.Remove(id)
		if gs.Lives > 0 {
			gs.Lives--
		}
		g.Events.Push(event.Event{Type: event.EnemyEscaped, Data: id})
	}

	// Конец игры наступает сразу, сколько бы врагов ни оставалось.
	if gs.Lives <= 0 {
		gs.Lives = 0
		gs.Phase = component.GameOverPhase
		g.Events.Push(event.Event{Type: event.GameOver})
		return
	}

	// Волна закончена: все появились и никого не осталось (ни живых,
	// ни умирающих).
	wave := g.World.Wave
	if wave != nil && wave.AllSpawned() && g.World.Enemies.Len() == 0 {
		g.World.Wave = nil
		gs.WaveNumber++
		gs.Phase = component.BuildPhase
		g.Events.Push(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// StartWave переводит BUILD → WAVE. В любой другой фазе — отвергнутый
// no-op с причиной, никогда не молчаливое игнорирование.
func (g *Game) StartWave() error {
	gs := g.World.GameState
	if gs.Phase != component.BuildPhase {
		return fmt.Errorf("start wave in phase %s: %w", gs.Phase, ErrNotInBuildPhase)
	}

	g.World.Wave = g.WaveSystem.StartWave(gs.WaveNumber)
	gs.Phase = component.WavePhase
	g.Events.Push(event.Event{Type: event.WaveStarted, Data: gs.WaveNumber})
	return nil
}

// Reset возвращает сессию к настройкам по умолчанию: казна, жизни, номер
// волны, башни и все пулы. Для потребителя сброс атомарен.
func (g *Game) Reset() {
	g.initState()
}

// DrainEvents отдаёт накопленные одноразовые события. Вызывается
// потребителем раз в тик; недоставленные события на симуляцию не влияют.
func (g *Game) DrainEvents() []event.Event {
	return g.Events.Drain()
}
