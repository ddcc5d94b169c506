// internal/system/combat.go
package system

import (
	"math"
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/geom"
)

// CombatSystem управляет стрельбой башен и разрешением попаданий.
// Четыре режима доставки урона выбираются одним исчерпывающим switch
// по виду башни/снаряда.
type CombatSystem struct {
	world  *entity.World
	events *event.Queue
	rng    *utils.PRNGService
}

func NewCombatSystem(world *entity.World, events *event.Queue, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{world: world, events: events, rng: rng}
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.world.GameTime

	// Обход башен в порядке идентификаторов: карта Go не даёт
	// детерминированного порядка, а он нужен для воспроизводимости боя.
	ids := make([]types.EntityID, 0, len(s.world.Towers))
	for id := range s.world.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		tower := s.world.Towers[id]
		def := defs.TowerLibrary[tower.Kind]

		if now-tower.LastFiredAt < def.Cooldown() {
			continue
		}

		targetID, ok := s.findNearestEnemyInRange(tower.Position, def.Range)
		if !ok {
			continue
		}

		if tower.Kind == defs.TowerLightning {
			// Разряд мгновенный, снаряд не создаётся.
			s.resolveChain(targetID, def)
		} else {
			s.createProjectile(tower, targetID, def)
		}
		tower.LastFiredAt = now
	}
}

// findNearestEnemyInRange выбирает ближайшего живого врага в планарном
// радиусе. Обход пула идёт в порядке идентификаторов и сравнение строгое,
// поэтому при равной дистанции побеждает меньший id.
func (s *CombatSystem) findNearestEnemyInRange(from geom.Vec3, rangeRadius float64) (types.EntityID, bool) {
	var nearest types.EntityID
	found := false
	minDistance := math.MaxFloat64
	for _, e := range s.world.Enemies.Entries() {
		if e.Value.Dying {
			continue
		}
		distance := geom.PlanarDist(from, e.Value.Position)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = e.ID
			found = true
		}
	}
	return nearest, found
}

func (s *CombatSystem) createProjectile(tower *component.Tower, targetID types.EntityID, def defs.TowerDefinition) {
	muzzle := tower.Position
	proj := &component.Projectile{
		Kind:      tower.Kind,
		Position:  muzzle,
		Damage:    def.Damage,
		HitRadius: def.HitRadius,
		SpawnedAt: s.world.GameTime,
	}

	if def.Ballistic {
		// Скорость решается один раз; после запуска снаряд не перенацеливается.
		target, ok := s.world.Enemies.Get(targetID)
		if !ok {
			return
		}
		proj.Ballistic = true
		proj.Velocity = solveBallisticVelocity(muzzle, target.Position)
	} else {
		proj.TargetID = targetID
		proj.Speed = def.ProjectileSpeed
	}

	s.world.Projectiles.Add(proj)
}

// solveBallisticVelocity подбирает стартовую скорость навесного снаряда.
// Время полёта — эвристика свободного падения с высоты дула, растянутая
// фиксированным множителем; горизонталь закрывает смещение ровно за это
// время, вертикаль решает параболу в той же точке.
func solveBallisticVelocity(from, to geom.Vec3) geom.Vec3 {
	g := config.Gravity // отрицательная
	drop := math.Max(from.Y-to.Y, 0.5)
	flightTime := config.BallisticTimeFactor * math.Sqrt(2*drop/-g)

	d := to.Sub(from)
	return geom.Vec3{
		X: d.X / flightTime,
		Y: (d.Y - 0.5*g*flightTime*flightTime) / flightTime,
		Z: d.Z / flightTime,
	}
}

// ResolveImpact применяет режим доставки урона снаряда в точке попадания.
// directTarget актуален только для прямого попадания (Arrow).
func (s *CombatSystem) ResolveImpact(proj *component.Projectile, impact geom.Vec3, directTarget types.EntityID) {
	now := s.world.GameTime
	def := defs.TowerLibrary[proj.Kind]

	s.events.Push(event.Event{Type: event.ProjectileHit, Data: directTarget})
	s.world.Effects.Add(&component.Effect{
		Kind:      component.EffectImpact,
		Position:  impact,
		ExpiresAt: now + config.EffectDuration,
	})

	switch proj.Kind {
	case defs.TowerArrow:
		damage := proj.Damage
		if s.rng.Float64() < def.CritChance {
			damage = int(math.Round(float64(damage) * def.CritMultiplier))
			s.events.Push(event.Event{Type: event.CriticalHit, Data: directTarget})
			s.world.Effects.Add(&component.Effect{
				Kind:      component.EffectCritical,
				Position:  impact,
				ExpiresAt: now + config.EffectDuration,
			})
		}
		ApplyDamage(s.world, directTarget, damage)

	case defs.TowerFlame:
		for _, e := range s.world.Enemies.Entries() {
			if e.Value.Dying {
				continue
			}
			if geom.Dist(impact, e.Value.Position) <= def.SplashRadius {
				ApplyDamage(s.world, e.ID, proj.Damage)
			}
		}

	case defs.TowerFrost:
		for _, e := range s.world.Enemies.Entries() {
			if e.Value.Dying {
				continue
			}
			if geom.Dist(impact, e.Value.Position) <= def.SplashRadius {
				ApplyDamage(s.world, e.ID, proj.Damage)
				// Повторное замедление обновляет множитель и срок, не стакается.
				if enemy, ok := s.world.Enemies.Get(e.ID); ok && !enemy.Dying {
					enemy.SlowMultiplier = def.SlowFactor
					enemy.SlowExpiresAt = now + def.SlowDuration
				}
			}
		}

	case defs.TowerLightning:
		// Молния разрешается на выстреле, сюда не попадает.
	}
}

// resolveChain — цепная молния: урон основной цели, затем жадное
// расширение от позиции последнего поражённого к ближайшему ещё не
// задетому живому врагу в радиусе цепи, не больше ChainHops прыжков.
// Цели не посещаются повторно, урон одинаков для всех, порядок — по прыжкам.
func (s *CombatSystem) resolveChain(primaryID types.EntityID, def defs.TowerDefinition) {
	now := s.world.GameTime
	primary, ok := s.world.Enemies.Get(primaryID)
	if !ok {
		return
	}

	hit := map[types.EntityID]bool{primaryID: true}
	from := primary.Position
	ApplyDamage(s.world, primaryID, def.Damage)

	for hop := 0; hop < def.ChainHops; hop++ {
		var nextID types.EntityID
		var nextPos geom.Vec3
		found := false
		minDistance := math.MaxFloat64

		for _, e := range s.world.Enemies.Entries() {
			if hit[e.ID] || e.Value.Dying {
				continue
			}
			distance := geom.Dist(from, e.Value.Position)
			if distance <= def.ChainRange && distance < minDistance {
				minDistance = distance
				nextID = e.ID
				nextPos = e.Value.Position
				found = true
			}
		}
		if !found {
			break
		}

		hit[nextID] = true
		ApplyDamage(s.world, nextID, def.Damage)
		s.events.Push(event.Event{Type: event.ChainArc, Data: ChainArcData{From: from, To: nextPos}})
		s.world.Effects.Add(&component.Effect{
			Kind:      component.EffectChainArc,
			Position:  from,
			To:        nextPos,
			ExpiresAt: now + config.EffectDuration,
		})
		from = nextPos
	}
}

// ChainArcData — полезная нагрузка события ChainArc.
type ChainArcData struct {
	From geom.Vec3 `json:"from"`
	To   geom.Vec3 `json:"to"`
}
