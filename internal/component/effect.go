// internal/component/effect.go
package component

import "go-lane-defense/pkg/geom"

// EffectKind — вид косметического эффекта для рендера.
type EffectKind string

const (
	EffectDeath    EffectKind = "DEATH"
	EffectImpact   EffectKind = "IMPACT"
	EffectCritical EffectKind = "CRITICAL"
	EffectChainArc EffectKind = "CHAIN_ARC"
)

// Effect — короткоживущая косметическая запись. Живёт в собственном пуле
// до ExpiresAt, чтобы рендер успел её показать; на симуляцию не влияет.
type Effect struct {
	Kind      EffectKind
	Position  geom.Vec3
	To        geom.Vec3 // вторая точка дуги молнии, для остальных видов нулевая
	ExpiresAt float64
}
