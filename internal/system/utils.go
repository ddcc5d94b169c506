// internal/system/utils.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Возвращает true, если именно этот вызов
// убил врага. Переход в состояние "умирает" происходит ровно один раз:
// умирающий враг неуязвим, награда начисляется в момент пересечения нуля,
// а не при удалении из пула — иначе два почти одновременных попадания
// выплатили бы золото дважды.
func ApplyDamage(w *entity.World, id types.EntityID, damage int) bool {
	enemy, ok := w.Enemies.Get(id)
	if !ok || enemy.Dying {
		return false
	}

	enemy.Health -= damage
	if enemy.Health > 0 {
		return false
	}

	enemy.Health = 0
	enemy.Dying = true
	enemy.DeathTimer = config.DeathDuration
	w.GameState.Gold += enemy.GoldReward
	return true
}
