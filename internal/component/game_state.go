// internal/component/game_state.go
package component

// Phase — верхнеуровневая фаза игры.
type Phase string

const (
	BuildPhase    Phase = "BUILD"
	WavePhase     Phase = "WAVE"
	GameOverPhase Phase = "GAME_OVER" // терминальная, выход только через Reset
)

// GameState — казна и жизненный цикл сессии. Золото и жизни никогда
// не уходят в минус, нарушение инварианта не валит тик.
type GameState struct {
	Phase      Phase
	WaveNumber int
	Gold       int
	Lives      int
}
