// internal/server/app.go
package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
)

// Config — настройки процесса.
type Config struct {
	Addr     string
	Seed     int64
	TickRate int
	Level    defs.LevelDefinition
}

func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		TickRate: config.TickRate,
		Level:    defs.DefaultLevel,
	}
}

// Server держит симуляцию и её потребителей. Ядро однопоточное: цикл
// тиков и обработчики команд сериализуются одним мьютексом, наружу уходят
// только копии-снапшоты.
type Server struct {
	game *app.Game
	mu   sync.Mutex // владение симуляцией

	clients   map[*client]bool
	clientsMu sync.Mutex
}

// StartApp поднимает симуляцию и HTTP-сервер. Блокируется до ошибки.
func StartApp(cfg Config) error {
	game, err := app.NewGame(cfg.Level, cfg.Seed)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	s := &Server{
		game:    game,
		clients: make(map[*client]bool),
	}

	go s.runLoop(cfg.TickRate)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return http.ListenAndServe(cfg.Addr, mux)
}

// runLoop — цикл тиков. dt считается по реальному времени между тиками,
// ядро само срезает его до безопасного максимума.
func (s *Server) runLoop(tickRate int) {
	if tickRate <= 0 {
		tickRate = config.TickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	prev := time.Now()
	for now := range ticker.C {
		dt := now.Sub(prev).Seconds()
		prev = now

		s.mu.Lock()
		s.game.Update(dt)
		snap := s.game.Snapshot()
		events := s.game.DrainEvents()
		s.mu.Unlock()

		// Рассылка — вне мьютекса симуляции: медленный клиент не должен
		// тормозить тики.
		s.broadcast(stateMessage{
			Type:    "state",
			Payload: statePayload{Snapshot: snap, Events: toEventDTOs(events)},
		})
	}
}
