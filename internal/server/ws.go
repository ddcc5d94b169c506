// internal/server/ws.go
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client — подключённый потребитель снапшотов. Запись в сокет идёт и из
// цикла рассылки, и из обработчика команд, поэтому у каждого клиента
// свой мьютекс записи.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// levelHello собирает геометрию уровня для нового клиента. Уровень и
// маршрут неизменяемы после старта, мьютекс симуляции не нужен.
func (s *Server) levelHello() levelMessage {
	level := s.game.Level
	return levelMessage{
		Type: "level",
		Payload: levelPayload{
			Waypoints: s.game.Route.Waypoints(),
			MinX:      level.MinX,
			MaxX:      level.MaxX,
			MinZ:      level.MinZ,
			MaxZ:      level.MaxZ,
			TileSize:  config.TileSize,
		},
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	c := &client{conn: conn}

	s.clientsMu.Lock()
	s.clients[c] = true
	s.clientsMu.Unlock()

	// Геометрия уровня уходит один раз, сразу после подключения.
	if err := c.writeJSON(s.levelHello()); err != nil {
		log.Printf("ws write failed: %v", err)
	}

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, c)
		s.clientsMu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.writeJSON(commandResult{Type: "command_result", Command: "?", Error: "malformed message"})
			continue
		}
		s.handleCommand(c, msg)
	}
}

// handleCommand применяет команду под мьютексом симуляции и отвечает
// клиенту результатом. Отказ валидации — штатный ответ, не обрыв связи.
func (s *Server) handleCommand(c *client, msg inboundMessage) {
	result := commandResult{Type: "command_result", Command: msg.Type, OK: true}

	switch msg.Type {
	case "place_tower":
		var p placeTowerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			result.OK = false
			result.Error = "malformed payload"
			break
		}
		kind, ok := defs.ParseTowerKind(p.Kind)
		if !ok {
			result.OK = false
			result.Error = "unknown tower kind: " + p.Kind
			break
		}
		s.mu.Lock()
		_, err := s.game.PlaceTower(kind, component.Tile{Col: p.Col, Row: p.Row})
		s.mu.Unlock()
		if err != nil {
			result.OK = false
			result.Error = err.Error()
		}

	case "start_wave":
		s.mu.Lock()
		err := s.game.StartWave()
		s.mu.Unlock()
		if err != nil {
			result.OK = false
			result.Error = err.Error()
		}

	case "reset":
		s.mu.Lock()
		s.game.Reset()
		s.mu.Unlock()

	default:
		result.OK = false
		result.Error = "unknown command: " + msg.Type
	}

	if err := c.writeJSON(result); err != nil {
		log.Printf("ws write failed: %v", err)
	}
}

// broadcast рассылает сообщение всем клиентам. Отвалившиеся соединения
// просто пропускаются: доставка fire-and-forget.
func (s *Server) broadcast(v interface{}) {
	s.clientsMu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.clientsMu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(v); err != nil {
			log.Printf("ws broadcast failed: %v", err)
		}
	}
}
