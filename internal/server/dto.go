// internal/server/dto.go
package server

import (
	"encoding/json"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/geom"
)

// Входящий конверт команды: {"type": "...", "payload": {...}}.
type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type placeTowerPayload struct {
	Kind string `json:"kind"` // "ARROW" | "FLAME" | "FROST" | "LIGHTNING"
	Col  int    `json:"col"`
	Row  int    `json:"row"`
}

// Приветствие при подключении: геометрия уровня нужна клиенту один раз,
// чтобы нарисовать маршрут и сетку, в тиковый снапшот она не входит.
type levelMessage struct {
	Type    string       `json:"type"` // "level"
	Payload levelPayload `json:"payload"`
}

type levelPayload struct {
	Waypoints []geom.Vec3 `json:"waypoints"`
	MinX      float64     `json:"min_x"`
	MaxX      float64     `json:"max_x"`
	MinZ      float64     `json:"min_z"`
	MaxZ      float64     `json:"max_z"`
	TileSize  float64     `json:"tile_size"`
}

// Исходящее состояние: снапшот тика плюс события, накопленные за тик.
type stateMessage struct {
	Type    string       `json:"type"` // "state"
	Payload statePayload `json:"payload"`
}

type statePayload struct {
	app.Snapshot
	Events []eventDTO `json:"events"`
}

type eventDTO struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func toEventDTOs(events []event.Event) []eventDTO {
	if len(events) == 0 {
		return nil
	}
	out := make([]eventDTO, len(events))
	for i, e := range events {
		out[i] = eventDTO{Type: string(e.Type), Data: e.Data}
	}
	return out
}

// Ответ на команду. Симуляция не зависит от того, прочитан ли он.
type commandResult struct {
	Type    string `json:"type"` // "command_result"
	Command string `json:"command"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}
