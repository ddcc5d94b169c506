// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — одноразовое косметическое событие. Доставка fire-and-forget:
// корректность симуляции не зависит от того, вычитал ли его потребитель.
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Queue — очередь событий вместо push-подписок: потребитель (рендер, UI)
// вычитывает её один раз за тик через Drain.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push добавляет событие в очередь.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain возвращает накопленные события и опустошает очередь.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
