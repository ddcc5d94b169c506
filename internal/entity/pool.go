// internal/entity/pool.go
package entity

import "go-lane-defense/internal/types"

// Entry — элемент пула: стабильный идентификатор плюс значение.
type Entry[T any] struct {
	ID    types.EntityID
	Value T
}

// Pool — ограниченная коллекция с порядком вставки. При вставке сверх
// ёмкости вытесняется самый старый элемент (FIFO): под пиковой нагрузкой
// симуляция деградирует визуально, но не растёт бесконтрольно и не падает.
// Порядок обхода совпадает с порядком идентификаторов, на это опирается
// детерминизм выбора целей.
type Pool[T any] struct {
	entries   []Entry[T]
	capacity  int
	allocID   func() types.EntityID
	evictions uint64
}

func NewPool[T any](capacity int, allocID func() types.EntityID) *Pool[T] {
	return &Pool[T]{
		entries:  make([]Entry[T], 0, capacity),
		capacity: capacity,
		allocID:  allocID,
	}
}

// Add вставляет значение и возвращает его идентификатор.
func (p *Pool[T]) Add(v T) types.EntityID {
	if len(p.entries) >= p.capacity {
		// Вытесняем самый старый выживший элемент.
		copy(p.entries, p.entries[1:])
		p.entries = p.entries[:len(p.entries)-1]
		p.evictions++
	}
	id := p.allocID()
	p.entries = append(p.entries, Entry[T]{ID: id, Value: v})
	return id
}

// Get находит значение по идентификатору.
func (p *Pool[T]) Get(id types.EntityID) (T, bool) {
	for i := range p.entries {
		if p.entries[i].ID == id {
			return p.entries[i].Value, true
		}
	}
	var zero T
	return zero, false
}

// Remove удаляет элемент, сохраняя порядок вставки остальных.
func (p *Pool[T]) Remove(id types.EntityID) bool {
	for i := range p.entries {
		if p.entries[i].ID == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries — элементы в порядке вставки. Срез принадлежит пулу: читать
// можно, структурно менять — только через Add/Remove после обхода.
func (p *Pool[T]) Entries() []Entry[T] { return p.entries }

func (p *Pool[T]) Len() int { return len(p.entries) }

// Evictions — сколько элементов было вытеснено по переполнению.
// Диагностика для подбора ёмкостей, в обычной игре должен быть ноль.
func (p *Pool[T]) Evictions() uint64 { return p.evictions }

// Clear опустошает пул, не трогая счётчик вытеснений.
func (p *Pool[T]) Clear() { p.entries = p.entries[:0] }
