// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в симуляции.
// Идентификаторы монотонно растут и никогда не переиспользуются,
// поэтому ссылки на вытесненные из пула сущности просто "не находятся".
type EntityID uint64
