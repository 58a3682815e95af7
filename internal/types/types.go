// internal/types/types.go
package types

// EntityID identifies a live entity. IDs are allocated sequentially and never
// reused within a match, so an ID also doubles as a stable spawn-order key.
// Zero is reserved as "no entity".
type EntityID uint64
