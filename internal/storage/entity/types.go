package entity

// ID is a surrogate row identifier. Zero means "not persisted / not found".
type ID = uint32

// Snowflake is a Discord-assigned 64-bit identifier.
type Snowflake = uint64

type IdentifiableEntity struct {
	ID ID
}
