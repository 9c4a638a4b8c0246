package entity

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Pin is a record of a message having been copied to a guild's auto-pin
// channel. One row per (guild, message) pair; created exactly once, never
// updated, never deleted. Its only purpose is the existence check that
// keeps the auto-pin workflow idempotent.
type Pin struct {
	IdentifiableEntity
	GuildID   Snowflake
	MessageID Snowflake
}

func NewPin(guildID, messageID Snowflake) *Pin {
	return &Pin{IdentifiableEntity{0}, guildID, messageID}
}

// FindPin loads the row ID for the pin's (guild, message) pair, leaving
// p.ID at zero when no such record exists.
func FindPin(ctx context.Context, tx pgx.Tx, p *Pin) error {
	return query(ctx, tx,
		`select id from pin where guild_id = $1 and message_id = $2`,
		[]interface{}{p.GuildID, p.MessageID},
		[]interface{}{&p.ID},
	)
}

// CreatePin inserts the pin record. The insert deliberately carries no
// ON CONFLICT clause: a duplicate (guild, message) pair surfaces as a
// unique-violation error from the composite constraint, which is the
// caller's "already pinned" signal. Under concurrent reactions on the same
// message exactly one inserter succeeds.
func CreatePin(ctx context.Context, tx pgx.Tx, p *Pin) error {
	return query(ctx, tx,
		`insert into pin (guild_id, message_id) values ($1, $2) returning id`,
		[]interface{}{p.GuildID, p.MessageID},
		[]interface{}{&p.ID},
	)
}

// CountPins reports the total number of pin records.
func CountPins(ctx context.Context, tx pgx.Tx) (int64, error) {
	var n int64
	err := query(ctx, tx, `select count(*) from pin`, nil, []interface{}{&n})
	return n, err
}
