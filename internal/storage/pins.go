package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"pkg.overseer.run/overseer/internal/storage/entity"
)

// uniqueViolation is the PostgreSQL error code raised when an insert
// collides with a uniqueness constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Pins is the persisted pin-record store backing auto-pin deduplication.
type Pins struct {
	s *Storage
}

func NewPins(s *Storage) *Pins {
	return &Pins{s: s}
}

// Contains reports whether a pin record exists for the message.
func (p *Pins) Contains(ctx context.Context, guildID, messageID uint64) (bool, error) {
	var found bool
	err := p.s.Begin(ctx, func(tx pgx.Tx) error {
		e := entity.NewPin(guildID, messageID)
		if err := entity.FindPin(ctx, tx, e); err != nil {
			return err
		}
		found = e.ID != 0
		return nil
	})
	return found, err
}

// Record inserts the pin record, reporting whether this caller created it.
// False means another event already claimed the pin: the insert's conflict
// with the (guild_id, message_id) uniqueness constraint is the signal, so
// at most one concurrent caller ever wins.
func (p *Pins) Record(ctx context.Context, guildID, messageID uint64) (bool, error) {
	err := p.s.Begin(ctx, func(tx pgx.Tx) error {
		return entity.CreatePin(ctx, tx, entity.NewPin(guildID, messageID))
	})
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Count reports the total number of pin records; used by the diagnostic API.
func (p *Pins) Count(ctx context.Context) (int64, error) {
	var n int64
	err := p.s.Begin(ctx, func(tx pgx.Tx) error {
		var err error
		n, err = entity.CountPins(ctx, tx)
		return err
	})
	return n, err
}
