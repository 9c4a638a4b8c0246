package entity

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// query runs a statement scanning at most one row into scans. Queries that
// return no rows leave the scan targets untouched, which callers detect
// through a zero entity ID.
func query(ctx context.Context, tx pgx.Tx, sql string, args, scans []interface{}) error {
	_, err := tx.QueryFunc(ctx, sql, args, scans, func(pgx.QueryFuncRow) error { return nil })
	return err
}
