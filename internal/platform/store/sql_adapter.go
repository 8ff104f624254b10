package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"foodreview/internal/platform/logger"
	"foodreview/internal/platform/store/pg"
)

// pgAdapter wraps pg.PG and implements RowQuerier + TxRunner
// it logs slow queries and, when logSQL is on, every statement
type pgAdapter struct {
	p      *pg.PG
	log    logger.Logger
	logSQL bool
	slow   time.Duration
}

func newPGAdapter(p *pg.PG, log logger.Logger, logSQL bool, slowMs int) *pgAdapter {
	return &pgAdapter{p: p, log: log, logSQL: logSQL, slow: time.Duration(slowMs) * time.Millisecond}
}

// tag adapts pgconn.CommandTag to CommandTag
type tag struct{ t pgconn.CommandTag }

func (t tag) String() string      { return t.t.String() }
func (t tag) RowsAffected() int64 { return t.t.RowsAffected() }

// rows adapts pgx.Rows to Rows
type rows struct{ r pgx.Rows }

func (r rows) Next() bool             { return r.r.Next() }
func (r rows) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r rows) Err() error             { return r.r.Err() }
func (r rows) Close()                 { r.r.Close() }

// row adapts pgx.Row to Row, emitting the trace event after Scan
type row struct {
	r     pgx.Row
	after func(scanErr error)
}

func (r row) Scan(dest ...any) error {
	err := r.r.Scan(dest...)
	if r.after != nil {
		r.after(err)
	}
	return err
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	a.emit(sql, start, err)
	return tag{ct}, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	a.emit(sql, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := a.p.Pool.QueryRow(ctx, sql, args...)
	return row{
		r:     r,
		after: func(scanErr error) { a.emit(sql, start, scanErr) },
	}
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	q := txQuerier{tx: tx, a: a}
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// emit logs a query event when logSQL is on or the statement was slow
func (a *pgAdapter) emit(sql string, start time.Time, err error) {
	elapsed := time.Since(start)
	switch {
	case err != nil && !errors.Is(err, pgx.ErrNoRows):
		a.log.Error().Err(err).Dur("elapsed", elapsed).Str("sql", sql).Msg("query failed")
	case a.slow > 0 && elapsed >= a.slow:
		a.log.Warn().Dur("elapsed", elapsed).Str("sql", sql).Msg("slow query")
	case a.logSQL:
		a.log.Debug().Dur("elapsed", elapsed).Str("sql", sql).Msg("query")
	}
}

// txQuerier runs statements on an open transaction
type txQuerier struct {
	tx pgx.Tx
	a  *pgAdapter
}

func (q txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := q.tx.Exec(ctx, sql, args...)
	q.a.emit(sql, start, err)
	return tag{ct}, err
}

func (q txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.tx.Query(ctx, sql, args...)
	q.a.emit(sql, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (q txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := q.tx.QueryRow(ctx, sql, args...)
	return row{
		r:     r,
		after: func(scanErr error) { q.a.emit(sql, start, scanErr) },
	}
}
