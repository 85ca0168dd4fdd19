package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

var Pool *pgxpool.Pool

// DBTX is the subset of *pgxpool.Pool the stores use, so pgxmock can stand in for it.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func Init(ctx context.Context, dsn string) error {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return fmt.Errorf("ping: %w", err)
	}
	Pool = p
	return nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}

// openDB is used only by migrations; golang-migrate's postgres driver wants a *sql.DB.
func openDB(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}
