package database

import (
	"context"

	"github.com/pkg/errors"
)

// Schema é compatível com postgres e sqlite. Datas de controle são epoch em segundos.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    BIGINT NOT NULL,
		updated_at    BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS platform_credentials (
		owner_id   TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at BIGINT NOT NULL,
		PRIMARY KEY (owner_id, key)
	)`,
	`CREATE TABLE IF NOT EXISTS metric_snapshots (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT NOT NULL,
		platform    TEXT NOT NULL,
		date        TEXT NOT NULL,
		impressions BIGINT NOT NULL DEFAULT 0,
		reach       BIGINT NOT NULL DEFAULT 0,
		engagement  BIGINT NOT NULL DEFAULT 0,
		clicks      BIGINT NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		followers   BIGINT NOT NULL DEFAULT 0,
		created_at  BIGINT NOT NULL,
		updated_at  BIGINT NOT NULL,
		UNIQUE (owner_id, platform, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_metric_snapshots_owner_date ON metric_snapshots (owner_id, date)`,
}

// Migrate cria as tabelas que ainda não existem
func Migrate(ctx context.Context, q Queryer) error {
	for _, stmt := range Schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "database: failed to apply schema")
		}
	}
	return nil
}
