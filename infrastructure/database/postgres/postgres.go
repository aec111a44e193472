package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/internal/config"
)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*database.Connection, error) {
	db, err := sql.Open(database.DriverPostgres, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: failed to open")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "postgres: failed to ping")
	}

	return database.NewConnection(db, database.DriverPostgres), nil
}
