package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/internal/config"
	_ "modernc.org/sqlite"
)

const pragmas = "_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"

// NewConnection abre o arquivo sqlite e aplica o schema. Usado em desenvolvimento
// e como cache local de credenciais.
func NewConnection(ctx context.Context, cfg config.Database) (*database.Connection, error) {
	return Open(ctx, cfg.DSN)
}

func Open(ctx context.Context, path string) (*database.Connection, error) {
	dsn := path
	inMemory := path == "" || strings.HasPrefix(path, ":memory:")
	if inMemory {
		dsn = ":memory:"
	} else if !strings.Contains(path, "?") {
		dsn = path + "?" + pragmas
	}

	db, err := sql.Open(database.DriverSQLite, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: failed to open")
	}

	// Cada conexão :memory: é um banco distinto
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlite: failed to ping")
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return database.NewConnection(db, database.DriverSQLite), nil
}
