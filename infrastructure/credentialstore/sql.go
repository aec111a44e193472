package credentialstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
)

const credentialsTable = "platform_credentials"

// SQLBackend persiste as credenciais em postgres ou sqlite
type SQLBackend struct {
	conn database.Conn
	now  func() time.Time
}

func NewSQLBackend(conn database.Conn) *SQLBackend {
	return &SQLBackend{conn: conn, now: time.Now}
}

func (s *SQLBackend) Get(ctx context.Context, ownerID, key string) (string, bool, error) {
	query, args, err := s.conn.StatementBuilder().
		Select("value").
		From(credentialsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "key": key}).
		ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "credentialstore: failed to build select")
	}

	var value string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "credentialstore: failed to read %s", key)
	}

	return value, true, nil
}

func (s *SQLBackend) Put(ctx context.Context, ownerID, key, value string) error {
	query, args, err := s.conn.StatementBuilder().
		Insert(credentialsTable).
		Columns("owner_id", "key", "value", "updated_at").
		Values(ownerID, key, value, s.now().Unix()).
		Suffix("ON CONFLICT (owner_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "credentialstore: failed to build upsert")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "credentialstore: failed to write %s", key)
	}
	return nil
}

func (s *SQLBackend) Remove(ctx context.Context, ownerID, key string) error {
	query, args, err := s.conn.StatementBuilder().
		Delete(credentialsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "key": key}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "credentialstore: failed to build delete")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "credentialstore: failed to delete %s", key)
	}
	return nil
}

func (s *SQLBackend) Owners(ctx context.Context) ([]string, error) {
	query, args, err := s.conn.StatementBuilder().
		Select("DISTINCT owner_id").
		From(credentialsTable).
		OrderBy("owner_id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "credentialstore: failed to build owners query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "credentialstore: failed to list owners")
	}
	defer rows.Close()

	owners := make([]string, 0)
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, errors.Wrap(err, "credentialstore: failed to scan owner")
		}
		owners = append(owners, owner)
	}

	return owners, errors.Wrap(rows.Err(), "credentialstore: failed to iterate owners")
}
