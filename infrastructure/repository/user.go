package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "password_hash", "active", "created_at", "updated_at"}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	conn database.Conn
}

func NewUserRepository(conn database.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	queryBuilder := r.conn.StatementBuilder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Active, now.Unix(), now.Unix())

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.ExecContext(ctx, usersSQL, usersArgs...); err != nil {
		return nil, errors.Wrap(err, "repository: failed to create user")
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	queryBuilder := r.conn.StatementBuilder().
		Update(usersTable).
		Set("active", user.Active).
		Set("updated_at", time.Now().UTC().Unix()).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", strings.ToLower(strings.TrimSpace(user.Email)))
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, usersSQL, usersArgs...); err != nil {
		return errors.Wrapf(err, "repository: failed to update user %s", user.ID)
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID})
}

// getOne devolve nil sem erro quando o usuário não existe
func (r *userRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := r.conn.StatementBuilder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, usersSQL, usersArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to read user")
	}

	return user, nil
}

func (r *userRepository) ListUser(ctx context.Context) ([]*domain.User, error) {
	usersSQL, usersArgs, err := r.conn.StatementBuilder().
		Select(userColumns...).
		From(usersTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, usersSQL, usersArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to list users")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "repository: failed to scan user")
		}
		user.PasswordHash = ""
		users = append(users, user)
	}

	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	var createdAt, updatedAt int64

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	user.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &user, nil
}
