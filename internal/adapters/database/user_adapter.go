package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

const usersTable = "users"

var userColumns = []any{"id", "name", "email", "created_at"}

// UserAdapter implements UserRepository on PostgreSQL
type UserAdapter struct {
	client *postgres.Client
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{client: client}
}

// Create inserts a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) (err error) {
	ctx, done := a.client.Track(ctx, "users.create")
	defer done(&err)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := dialect.Insert(usersTable).Prepared(true).Rows(goqu.Record{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert", err)
	}

	if _, err := a.client.Conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (_ *entities.User, err error) {
	ctx, done := a.client.Track(ctx, "users.get")
	defer done(&err)

	query, args, err := dialect.From(usersTable).Prepared(true).
		Select(userColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	var user entities.User
	if err := a.client.Conn(ctx).GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, storeError("failed to get user", err)
	}
	return &user, nil
}

// GetByIDs retrieves the users with the given IDs
func (a *UserAdapter) GetByIDs(ctx context.Context, ids []string) (_ []*entities.User, err error) {
	if len(ids) == 0 {
		return []*entities.User{}, nil
	}

	ctx, done := a.client.Track(ctx, "users.get_many")
	defer done(&err)

	query, args, err := dialect.From(usersTable).Prepared(true).
		Select(userColumns...).
		Where(goqu.C("id").In(ids)).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	users := []*entities.User{}
	if err := a.client.Conn(ctx).SelectContext(ctx, &users, query, args...); err != nil {
		return nil, storeError("failed to get users", err)
	}
	return users, nil
}

// List retrieves all users ordered by creation time
func (a *UserAdapter) List(ctx context.Context) (_ []*entities.User, err error) {
	ctx, done := a.client.Track(ctx, "users.list")
	defer done(&err)

	query, args, err := dialect.From(usersTable).Prepared(true).
		Select(userColumns...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	users := []*entities.User{}
	if err := a.client.Conn(ctx).SelectContext(ctx, &users, query, args...); err != nil {
		return nil, storeError("failed to list users", err)
	}
	return users, nil
}

// Update writes the user's name and email
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) (err error) {
	ctx, done := a.client.Track(ctx, "users.update")
	defer done(&err)

	query, args, err := dialect.Update(usersTable).Prepared(true).
		Set(goqu.Record{
			"name":  user.Name,
			"email": user.Email,
		}).
		Where(goqu.C("id").Eq(user.ID)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user update", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to update user", err)
	}
	return requireAffected(result, "user not found")
}

// Delete removes a user. Providers and reviews go with it through ON DELETE CASCADE.
func (a *UserAdapter) Delete(ctx context.Context, id string) (err error) {
	ctx, done := a.client.Track(ctx, "users.delete")
	defer done(&err)

	query, args, err := dialect.Delete(usersTable).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user delete", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to delete user", err)
	}
	return requireAffected(result, "user not found")
}

func requireAffected(result sql.Result, notFound string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read affected rows", err)
	}
	if rows == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}
