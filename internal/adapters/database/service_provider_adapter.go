package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

const serviceProvidersTable = "service_providers"

var serviceProviderColumns = []any{
	"id", "name", "category", "description", "location", "phone", "hours", "user_id", "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ServiceProviderAdapter implements ServiceProviderRepository on PostgreSQL
type ServiceProviderAdapter struct {
	client *postgres.Client
}

// NewServiceProviderAdapter creates a new service provider adapter
func NewServiceProviderAdapter(client *postgres.Client) repositories.ServiceProviderRepository {
	return &ServiceProviderAdapter{client: client}
}

// Create inserts a new service provider
func (a *ServiceProviderAdapter) Create(ctx context.Context, provider *entities.ServiceProvider) (err error) {
	ctx, done := a.client.Track(ctx, "service_providers.create")
	defer done(&err)

	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = time.Now().UTC()
	}

	query, args, err := dialect.Insert(serviceProvidersTable).Prepared(true).Rows(goqu.Record{
		"id":          provider.ID,
		"name":        provider.Name,
		"category":    provider.Category,
		"description": provider.Description,
		"location":    provider.Location,
		"phone":       nullString(provider.Phone),
		"hours":       nullString(provider.Hours),
		"user_id":     provider.UserID,
		"created_at":  provider.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build service provider insert", err)
	}

	if _, err := a.client.Conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to create service provider", err)
	}
	return nil
}

// GetByID retrieves a service provider by ID
func (a *ServiceProviderAdapter) GetByID(ctx context.Context, id string) (_ *entities.ServiceProvider, err error) {
	ctx, done := a.client.Track(ctx, "service_providers.get")
	defer done(&err)

	query, args, err := dialect.From(serviceProvidersTable).Prepared(true).
		Select(serviceProviderColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build service provider query", err)
	}

	var provider entities.ServiceProvider
	if err := a.client.Conn(ctx).GetContext(ctx, &provider, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("service provider not found")
		}
		return nil, storeError("failed to get service provider", err)
	}
	return &provider, nil
}

// GetByIDs retrieves the service providers with the given IDs
func (a *ServiceProviderAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.ServiceProvider, error) {
	if len(ids) == 0 {
		return []*entities.ServiceProvider{}, nil
	}
	return a.List(ctx, repositories.ServiceProviderFilter{IDs: ids})
}

// List retrieves service providers matching the filter, oldest first
func (a *ServiceProviderAdapter) List(ctx context.Context, filter repositories.ServiceProviderFilter) (_ []*entities.ServiceProvider, err error) {
	ctx, done := a.client.Track(ctx, "service_providers.list")
	defer done(&err)

	query, args, err := dialect.From(serviceProvidersTable).Prepared(true).
		Select(serviceProviderColumns...).
		Where(serviceProviderConditions(filter)...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build service provider query", err)
	}

	providers := []*entities.ServiceProvider{}
	if err := a.client.Conn(ctx).SelectContext(ctx, &providers, query, args...); err != nil {
		return nil, storeError("failed to list service providers", err)
	}
	return providers, nil
}

func serviceProviderConditions(filter repositories.ServiceProviderFilter) []exp.Expression {
	var conditions []exp.Expression
	if len(filter.IDs) > 0 {
		conditions = append(conditions, goqu.C("id").In(filter.IDs))
	}
	if len(filter.UserIDs) > 0 {
		conditions = append(conditions, goqu.C("user_id").In(filter.UserIDs))
	}
	if filter.Category != "" {
		conditions = append(conditions, goqu.C("category").Eq(filter.Category))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		conditions = append(conditions, goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("description").ILike(pattern),
			goqu.C("location").ILike(pattern),
		))
	}
	return conditions
}

// Update writes every mutable column of the service provider
func (a *ServiceProviderAdapter) Update(ctx context.Context, provider *entities.ServiceProvider) (err error) {
	ctx, done := a.client.Track(ctx, "service_providers.update")
	defer done(&err)

	query, args, err := dialect.Update(serviceProvidersTable).Prepared(true).
		Set(goqu.Record{
			"name":        provider.Name,
			"category":    provider.Category,
			"description": provider.Description,
			"location":    provider.Location,
			"phone":       nullString(provider.Phone),
			"hours":       nullString(provider.Hours),
		}).
		Where(goqu.C("id").Eq(provider.ID)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build service provider update", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to update service provider", err)
	}
	return requireAffected(result, "service provider not found")
}

// Delete removes a service provider and, through the store cascade, its reviews
func (a *ServiceProviderAdapter) Delete(ctx context.Context, id string) (err error) {
	ctx, done := a.client.Track(ctx, "service_providers.delete")
	defer done(&err)

	query, args, err := dialect.Delete(serviceProvidersTable).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build service provider delete", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to delete service provider", err)
	}
	return requireAffected(result, "service provider not found")
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
