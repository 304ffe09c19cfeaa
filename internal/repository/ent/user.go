package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entUser "github.com/pacsflow/pacsflow/ent/user"
	domainUser "github.com/pacsflow/pacsflow/internal/domain/user"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

// userRepository persists users in the tenant database resolved from the
// request context.
type userRepository struct {
	resolver postgres.TenantClientResolver
	logger   *logger.Logger
}

// NewUserRepository creates a new user repository over the tenant client
// resolver.
func NewUserRepository(resolver postgres.TenantClientResolver, logger *logger.Logger) domainUser.Repository {
	return &userRepository{
		resolver: resolver,
		logger:   logger,
	}
}

func (r *userRepository) querier(ctx context.Context) (*ent.Client, error) {
	client, err := r.resolver.ClientForContext(ctx)
	if err != nil {
		return nil, err
	}
	return client.Querier(ctx), nil
}

func (r *userRepository) Create(ctx context.Context, u *domainUser.User) error {
	r.logger.Debugw("creating user", "user_id", u.ID, "email", u.Email)

	span := StartRepositorySpan(ctx, "user", "create", map[string]interface{}{
		"user_id": u.ID,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.User.
		Create().
		SetID(u.ID).
		SetEmail(u.Email).
		SetName(u.Name).
		SetRole(u.Role).
		SetEnabled(u.Enabled).
		SetTenantID(u.TenantID).
		SetStatus(string(u.Status)).
		SetCreatedBy(u.CreatedBy).
		SetUpdatedBy(u.UpdatedBy).
		SetCreatedAt(u.CreatedAt).
		SetUpdatedAt(u.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A user with this email already exists").
				WithReportableDetails(map[string]interface{}{
					"email": u.Email,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*domainUser.User, error) {
	span := StartRepositorySpan(ctx, "user", "get", map[string]interface{}{
		"user_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.User.Query().
		Where(
			entUser.ID(id),
			entUser.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("User not found").
				WithReportableDetails(map[string]interface{}{
					"user_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainUser.FromEnt(result), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	span := StartRepositorySpan(ctx, "user", "get_by_email", map[string]interface{}{
		"email": email,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.User.Query().
		Where(
			entUser.Email(email),
			entUser.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("User not found").
				WithReportableDetails(map[string]interface{}{
					"email": email,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get user by email").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainUser.FromEnt(result), nil
}

func (r *userRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainUser.User, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	span := StartRepositorySpan(ctx, "user", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	query := client.User.Query().
		Where(entUser.Status(string(filter.GetStatus()))).
		Order(ent.Asc(entUser.FieldEmail))

	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list users").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainUser.FromEntList(results), nil
}

func (r *userRepository) Update(ctx context.Context, u *domainUser.User) error {
	r.logger.Debugw("updating user", "user_id", u.ID)

	span := StartRepositorySpan(ctx, "user", "update", map[string]interface{}{
		"user_id": u.ID,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.User.UpdateOneID(u.ID).
		SetEmail(u.Email).
		SetName(u.Name).
		SetRole(u.Role).
		SetEnabled(u.Enabled).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("User not found").
				WithReportableDetails(map[string]interface{}{
					"user_id": u.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update user").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting user", "user_id", id)

	span := StartRepositorySpan(ctx, "user", "delete", map[string]interface{}{
		"user_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.User.UpdateOneID(id).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("User not found").
				WithReportableDetails(map[string]interface{}{
					"user_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete user").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
