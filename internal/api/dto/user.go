package dto

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/user"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type CreateUserRequest struct {
	Email string         `json:"email" validate:"required,email"`
	Name  string         `json:"name"`
	Role  types.UserRole `json:"role" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Role.Validate()
}

func (r *CreateUserRequest) ToUser(ctx context.Context) *user.User {
	return &user.User{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role,
		Enabled:   true,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdateUserRequest struct {
	Name    *string         `json:"name,omitempty"`
	Role    *types.UserRole `json:"role,omitempty"`
	Enabled *bool           `json:"enabled,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Role != nil {
		return r.Role.Validate()
	}
	return nil
}

type UserResponse struct {
	*user.User
}

type ListUsersResponse struct {
	Items []*UserResponse `json:"items"`
	Total int             `json:"total"`
}
