package user

import (
	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// User represents an account in a tenant's admin console. Rows live in the
// tenant's isolated database.
type User struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Name    string         `json:"name,omitempty"`
	Role    types.UserRole `json:"role"`
	Enabled bool           `json:"enabled"`
	types.BaseModel
}

// FromEnt converts ent.User to domain User
func FromEnt(u *ent.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Enabled: u.Enabled,
		BaseModel: types.BaseModel{
			TenantID:  u.TenantID,
			Status:    types.Status(u.Status),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			CreatedBy: u.CreatedBy,
			UpdatedBy: u.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.User to []*User
func FromEntList(users []*ent.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromEnt(u)
	}
	return result
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return ierr.NewError("email is required").Mark(ierr.ErrValidation)
	}
	return u.Role.Validate()
}
