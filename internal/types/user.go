package types

import ierr "github.com/pacsflow/pacsflow/internal/errors"

// UserRole is the role of a user inside a tenant's admin console.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleStaff  UserRole = "staff"
	UserRoleViewer UserRole = "viewer"
)

func (r UserRole) Validate() error {
	switch r {
	case UserRoleAdmin, UserRoleStaff, UserRoleViewer:
		return nil
	}
	return ierr.NewError("invalid user role").
		WithHint("Role must be admin, staff or viewer").
		WithReportableDetails(map[string]interface{}{
			"role": r,
		}).
		Mark(ierr.ErrValidation)
}
