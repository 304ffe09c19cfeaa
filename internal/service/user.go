package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// UserService manages users inside a tenant's database. Every call requires
// a tenant subdomain in the context so the resolver can pick the right
// connection.
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, filter *types.QueryFilter) (*dto.ListUsersResponse, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{
		ServiceParams: params,
	}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("user with this email already exists").
			WithHint("A user with this email address already exists").
			WithReportableDetails(map[string]interface{}{
				"email": req.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	user := req.ToUser(ctx)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: user}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	if id == "" {
		return nil, ierr.NewError("user ID is required").
			WithHint("Please provide a valid user ID").
			Mark(ierr.ErrValidation)
	}

	user, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: user}, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if email == "" {
		return nil, ierr.NewError("email is required").
			WithHint("Please provide a valid email address").
			Mark(ierr.ErrValidation)
	}

	user, err := s.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: user}, nil
}

func (s *userService) ListUsers(ctx context.Context, filter *types.QueryFilter) (*dto.ListUsersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListUsersResponse{
		Items: make([]*dto.UserResponse, len(users)),
		Total: len(users),
	}
	for i, user := range users {
		response.Items[i] = &dto.UserResponse{User: user}
	}
	return response, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Enabled != nil {
		user.Enabled = *req.Enabled
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.UserRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: user}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.UserRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.UserRepo.Delete(ctx, id)
}
