package service

import (
	"testing"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type UserServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UserService
	params  ServiceParams
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		UserRepo: s.GetStores().UserRepo,
	}
	s.service = NewUserService(s.params)
}

func (s *UserServiceSuite) TestCreateUser() {
	s.Run("Valid User", func() {
		resp, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
			Email: "tech@clinic-one.example.com",
			Name:  "Imaging Tech",
			Role:  types.UserRoleStaff,
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal("tech@clinic-one.example.com", resp.Email)
		s.Equal(types.UserRoleStaff, resp.Role)
		s.True(resp.Enabled)
	})

	s.Run("Duplicate Email", func() {
		resp, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
			Email: "tech@clinic-one.example.com",
			Name:  "Another Tech",
			Role:  types.UserRoleStaff,
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsAlreadyExists(err))
	})

	s.Run("Invalid Role", func() {
		resp, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
			Email: "boss@clinic-one.example.com",
			Role:  types.UserRole("owner"),
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})

	s.Run("Invalid Email", func() {
		resp, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
			Email: "not-an-email",
			Role:  types.UserRoleStaff,
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})
}

func (s *UserServiceSuite) TestGetUserByEmail() {
	created, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Email: "tech@clinic-one.example.com",
		Role:  types.UserRoleViewer,
	})
	s.NoError(err)

	resp, err := s.service.GetUserByEmail(s.GetContext(), "tech@clinic-one.example.com")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	resp, err = s.service.GetUserByEmail(s.GetContext(), "nobody@example.com")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *UserServiceSuite) TestUpdateUser() {
	created, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Email: "tech@clinic-one.example.com",
		Name:  "Imaging Tech",
		Role:  types.UserRoleStaff,
	})
	s.NoError(err)

	resp, err := s.service.UpdateUser(s.GetContext(), created.ID, dto.UpdateUserRequest{
		Role:    lo.ToPtr(types.UserRoleAdmin),
		Enabled: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Equal(types.UserRoleAdmin, resp.Role)
	s.False(resp.Enabled)
}

func (s *UserServiceSuite) TestDeleteUser() {
	created, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Email: "tech@clinic-one.example.com",
		Role:  types.UserRoleStaff,
	})
	s.NoError(err)

	s.NoError(s.service.DeleteUser(s.GetContext(), created.ID))

	resp, err := s.service.GetUser(s.GetContext(), created.ID)
	s.Error(err)
	s.Nil(resp)

	// The email becomes available again after deletion
	_, err = s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Email: "tech@clinic-one.example.com",
		Role:  types.UserRoleStaff,
	})
	s.NoError(err)
}
