package service

import (
	"testing"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type BondCompanyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BondCompanyService
	params  ServiceParams
}

func TestBondCompanyService(t *testing.T) {
	suite.Run(t, new(BondCompanyServiceSuite))
}

func (s *BondCompanyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		BondCompanyRepo: s.GetStores().BondCompanyRepo,
	}
	s.service = NewBondCompanyService(s.params)
}

func (s *BondCompanyServiceSuite) TestCreateBondCompany() {
	s.Run("Valid Company", func() {
		resp, err := s.service.CreateBondCompany(s.GetContext(), dto.CreateBondCompanyRequest{
			Code:    "ACME",
			Name:    "Acme Surety",
			Address: "1 Bond St",
			Phone:   "+1-555-0100",
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal("ACME", resp.Code)
	})

	s.Run("Missing Code", func() {
		resp, err := s.service.CreateBondCompany(s.GetContext(), dto.CreateBondCompanyRequest{
			Name: "Nameless Surety",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})
}

func (s *BondCompanyServiceSuite) TestGetBondCompanyByCode() {
	created, err := s.service.CreateBondCompany(s.GetContext(), dto.CreateBondCompanyRequest{
		Code: "ACME",
		Name: "Acme Surety",
	})
	s.NoError(err)

	resp, err := s.service.GetBondCompanyByCode(s.GetContext(), "ACME")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	resp, err = s.service.GetBondCompanyByCode(s.GetContext(), "UNKNOWN")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *BondCompanyServiceSuite) TestListBondCompanies() {
	for _, code := range []string{"ZETA", "ACME", "MIDWAY"} {
		_, err := s.service.CreateBondCompany(s.GetContext(), dto.CreateBondCompanyRequest{
			Code: code,
			Name: code + " Surety",
		})
		s.NoError(err)
	}

	resp, err := s.service.ListBondCompanies(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(3, resp.Total)

	// Sorted by code
	s.Equal("ACME", resp.Items[0].Code)
	s.Equal("MIDWAY", resp.Items[1].Code)
	s.Equal("ZETA", resp.Items[2].Code)
}
