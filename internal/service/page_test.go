package service

import (
	"testing"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type PageServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PageService
	params  ServiceParams
}

func TestPageService(t *testing.T) {
	suite.Run(t, new(PageServiceSuite))
}

func (s *PageServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		PageRepo: s.GetStores().PageRepo,
	}
	s.service = NewPageService(s.params)
}

func (s *PageServiceSuite) TestCreatePage() {
	s.Run("Valid Page", func() {
		resp, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
			Slug:      "about-us",
			Title:     "About Us",
			Body:      "<p>We read scans.</p>",
			Published: true,
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal("about-us", resp.Slug)
		s.True(resp.Published)
	})

	s.Run("Duplicate Slug", func() {
		resp, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
			Slug:  "about-us",
			Title: "About Us Again",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsAlreadyExists(err))
	})

	s.Run("Missing Title", func() {
		resp, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
			Slug: "contact",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})
}

func (s *PageServiceSuite) TestGetPageBySlug() {
	created, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
		Slug:  "about-us",
		Title: "About Us",
	})
	s.NoError(err)

	resp, err := s.service.GetPageBySlug(s.GetContext(), "about-us")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	resp, err = s.service.GetPageBySlug(s.GetContext(), "nonexistent")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *PageServiceSuite) TestUpdatePage() {
	created, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
		Slug:  "about-us",
		Title: "About Us",
	})
	s.NoError(err)

	resp, err := s.service.UpdatePage(s.GetContext(), created.ID, dto.UpdatePageRequest{
		Title:     lo.ToPtr("About Our Clinic"),
		Published: lo.ToPtr(true),
	})
	s.NoError(err)
	s.Equal("About Our Clinic", resp.Title)
	s.True(resp.Published)
}

func (s *PageServiceSuite) TestDeletePage() {
	created, err := s.service.CreatePage(s.GetContext(), dto.CreatePageRequest{
		Slug:  "about-us",
		Title: "About Us",
	})
	s.NoError(err)

	s.NoError(s.service.DeletePage(s.GetContext(), created.ID))

	resp, err := s.service.GetPage(s.GetContext(), created.ID)
	s.Error(err)
	s.Nil(resp)
}
