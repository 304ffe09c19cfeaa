package service

import (
	"testing"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/stretchr/testify/suite"
)

type StudyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service StudyService
	params  ServiceParams
}

func TestStudyService(t *testing.T) {
	suite.Run(t, new(StudyServiceSuite))
}

func (s *StudyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:    s.GetLogger(),
		Config:    s.GetConfig(),
		StudyRepo: s.GetStores().StudyRepo,
	}
	s.service = NewStudyService(s.params)
}

func (s *StudyServiceSuite) registerStudy(uid, modality, patientID string) *dto.StudyResponse {
	resp, err := s.service.RegisterStudy(s.GetContext(), dto.RegisterStudyRequest{
		StudyUID:  uid,
		PatientID: patientID,
		Modality:  modality,
		StudyDate: time.Now().UTC(),
	})
	s.NoError(err)
	return resp
}

func (s *StudyServiceSuite) TestRegisterStudy() {
	s.Run("Valid Study", func() {
		resp, err := s.service.RegisterStudy(s.GetContext(), dto.RegisterStudyRequest{
			StudyUID:        "1.2.840.113619.2.55.3.604688119",
			PatientName:     "DOE^JANE",
			PatientID:       "MRN-1001",
			Modality:        "CT",
			AccessionNumber: "ACC-42",
			StudyDate:       time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC),
			Description:     "CT CHEST W/O CONTRAST",
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal("1.2.840.113619.2.55.3.604688119", resp.StudyUID)
		s.Equal("CT", resp.Modality)
	})

	s.Run("Duplicate Study UID", func() {
		resp, err := s.service.RegisterStudy(s.GetContext(), dto.RegisterStudyRequest{
			StudyUID:  "1.2.840.113619.2.55.3.604688119",
			StudyDate: time.Now().UTC(),
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsAlreadyExists(err))
	})

	s.Run("Missing Study Date", func() {
		resp, err := s.service.RegisterStudy(s.GetContext(), dto.RegisterStudyRequest{
			StudyUID: "1.2.840.113619.2.55.3.999",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})
}

func (s *StudyServiceSuite) TestGetStudyByUID() {
	created := s.registerStudy("1.2.840.1", "MR", "MRN-1001")

	resp, err := s.service.GetStudyByUID(s.GetContext(), "1.2.840.1")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	resp, err = s.service.GetStudyByUID(s.GetContext(), "1.2.840.999")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *StudyServiceSuite) TestListStudies() {
	s.registerStudy("1.2.840.1", "CT", "MRN-1001")
	s.registerStudy("1.2.840.2", "MR", "MRN-1001")
	s.registerStudy("1.2.840.3", "CT", "MRN-2002")

	s.Run("All Studies", func() {
		resp, err := s.service.ListStudies(s.GetContext(), nil)
		s.NoError(err)
		s.Equal(3, resp.Total)
	})

	s.Run("Filter By Modality", func() {
		resp, err := s.service.ListStudies(s.GetContext(), &types.StudyFilter{
			Modalities: []string{"CT"},
		})
		s.NoError(err)
		s.Equal(2, resp.Total)
	})

	s.Run("Filter By Patient", func() {
		resp, err := s.service.ListStudies(s.GetContext(), &types.StudyFilter{
			PatientID: "MRN-1001",
		})
		s.NoError(err)
		s.Equal(2, resp.Total)
	})

	s.Run("Filter By Modality And Patient", func() {
		resp, err := s.service.ListStudies(s.GetContext(), &types.StudyFilter{
			Modalities: []string{"MR"},
			PatientID:  "MRN-1001",
		})
		s.NoError(err)
		s.Equal(1, resp.Total)
	})
}

func (s *StudyServiceSuite) TestDeleteStudy() {
	created := s.registerStudy("1.2.840.1", "CT", "MRN-1001")

	s.NoError(s.service.DeleteStudy(s.GetContext(), created.ID))

	resp, err := s.service.GetStudy(s.GetContext(), created.ID)
	s.Error(err)
	s.Nil(resp)

	// The UID is free for re-registration after deletion
	s.registerStudy("1.2.840.1", "CT", "MRN-1001")
}
