package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// StudyService manages the DICOM study registry inside a tenant's database.
type StudyService interface {
	RegisterStudy(ctx context.Context, req dto.RegisterStudyRequest) (*dto.StudyResponse, error)
	GetStudy(ctx context.Context, id string) (*dto.StudyResponse, error)
	GetStudyByUID(ctx context.Context, studyUID string) (*dto.StudyResponse, error)
	ListStudies(ctx context.Context, filter *types.StudyFilter) (*dto.ListStudiesResponse, error)
	DeleteStudy(ctx context.Context, id string) error
}

type studyService struct {
	ServiceParams
}

func NewStudyService(params ServiceParams) StudyService {
	return &studyService{
		ServiceParams: params,
	}
}

func (s *studyService) RegisterStudy(ctx context.Context, req dto.RegisterStudyRequest) (*dto.StudyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Study instance UIDs are globally unique; re-registering the same
	// study is a conflict, not an upsert.
	existing, err := s.StudyRepo.GetByStudyUID(ctx, req.StudyUID)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("study is already registered").
			WithHint("A study with this UID is already registered").
			WithReportableDetails(map[string]interface{}{
				"study_uid": req.StudyUID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	study := req.ToStudy(ctx)
	if err := study.Validate(); err != nil {
		return nil, err
	}

	if err := s.StudyRepo.Create(ctx, study); err != nil {
		return nil, err
	}

	s.Logger.Debugw("registered study",
		"study_id", study.ID,
		"study_uid", study.StudyUID,
		"modality", study.Modality,
	)

	return &dto.StudyResponse{Study: study}, nil
}

func (s *studyService) GetStudy(ctx context.Context, id string) (*dto.StudyResponse, error) {
	if id == "" {
		return nil, ierr.NewError("study ID is required").
			WithHint("Please provide a valid study ID").
			Mark(ierr.ErrValidation)
	}

	study, err := s.StudyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.StudyResponse{Study: study}, nil
}

func (s *studyService) GetStudyByUID(ctx context.Context, studyUID string) (*dto.StudyResponse, error) {
	if studyUID == "" {
		return nil, ierr.NewError("study UID is required").
			WithHint("Please provide a valid study instance UID").
			Mark(ierr.ErrValidation)
	}

	study, err := s.StudyRepo.GetByStudyUID(ctx, studyUID)
	if err != nil {
		return nil, err
	}

	return &dto.StudyResponse{Study: study}, nil
}

func (s *studyService) ListStudies(ctx context.Context, filter *types.StudyFilter) (*dto.ListStudiesResponse, error) {
	if filter == nil {
		filter = types.NewStudyFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	studies, err := s.StudyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListStudiesResponse{
		Items: make([]*dto.StudyResponse, len(studies)),
		Total: len(studies),
	}
	for i, study := range studies {
		response.Items[i] = &dto.StudyResponse{Study: study}
	}
	return response, nil
}

func (s *studyService) DeleteStudy(ctx context.Context, id string) error {
	if _, err := s.StudyRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.StudyRepo.Delete(ctx, id)
}
