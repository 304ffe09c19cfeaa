package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/study"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryStudyStore implements study.Repository
type InMemoryStudyStore struct {
	*InMemoryStore[*study.Study]
}

// NewInMemoryStudyStore creates a new in-memory study store
func NewInMemoryStudyStore() *InMemoryStudyStore {
	return &InMemoryStudyStore{
		InMemoryStore: NewInMemoryStore[*study.Study](),
	}
}

func copyStudy(st *study.Study) *study.Study {
	if st == nil {
		return nil
	}
	copied := *st
	return &copied
}

func (s *InMemoryStudyStore) Create(ctx context.Context, st *study.Study) error {
	if st == nil {
		return ierr.NewError("study cannot be nil").
			WithHint("Study cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, st.ID, copyStudy(st)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to register study").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryStudyStore) Get(ctx context.Context, id string) (*study.Study, error) {
	st, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || st.Status == types.StatusDeleted {
		return nil, ierr.NewError("study not found").
			WithHint("Study not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyStudy(st), nil
}

func (s *InMemoryStudyStore) GetByStudyUID(ctx context.Context, studyUID string) (*study.Study, error) {
	studies, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, st *study.Study, _ interface{}) bool {
		return st.StudyUID == studyUID && st.Status != types.StatusDeleted
	}, nil)

	if len(studies) == 0 {
		return nil, ierr.NewError("study not found").
			WithHint("No study registered for this UID").
			WithReportableDetails(map[string]interface{}{
				"study_uid": studyUID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyStudy(studies[0]), nil
}

func (s *InMemoryStudyStore) List(ctx context.Context, filter *types.StudyFilter) ([]*study.Study, error) {
	studies, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, st *study.Study, f interface{}) bool {
		sf, ok := f.(*types.StudyFilter)
		if !ok || sf == nil {
			return st.Status == types.StatusPublished
		}
		if st.Status != sf.GetStatus() {
			return false
		}
		if len(sf.Modalities) > 0 && !lo.Contains(sf.Modalities, st.Modality) {
			return false
		}
		if sf.PatientID != "" && st.PatientID != sf.PatientID {
			return false
		}
		if sf.Accession != "" && st.AccessionNumber != sf.Accession {
			return false
		}
		return true
	}, func(a, b *study.Study) bool {
		return a.StudyDate.After(b.StudyDate)
	})

	return lo.Map(studies, func(st *study.Study, _ int) *study.Study {
		return copyStudy(st)
	}), nil
}

func (s *InMemoryStudyStore) Delete(ctx context.Context, id string) error {
	st, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	st.Status = types.StatusDeleted

	if err := s.InMemoryStore.Update(ctx, st.ID, st); err != nil {
		return ierr.WithError(err).
			WithHint("Study not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
