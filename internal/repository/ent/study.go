package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entStudy "github.com/pacsflow/pacsflow/ent/study"
	domainStudy "github.com/pacsflow/pacsflow/internal/domain/study"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

// studyRepository persists DICOM study registry rows in the tenant database
// resolved from the request context.
type studyRepository struct {
	resolver postgres.TenantClientResolver
	logger   *logger.Logger
}

// NewStudyRepository creates a new study repository over the tenant client
// resolver.
func NewStudyRepository(resolver postgres.TenantClientResolver, logger *logger.Logger) domainStudy.Repository {
	return &studyRepository{
		resolver: resolver,
		logger:   logger,
	}
}

func (r *studyRepository) querier(ctx context.Context) (*ent.Client, error) {
	client, err := r.resolver.ClientForContext(ctx)
	if err != nil {
		return nil, err
	}
	return client.Querier(ctx), nil
}

func (r *studyRepository) Create(ctx context.Context, s *domainStudy.Study) error {
	r.logger.Debugw("registering study", "study_id", s.ID, "study_uid", s.StudyUID)

	span := StartRepositorySpan(ctx, "study", "create", map[string]interface{}{
		"study_uid": s.StudyUID,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.Study.
		Create().
		SetID(s.ID).
		SetStudyUID(s.StudyUID).
		SetPatientName(s.PatientName).
		SetPatientID(s.PatientID).
		SetModality(s.Modality).
		SetAccessionNumber(s.AccessionNumber).
		SetStudyDate(s.StudyDate).
		SetDescription(s.Description).
		SetTenantID(s.TenantID).
		SetStatus(string(s.Status)).
		SetCreatedBy(s.CreatedBy).
		SetUpdatedBy(s.UpdatedBy).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A study with this UID is already registered").
				WithReportableDetails(map[string]interface{}{
					"study_uid": s.StudyUID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to register study").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *studyRepository) Get(ctx context.Context, id string) (*domainStudy.Study, error) {
	span := StartRepositorySpan(ctx, "study", "get", map[string]interface{}{
		"study_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.Study.Query().
		Where(
			entStudy.ID(id),
			entStudy.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Study not found").
				WithReportableDetails(map[string]interface{}{
					"study_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get study").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainStudy.FromEnt(result), nil
}

func (r *studyRepository) GetByStudyUID(ctx context.Context, studyUID string) (*domainStudy.Study, error) {
	span := StartRepositorySpan(ctx, "study", "get_by_study_uid", map[string]interface{}{
		"study_uid": studyUID,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.Study.Query().
		Where(
			entStudy.StudyUID(studyUID),
			entStudy.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Study not found").
				WithReportableDetails(map[string]interface{}{
					"study_uid": studyUID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get study by UID").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainStudy.FromEnt(result), nil
}

func (r *studyRepository) List(ctx context.Context, filter *types.StudyFilter) ([]*domainStudy.Study, error) {
	if filter == nil {
		filter = types.NewStudyFilter()
	}

	span := StartRepositorySpan(ctx, "study", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	query := client.Study.Query().
		Where(entStudy.Status(string(filter.GetStatus()))).
		Order(ent.Desc(entStudy.FieldStudyDate))

	if len(filter.Modalities) > 0 {
		query = query.Where(entStudy.ModalityIn(filter.Modalities...))
	}
	if filter.PatientID != "" {
		query = query.Where(entStudy.PatientID(filter.PatientID))
	}
	if filter.Accession != "" {
		query = query.Where(entStudy.AccessionNumber(filter.Accession))
	}
	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list studies").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainStudy.FromEntList(results), nil
}

func (r *studyRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting study", "study_id", id)

	span := StartRepositorySpan(ctx, "study", "delete", map[string]interface{}{
		"study_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.Study.UpdateOneID(id).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Study not found").
				WithReportableDetails(map[string]interface{}{
					"study_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete study").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
