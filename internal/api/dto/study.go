package dto

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/internal/domain/study"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type RegisterStudyRequest struct {
	StudyUID        string    `json:"study_uid" validate:"required,max=64"`
	PatientName     string    `json:"patient_name"`
	PatientID       string    `json:"patient_id"`
	Modality        string    `json:"modality"`
	AccessionNumber string    `json:"accession_number"`
	StudyDate       time.Time `json:"study_date" validate:"required"`
	Description     string    `json:"description"`
}

func (r *RegisterStudyRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *RegisterStudyRequest) ToStudy(ctx context.Context) *study.Study {
	return &study.Study{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_STUDY),
		StudyUID:        r.StudyUID,
		PatientName:     r.PatientName,
		PatientID:       r.PatientID,
		Modality:        r.Modality,
		AccessionNumber: r.AccessionNumber,
		StudyDate:       r.StudyDate.UTC(),
		Description:     r.Description,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type StudyResponse struct {
	*study.Study
}

type ListStudiesResponse struct {
	Items []*StudyResponse `json:"items"`
	Total int              `json:"total"`
}
