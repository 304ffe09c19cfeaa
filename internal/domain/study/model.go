package study

import (
	"time"

	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// Study represents one DICOM study registered for a tenant. Only registry
// metadata is stored here; pixel data stays in the external archive.
type Study struct {
	ID              string    `json:"id"`
	StudyUID        string    `json:"study_uid"`
	PatientName     string    `json:"patient_name,omitempty"`
	PatientID       string    `json:"patient_id,omitempty"`
	Modality        string    `json:"modality,omitempty"`
	AccessionNumber string    `json:"accession_number,omitempty"`
	StudyDate       time.Time `json:"study_date"`
	Description     string    `json:"description,omitempty"`
	types.BaseModel
}

// FromEnt converts ent.Study to domain Study
func FromEnt(s *ent.Study) *Study {
	if s == nil {
		return nil
	}

	return &Study{
		ID:              s.ID,
		StudyUID:        s.StudyUID,
		PatientName:     s.PatientName,
		PatientID:       s.PatientID,
		Modality:        s.Modality,
		AccessionNumber: s.AccessionNumber,
		StudyDate:       s.StudyDate,
		Description:     s.Description,
		BaseModel: types.BaseModel{
			TenantID:  s.TenantID,
			Status:    types.Status(s.Status),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
			CreatedBy: s.CreatedBy,
			UpdatedBy: s.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.Study to []*Study
func FromEntList(studies []*ent.Study) []*Study {
	result := make([]*Study, len(studies))
	for i, s := range studies {
		result[i] = FromEnt(s)
	}
	return result
}

// Validate validates the study
func (s *Study) Validate() error {
	if s.StudyUID == "" {
		return ierr.NewError("study_uid is required").Mark(ierr.ErrValidation)
	}
	// DICOM UIDs are limited to 64 characters
	if len(s.StudyUID) > 64 {
		return ierr.NewError("study_uid must be at most 64 characters").Mark(ierr.ErrValidation)
	}
	return nil
}
