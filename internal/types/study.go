package types

// StudyFilter represents the filter options for DICOM studies
type StudyFilter struct {
	*QueryFilter
	Modalities []string `json:"modalities,omitempty" form:"modalities"`
	PatientID  string   `json:"patient_id,omitempty" form:"patient_id"`
	Accession  string   `json:"accession,omitempty" form:"accession"`
}

// NewStudyFilter creates a new study filter with default values
func NewStudyFilter() *StudyFilter {
	return &StudyFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *StudyFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	return f.QueryFilter.Validate()
}
