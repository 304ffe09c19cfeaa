package types

import (
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/samber/lo"
)

const (
	FilterDefaultLimit  = 50
	FilterMaxLimit      = 1000
	FilterDefaultOffset = 0
)

// QueryFilter contains pagination parameters shared by all list operations.
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit"`
	Offset *int    `json:"offset,omitempty" form:"offset"`
	Status *Status `json:"status,omitempty" form:"status"`
}

// NewDefaultQueryFilter creates a query filter with default pagination
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FilterDefaultLimit),
		Offset: lo.ToPtr(FilterDefaultOffset),
		Status: lo.ToPtr(StatusPublished),
	}
}

// NewNoLimitQueryFilter creates a query filter without pagination, used by
// batch jobs that must visit every matching row.
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Offset: lo.ToPtr(FilterDefaultOffset),
		Status: lo.ToPtr(StatusPublished),
	}
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return FilterDefaultLimit
	}
	return *f.Limit
}

func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return FilterDefaultOffset
	}
	return *f.Offset
}

func (f *QueryFilter) GetStatus() Status {
	if f == nil || f.Status == nil {
		return StatusPublished
	}
	return *f.Status
}

func (f *QueryFilter) IsUnlimited() bool {
	return f != nil && f.Limit == nil
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FilterMaxLimit) {
		return ierr.NewError("limit must be between 1 and 1000").
			WithHint("Limit must be between 1 and 1000").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must be non-negative").
			WithHint("Offset must be non-negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
