package study

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/types"
)

// Repository defines the interface for DICOM study registry persistence
// against a tenant's isolated database, resolved from the request context.
type Repository interface {
	Create(ctx context.Context, study *Study) error
	Get(ctx context.Context, id string) (*Study, error)
	GetByStudyUID(ctx context.Context, studyUID string) (*Study, error)
	List(ctx context.Context, filter *types.StudyFilter) ([]*Study, error)
	Delete(ctx context.Context, id string) error
}
