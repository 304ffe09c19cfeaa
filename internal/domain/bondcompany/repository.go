package bondcompany

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/types"
)

// Repository defines the interface for bond company lookups in the shared
// catalog database.
type Repository interface {
	Create(ctx context.Context, company *BondCompany) error
	Get(ctx context.Context, id string) (*BondCompany, error)
	GetByCode(ctx context.Context, code string) (*BondCompany, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*BondCompany, error)
}
