package page

import (
	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// Page represents a public storefront page. Rows live in the tenant's
// isolated database.
type Page struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Published bool   `json:"published"`
	types.BaseModel
}

// FromEnt converts ent.Page to domain Page
func FromEnt(p *ent.Page) *Page {
	if p == nil {
		return nil
	}

	return &Page{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		BaseModel: types.BaseModel{
			TenantID:  p.TenantID,
			Status:    types.Status(p.Status),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.Page to []*Page
func FromEntList(pages []*ent.Page) []*Page {
	result := make([]*Page, len(pages))
	for i, p := range pages {
		result[i] = FromEnt(p)
	}
	return result
}

// Validate validates the page
func (p *Page) Validate() error {
	if p.Slug == "" {
		return ierr.NewError("slug is required").Mark(ierr.ErrValidation)
	}
	if p.Title == "" {
		return ierr.NewError("title is required").Mark(ierr.ErrValidation)
	}
	return nil
}
