package dto

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/page"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type CreatePageRequest struct {
	Slug      string `json:"slug" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (r *CreatePageRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePageRequest) ToPage(ctx context.Context) *page.Page {
	return &page.Page{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAGE),
		Slug:      r.Slug,
		Title:     r.Title,
		Body:      r.Body,
		Published: r.Published,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePageRequest struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (r *UpdatePageRequest) Validate() error {
	return nil
}

type PageResponse struct {
	*page.Page
}

type ListPagesResponse struct {
	Items []*PageResponse `json:"items"`
	Total int             `json:"total"`
}
