package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// PageService manages storefront pages inside a tenant's database.
type PageService interface {
	CreatePage(ctx context.Context, req dto.CreatePageRequest) (*dto.PageResponse, error)
	GetPage(ctx context.Context, id string) (*dto.PageResponse, error)
	GetPageBySlug(ctx context.Context, slug string) (*dto.PageResponse, error)
	ListPages(ctx context.Context, filter *types.QueryFilter) (*dto.ListPagesResponse, error)
	UpdatePage(ctx context.Context, id string, req dto.UpdatePageRequest) (*dto.PageResponse, error)
	DeletePage(ctx context.Context, id string) error
}

type pageService struct {
	ServiceParams
}

func NewPageService(params ServiceParams) PageService {
	return &pageService{
		ServiceParams: params,
	}
}

func (s *pageService) CreatePage(ctx context.Context, req dto.CreatePageRequest) (*dto.PageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.PageRepo.GetBySlug(ctx, req.Slug)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("page with this slug already exists").
			WithHint("Choose a different slug").
			WithReportableDetails(map[string]interface{}{
				"slug": req.Slug,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	page := req.ToPage(ctx)
	if err := page.Validate(); err != nil {
		return nil, err
	}

	if err := s.PageRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	return &dto.PageResponse{Page: page}, nil
}

func (s *pageService) GetPage(ctx context.Context, id string) (*dto.PageResponse, error) {
	if id == "" {
		return nil, ierr.NewError("page ID is required").
			WithHint("Please provide a valid page ID").
			Mark(ierr.ErrValidation)
	}

	page, err := s.PageRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.PageResponse{Page: page}, nil
}

func (s *pageService) GetPageBySlug(ctx context.Context, slug string) (*dto.PageResponse, error) {
	if slug == "" {
		return nil, ierr.NewError("slug is required").
			WithHint("Please provide a valid page slug").
			Mark(ierr.ErrValidation)
	}

	page, err := s.PageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &dto.PageResponse{Page: page}, nil
}

func (s *pageService) ListPages(ctx context.Context, filter *types.QueryFilter) (*dto.ListPagesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	pages, err := s.PageRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListPagesResponse{
		Items: make([]*dto.PageResponse, len(pages)),
		Total: len(pages),
	}
	for i, page := range pages {
		response.Items[i] = &dto.PageResponse{Page: page}
	}
	return response, nil
}

func (s *pageService) UpdatePage(ctx context.Context, id string, req dto.UpdatePageRequest) (*dto.PageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.PageRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Body != nil {
		page.Body = *req.Body
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	if err := s.PageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	return &dto.PageResponse{Page: page}, nil
}

func (s *pageService) DeletePage(ctx context.Context, id string) error {
	if _, err := s.PageRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.PageRepo.Delete(ctx, id)
}
