package v1

import (
	"net/http"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageService service.PageService
	log         *logger.Logger
}

func NewPageHandler(pageService service.PageService, log *logger.Logger) *PageHandler {
	return &PageHandler{
		pageService: pageService,
		log:         log,
	}
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	var req dto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.pageService.CreatePage(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	resp, err := h.pageService.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPageBySlug serves published storefront pages by slug.
func (h *PageHandler) GetPageBySlug(c *gin.Context) {
	resp, err := h.pageService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PageHandler) ListPages(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.pageService.ListPages(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	var req dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.pageService.UpdatePage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	if err := h.pageService.DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
