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

type BondCompanyHandler struct {
	bondCompanyService service.BondCompanyService
	log                *logger.Logger
}

func NewBondCompanyHandler(bondCompanyService service.BondCompanyService, log *logger.Logger) *BondCompanyHandler {
	return &BondCompanyHandler{
		bondCompanyService: bondCompanyService,
		log:                log,
	}
}

func (h *BondCompanyHandler) CreateBondCompany(c *gin.Context) {
	var req dto.CreateBondCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.bondCompanyService.CreateBondCompany(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BondCompanyHandler) GetBondCompany(c *gin.Context) {
	resp, err := h.bondCompanyService.GetBondCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBondCompanyByCode serves the lookup used by contract forms.
func (h *BondCompanyHandler) GetBondCompanyByCode(c *gin.Context) {
	resp, err := h.bondCompanyService.GetBondCompanyByCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BondCompanyHandler) ListBondCompanies(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.bondCompanyService.ListBondCompanies(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
