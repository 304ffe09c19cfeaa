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

type TenantHandler struct {
	tenantService   service.TenantService
	contractService service.ContractService
	log             *logger.Logger
}

func NewTenantHandler(
	tenantService service.TenantService,
	contractService service.ContractService,
	log *logger.Logger,
) *TenantHandler {
	return &TenantHandler{
		tenantService:   tenantService,
		contractService: contractService,
		log:             log,
	}
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.tenantService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	resp, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.tenantService.ListTenants(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TenantHandler) DeactivateTenant(c *gin.Context) {
	resp, err := h.tenantService.DeactivateTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TenantHandler) ReactivateTenant(c *gin.Context) {
	resp, err := h.tenantService.ReactivateTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.tenantService.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *TenantHandler) GeocodeServiceAddress(c *gin.Context) {
	resp, err := h.tenantService.GeocodeServiceAddress(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RenderContract renders the service agreement for a tenant. An optional
// body may carry a custom template.
func (h *TenantHandler) RenderContract(c *gin.Context) {
	req := dto.RenderContractRequest{TenantID: c.Param("id")}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request payload").
				Mark(ierr.ErrValidation))
			return
		}
		req.TenantID = c.Param("id")
	}

	resp, err := h.contractService.RenderContract(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
