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

type StudyHandler struct {
	studyService service.StudyService
	log          *logger.Logger
}

func NewStudyHandler(studyService service.StudyService, log *logger.Logger) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
		log:          log,
	}
}

func (h *StudyHandler) RegisterStudy(c *gin.Context) {
	var req dto.RegisterStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.studyService.RegisterStudy(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *StudyHandler) GetStudy(c *gin.Context) {
	resp, err := h.studyService.GetStudy(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStudyByUID looks a study up by its DICOM study instance UID.
func (h *StudyHandler) GetStudyByUID(c *gin.Context) {
	resp, err := h.studyService.GetStudyByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StudyHandler) ListStudies(c *gin.Context) {
	var filter types.StudyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.studyService.ListStudies(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StudyHandler) DeleteStudy(c *gin.Context) {
	if err := h.studyService.DeleteStudy(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
