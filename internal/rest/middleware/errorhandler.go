package middleware

import (
	"net/http"

	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the message plus any structured details safe to show
// to API callers.
type ErrorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorHandlerMiddleware converts errors attached via c.Error into JSON
// responses. Handlers never write error bodies themselves.
func ErrorHandlerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		}

		c.JSON(status, ErrorResponse{
			Success: false,
			Error: ErrorDetail{
				Message: ierr.Hint(err),
				Details: ierr.ReportableDetails(err),
			},
		})
	}
}

func statusFromError(err error) int {
	switch {
	case ierr.IsValidation(err):
		return http.StatusBadRequest
	case ierr.IsNotFound(err):
		return http.StatusNotFound
	case ierr.IsAlreadyExists(err):
		return http.StatusConflict
	case ierr.IsPermissionDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
