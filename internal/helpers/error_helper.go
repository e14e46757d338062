package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/apperror"
)

type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    apperror.Kind          `json:"code,omitempty"`
	Message string                 `json:"message"`
	Fields  apperror.FieldErrors   `json:"fields,omitempty"`
	Tickets []apperror.TicketError `json:"tickets,omitempty"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithAppError writes err using the status of its kind. Errors outside the
// taxonomy are logged and answered with a generic 500.
func RespondWithAppError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	resp := ErrorResponse{
		Error: HTTPStatusText(status),
		Code:  kind,
	}

	var bookingErr *apperror.BookingError
	var appErr *apperror.Error
	switch {
	case errors.As(err, &bookingErr):
		resp.Message = "Booking rejected."
		resp.Tickets = bookingErr.Tickets
	case errors.As(err, &appErr):
		resp.Message = appErr.Message
		resp.Fields = appErr.Fields
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		resp.Message = "Internal server error."
	}

	c.AbortWithStatusJSON(status, resp)
}
