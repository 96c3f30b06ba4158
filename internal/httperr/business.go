package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// statusByCode maps scheduling business codes to HTTP statuses.
// Codes missing here fall back to 400.
var statusByCode = map[string]int{
	"provider_not_found": http.StatusNotFound,
	"slot_unavailable":   http.StatusConflict,
}

// FromBusiness writes a business error as the standard envelope. Returns
// false when err carries no business code, so the caller can treat it as a
// plain internal failure.
func FromBusiness(c *gin.Context, err error, message string) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}
	Write(c, status, be.Code, message)
	return true
}
