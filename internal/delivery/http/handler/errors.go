package handler

import (
	"errors"
	"net/http"

	"swifttrack-dashboard/internal/apiclient"
	appErrors "swifttrack-dashboard/pkg/errors"
	"swifttrack-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps a failure to the HTTP status the dashboard answers with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrUnknownView):
		return http.StatusNotFound
	case errors.Is(err, appErrors.ErrUnknownTab), errors.Is(err, appErrors.ErrInvalidInput):
		return http.StatusBadRequest
	}

	if appErrors.CodeOf(err) == appErrors.CodeValidation {
		return http.StatusBadRequest
	}

	var httpErr *apiclient.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	var transportErr *apiclient.TransportError
	var decodeErr *apiclient.DecodeError
	if errors.As(err, &transportErr) || errors.As(err, &decodeErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.ErrorResponse(c, status, "Internal server error")
		return
	}
	utils.ErrorResponse(c, status, err.Error())
}
