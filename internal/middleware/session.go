package middleware

import (
	"net/http"

	"swifttrack-dashboard/internal/session"
	appErrors "swifttrack-dashboard/pkg/errors"
	"swifttrack-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests while no one is logged in.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Current() == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrNoSession.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
