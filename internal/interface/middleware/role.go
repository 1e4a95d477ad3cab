package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limitedhq/limited-api/pkg/response"
)

// RequireFundManager gates create operations to fund managers and admins.
// The resource name appears in the rejection message, e.g. "funds".
func RequireFundManager(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.AbortUnauthorized(c, credentialsDetail)
			return
		}
		if !u.UserType.CanManageFunds() {
			response.AbortDetail(c, http.StatusForbidden, "only fund managers can create "+resource)
			return
		}
		c.Next()
	}
}
