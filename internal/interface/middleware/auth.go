package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/pkg/helpers"
	"github.com/limitedhq/limited-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "currentUser"
)

const credentialsDetail = "could not validate credentials"

// UserFinder resolves the current user from storage on every protected
// request. The consumer defines the interface; repository.UserRepository
// satisfies it.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// Auth validates the Authorization bearer token, re-fetches the user it
// names, and rejects suspended accounts. On success the user is stored in
// the Gin context.
func Auth(jwt *helpers.JWTManager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortUnauthorized(c, credentialsDetail)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortUnauthorized(c, credentialsDetail)
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil || u == nil {
			response.AbortUnauthorized(c, credentialsDetail)
			return
		}
		if u.Status == entity.UserStatusSuspended {
			response.AbortDetail(c, http.StatusBadRequest, "user account is suspended")
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by Auth.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
