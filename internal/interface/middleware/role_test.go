package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

func newRoleRouter(resource string, u *entity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setUser := func(c *gin.Context) {
		if u != nil {
			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxUserKey, u)
		}
		c.Next()
	}
	r.POST("/probe", setUser, RequireFundManager(resource), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireFundManager(t *testing.T) {
	tests := []struct {
		name       string
		user       *entity.User
		resource   string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "limited partner is rejected",
			user:       &entity.User{ID: "u1", UserType: entity.UserTypeLimitedPartner},
			resource:   "funds",
			wantStatus: http.StatusForbidden,
			wantDetail: "only fund managers can create funds",
		},
		{
			name:       "rejection names the resource",
			user:       &entity.User{ID: "u1", UserType: entity.UserTypeLimitedPartner},
			resource:   "deals",
			wantStatus: http.StatusForbidden,
			wantDetail: "only fund managers can create deals",
		},
		{
			name:       "fund manager passes",
			user:       &entity.User{ID: "u2", UserType: entity.UserTypeFundManager},
			resource:   "funds",
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin passes",
			user:       &entity.User{ID: "u3", UserType: entity.UserTypeAdmin},
			resource:   "funds",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no authenticated user",
			user:       nil,
			resource:   "funds",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "could not validate credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRoleRouter(tt.resource, tt.user)
			req := httptest.NewRequest(http.MethodPost, "/probe", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantDetail != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantDetail, body["detail"])
			}
		})
	}
}
