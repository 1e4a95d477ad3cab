package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies follow the fixed {"detail": ...} shape the API contract pins
// down; validation failures additionally carry a field->message map.

type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Detail writes an error body with the given status.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

// ValidationDetail writes a 400 with per-field messages.
func ValidationDetail(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Detail: "invalid payload", Errors: errs})
}

// AbortDetail aborts the request chain with an error body; used by middleware.
func AbortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}

// AbortUnauthorized aborts with 401 and the bearer challenge header.
func AbortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	AbortDetail(c, http.StatusUnauthorized, detail)
}
