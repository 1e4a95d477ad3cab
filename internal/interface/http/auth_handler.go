package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/response"
	"github.com/limitedhq/limited-api/pkg/validation"
)

// AuthService is the account usecase consumed by the handler.
type AuthService interface {
	Register(ctx context.Context, in application.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error)
	UpdateProfile(ctx context.Context, userID string, in application.UpdateProfileInput) (*entity.User, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email        string            `json:"email" binding:"required,email"`
	FirstName    string            `json:"first_name" binding:"required"`
	LastName     string            `json:"last_name" binding:"required"`
	Password     string            `json:"password" binding:"required,pwd"`
	CompanyName  string            `json:"company_name"`
	UserType     entity.UserType   `json:"user_type" binding:"omitempty,user_type"`
	IsAccredited bool              `json:"is_accredited"`
	Status       entity.UserStatus `json:"status" binding:"omitempty,user_status"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Password:     req.Password,
		CompanyName:  req.CompanyName,
		UserType:     req.UserType,
		IsAccredited: req.IsAccredited,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Detail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Detail(c, http.StatusInternalServerError, "registration failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// tokenRequest follows the OAuth2 password flow: form-encoded
// username/password, where username is the account email.
type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *entity.User `json:"user"`
}

// Token POST /api/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	u, token, _, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Detail(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Detail(c, http.StatusInternalServerError, "login failed")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer", User: u})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.AbortUnauthorized(c, "could not validate credentials")
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateMeRequest struct {
	Email        *string            `json:"email" binding:"omitempty,email"`
	FirstName    *string            `json:"first_name"`
	LastName     *string            `json:"last_name"`
	CompanyName  *string            `json:"company_name"`
	IsAccredited *bool              `json:"is_accredited"`
	Status       *entity.UserStatus `json:"status" binding:"omitempty,user_status"`
}

// UpdateMe PUT /api/auth/me — partial self-update; only supplied fields are
// written.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.AbortUnauthorized(c, "could not validate credentials")
		return
	}
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateProfile(c.Request.Context(), u.ID, application.UpdateProfileInput{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CompanyName:  req.CompanyName,
		IsAccredited: req.IsAccredited,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Detail(c, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, application.ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.WithError(err).Error("profile update failed")
		response.Detail(c, http.StatusInternalServerError, "profile update failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}
