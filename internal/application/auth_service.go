package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// AuthService owns registration, login and self-service profile updates.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// RegisterInput carries the registration payload. UserType and Status fall
// back to Limited Partner / Pending Verification when not supplied.
type RegisterInput struct {
	Email        string
	FirstName    string
	LastName     string
	Password     string
	CompanyName  string
	UserType     entity.UserType
	IsAccredited bool
	Status       entity.UserStatus
}

// Register creates an account. Email is normalized to lowercase and must be
// unique; the pre-check races with concurrent inserts by design, the store
// does not enforce uniqueness.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, err := s.Users.FindByEmail(ctx, email); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = entity.UserTypeLimitedPartner
	}
	status := in.Status
	if status == "" {
		status = entity.UserStatusPending
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:             uuid.NewString(),
		Email:          email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		CompanyName:    in.CompanyName,
		UserType:       userType,
		IsAccredited:   in.IsAccredited,
		Status:         status,
		HashedPassword: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "user_type": u.UserType}).Info("user registered")
	return u, nil
}

// Login resolves the user by email and verifies the password. Both unknown
// email and wrong password yield ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.HashedPassword, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.UserType)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// UpdateProfileInput uses pointers so only supplied fields are written.
type UpdateProfileInput struct {
	Email        *string
	FirstName    *string
	LastName     *string
	CompanyName  *string
	IsAccredited *bool
	Status       *entity.UserStatus
}

// UpdateProfile applies a partial update to the caller's own record and
// returns the refreshed user. A new email must not belong to another
// account. Status is treated like any other field; a caller may set their
// own status, including Verified.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	fields := map[string]any{}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if existing, err := s.Users.FindByEmail(ctx, email); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		} else if existing != nil && existing.ID != userID {
			return nil, ErrEmailTaken
		}
		fields["email"] = email
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.CompanyName != nil {
		fields["company_name"] = *in.CompanyName
	}
	if in.IsAccredited != nil {
		fields["is_accredited"] = *in.IsAccredited
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	if len(fields) > 0 {
		if err := s.Users.UpdateFields(ctx, userID, fields); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
