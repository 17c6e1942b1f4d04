package services

import (
	"errors"
	"fmt"
	"strings"

	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/models"
	"art-auction-backend/internal/supabase"
)

//go:generate mockgen -source=auth_service.go -destination=mock_auth_service_test.go -package=services

// AuthProvider is the identity backend (Supabase GoTrue in production).
type AuthProvider interface {
	SignUp(email, password string, metadata map[string]interface{}) (*models.AuthUser, error)
	SignIn(email, password string) (*models.AuthSession, error)
	RequestPasswordReset(email string) error
	UpdatePassword(accessToken, refreshToken, password string) error
}

type ProfileStore interface {
	GetProfileByEmail(email string) (*models.Profile, error)
	UpsertProfile(p models.NewProfile) (*models.Profile, error)
}

// Error kinds returned by AuthService. Handlers map them to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrProvider     = errors.New("auth provider rejected the request")
	ErrInternal     = errors.New("internal error")
)

// AuthError carries the message shown to the user. Err is the upstream cause, if any.
type AuthError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Is(target error) bool { return target == e.Kind }

func (e *AuthError) Unwrap() error { return e.Err }

func authErr(kind error, message string, cause error) *AuthError {
	return &AuthError{Kind: kind, Message: message, Err: cause}
}

const (
	msgSignupSuccess        = "Account created successfully! Please check your email to confirm your account before logging in."
	msgSignupNoUser         = "Account creation failed. This email may already be registered or invalid."
	msgInvalidEmailDomain   = "Invalid email address. Please use a valid email domain."
	msgSignupDisabled       = "Account creation is currently disabled. Please contact support."
	msgInvalidCredentials   = "Invalid email or password. Please check your credentials."
	msgEmailNotConfirmed    = "Please confirm your email address before logging in. Check your inbox for a confirmation link."
	msgProfileCreateFailure = "Failed to create user profile. Please contact support."
	msgResetLinkSent        = "Password reset link sent"
	msgPasswordUpdated      = "Password updated successfully"
)

type AuthService struct {
	provider AuthProvider
	profiles ProfileStore
}

func NewAuthService(provider AuthProvider, profiles ProfileStore) *AuthService {
	return &AuthService{
		provider: provider,
		profiles: profiles,
	}
}

// SignUp registers the account only. The profile row is created on first login,
// after the email has been confirmed.
func (s *AuthService) SignUp(req models.SignupRequest) (*models.SignupResponse, error) {
	if msg := validateSignup(req); msg != "" {
		return nil, authErr(ErrValidation, msg, nil)
	}

	email := strings.TrimSpace(req.Email)
	user, err := s.provider.SignUp(email, req.Password, map[string]interface{}{
		"full_name": strings.TrimSpace(req.FullName),
		"role":      req.Role,
	})
	if err != nil {
		logger.Warn("signup rejected by provider", map[string]any{"email": email, "error": err.Error()})
		switch {
		case errors.Is(err, supabase.ErrEmailInvalid):
			return nil, authErr(ErrProvider, msgInvalidEmailDomain, err)
		case errors.Is(err, supabase.ErrSignupDisabled):
			return nil, authErr(ErrProvider, msgSignupDisabled, err)
		}
		return nil, authErr(ErrProvider, err.Error(), err)
	}
	if user == nil {
		return nil, authErr(ErrProvider, msgSignupNoUser, nil)
	}

	logger.Info("user signed up", map[string]any{"user_id": user.ID, "role": req.Role})

	return &models.SignupResponse{
		Message:                msgSignupSuccess,
		User:                   *user,
		NeedsEmailConfirmation: true,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, authErr(ErrValidation, "Email and password are required", nil)
	}

	session, err := s.provider.SignIn(email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, supabase.ErrInvalidCredentials):
			return nil, authErr(ErrUnauthorized, msgInvalidCredentials, err)
		case errors.Is(err, supabase.ErrEmailNotConfirmed):
			return nil, authErr(ErrUnauthorized, msgEmailNotConfirmed, err)
		}
		return nil, authErr(ErrUnauthorized, err.Error(), err)
	}

	profile, err := s.ensureProfile(email, session.User)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Session: *session,
		User:    session.User,
		Profile: *profile,
	}, nil
}

// ensureProfile returns the caller's profile, creating it from the signup
// metadata the first time a confirmed user logs in.
func (s *AuthService) ensureProfile(email string, user models.AuthUser) (*models.Profile, error) {
	profile, err := s.profiles.GetProfileByEmail(email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, supabase.ErrNotFound) {
		logger.Warn("profile lookup failed, attempting create", map[string]any{"email": email, "error": err.Error()})
	}

	newProfile := models.NewProfile{
		ID:       user.ID,
		Email:    email,
		FullName: metadataString(user.UserMetadata, "full_name"),
		Role:     metadataString(user.UserMetadata, "role"),
	}
	if newProfile.Role != models.RoleArtist {
		newProfile.Role = models.RoleBuyer
	}

	created, err := s.profiles.UpsertProfile(newProfile)
	if err != nil {
		logger.Error("failed to create profile", map[string]any{"email": email, "error": err.Error()})
		return nil, authErr(ErrInternal, msgProfileCreateFailure, err)
	}

	logger.Info("profile created on first login", map[string]any{"email": email, "role": created.Role})
	return created, nil
}

func (s *AuthService) ForgotPassword(req models.ForgotPasswordRequest) (*models.MessageResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, authErr(ErrValidation, "Email is required", nil)
	}

	if err := s.provider.RequestPasswordReset(email); err != nil {
		return nil, authErr(ErrProvider, err.Error(), err)
	}
	return &models.MessageResponse{Message: msgResetLinkSent}, nil
}

func (s *AuthService) ResetPassword(req models.ResetPasswordRequest) (*models.MessageResponse, error) {
	if req.Password == "" || req.AccessToken == "" || req.RefreshToken == "" {
		return nil, authErr(ErrValidation, "Password and tokens are required", nil)
	}
	if len(req.Password) < 6 {
		return nil, authErr(ErrValidation, "Password must be at least 6 characters", nil)
	}

	if err := s.provider.UpdatePassword(req.AccessToken, req.RefreshToken, req.Password); err != nil {
		return nil, authErr(ErrProvider, err.Error(), err)
	}
	return &models.MessageResponse{Message: msgPasswordUpdated}, nil
}

func validateSignup(req models.SignupRequest) string {
	var problems []string

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || req.Role == "" {
		return "Email, password, and role are required"
	}
	if !strings.Contains(email, "@") {
		problems = append(problems, "Email must be a valid email address")
	}
	if len(req.Password) < 6 {
		problems = append(problems, "Password must be at least 6 characters")
	}
	if len(strings.TrimSpace(req.FullName)) < 2 {
		problems = append(problems, "Full name must be at least 2 characters")
	}
	if req.Role != models.RoleBuyer && req.Role != models.RoleArtist {
		problems = append(problems, fmt.Sprintf("Role must be %q or %q", models.RoleBuyer, models.RoleArtist))
	}

	return strings.Join(problems, ". ")
}

func metadataString(meta map[string]interface{}, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
