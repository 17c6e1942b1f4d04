package supabase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"art-auction-backend/internal/models"
)

// Provider error classes recognised in GoTrue responses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrEmailInvalid       = errors.New("email address invalid")
	ErrSignupDisabled     = errors.New("signup disabled")
)

// AuthClient adapts GoTrue to the shapes the API returns.
type AuthClient struct {
	auth gotrue.Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{auth: client.Supabase.Auth}
}

func NewAuthClientFromGoTrue(auth gotrue.Client) *AuthClient {
	return &AuthClient{auth: auth}
}

// SignUp returns a nil user when the provider accepted the request but created
// no account, which GoTrue does for already-registered emails.
func (a *AuthClient) SignUp(email, password string, metadata map[string]interface{}) (*models.AuthUser, error) {
	resp, err := a.auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, classifyAuthError(err)
	}
	if resp == nil || resp.User.ID == uuid.Nil {
		return nil, nil
	}
	user := toAuthUser(resp.User)
	return &user, nil
}

func (a *AuthClient) SignIn(email, password string) (*models.AuthSession, error) {
	resp, err := a.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, classifyAuthError(err)
	}
	session := toAuthSession(resp.Session)
	return &session, nil
}

func (a *AuthClient) RequestPasswordReset(email string) error {
	if err := a.auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return classifyAuthError(err)
	}
	return nil
}

// UpdatePassword sets a new password for the user owning accessToken. Recovery
// links can hand out an access token that has already expired; the refresh token
// is then exchanged for a fresh one.
func (a *AuthClient) UpdatePassword(accessToken, refreshToken, password string) error {
	req := types.UpdateUserRequest{Password: &password}

	_, err := a.auth.WithToken(accessToken).UpdateUser(req)
	if err == nil {
		return nil
	}

	refreshed, refreshErr := a.auth.RefreshToken(refreshToken)
	if refreshErr != nil {
		return fmt.Errorf("failed to restore session: %w", classifyAuthError(err))
	}
	if _, err := a.auth.WithToken(refreshed.AccessToken).UpdateUser(req); err != nil {
		return classifyAuthError(err)
	}
	return nil
}

func toAuthUser(u types.User) models.AuthUser {
	return models.AuthUser{
		ID:           u.ID.String(),
		Email:        u.Email,
		UserMetadata: u.UserMetadata,
	}
}

func toAuthSession(s types.Session) models.AuthSession {
	return models.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    s.ExpiresAt,
		User:         toAuthUser(s.User),
	}
}

// classifyAuthError wraps err with a sentinel when the GoTrue error code is one
// the API reports with its own wording.
func classifyAuthError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "invalid_credentials"), strings.Contains(msg, "Invalid login credentials"):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case strings.Contains(msg, "email_not_confirmed"), strings.Contains(msg, "Email not confirmed"):
		return fmt.Errorf("%w: %v", ErrEmailNotConfirmed, err)
	case strings.Contains(msg, "email_address_invalid"):
		return fmt.Errorf("%w: %v", ErrEmailInvalid, err)
	case strings.Contains(msg, "signup_disabled"):
		return fmt.Errorf("%w: %v", ErrSignupDisabled, err)
	}
	return err
}
