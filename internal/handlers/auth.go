package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/models"
)

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) respond(c *gin.Context, err error) {
	status := authStatus(err)
	if status == http.StatusInternalServerError {
		respondError(c, status, err.Error(), err)
		return
	}
	respondError(c, status, err.Error(), nil)
}

// Signup godoc
// @Summary     Register an account
// @Description The profile row is created on first login, after email confirmation.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.SignupRequest true "Signup"
// @Success     201 {object} models.SignupResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.auth.SignUp(req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary     Log in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary     Request a password reset email
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.ForgotPasswordRequest true "Email"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.auth.ForgotPassword(req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary     Set a new password from a recovery link
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.ResetPasswordRequest true "New password and recovery tokens"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.auth.ResetPassword(req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
