package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/hirestack/jobboard-api/internal/application"
	"github.com/hirestack/jobboard-api/internal/interface/middleware"
	"github.com/hirestack/jobboard-api/pkg/response"
	"github.com/hirestack/jobboard-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *userapp.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,pwd"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), userapp.SignupInput(req))
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error(c, http.StatusInternalServerError, "error creating user", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   res.Token,
		"user":    res.User.Public(),
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "error logging in", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User.Public(),
	})
}

// GetProfile GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile fetch failed")
		response.Error(c, http.StatusInternalServerError, "error fetching profile", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}

// UpdateProfile PATCH /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.NewPassword != "" && req.CurrentPassword == "" {
		response.Error(c, http.StatusBadRequest, "currentPassword is required to change password", nil)
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, userapp.UpdateProfileInput{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "current password is incorrect", nil)
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		default:
			h.Logger.WithError(err).Error("profile update failed")
			response.Error(c, http.StatusInternalServerError, "error updating profile", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": u.Public()})
}

// UploadAvatar POST /api/auth/profile/avatar (multipart field: avatar)
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "cannot read avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("avatar upload failed")
		response.Error(c, http.StatusInternalServerError, "error uploading avatar", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

// ResetInit POST /api/auth/reset/init
// Always answers 200 so the endpoint cannot be used to probe for accounts.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.InitPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).Error("reset init failed")
		response.Error(c, http.StatusInternalServerError, "error initiating reset", nil)
		return
	}
	response.Message(c, http.StatusOK, "if the email exists, a reset link has been sent")
}

// ResetConfirm POST /api/auth/reset/confirm
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, userapp.ErrResetTokenInvalid) {
			response.Error(c, http.StatusBadRequest, "invalid or expired token", nil)
			return
		}
		h.Logger.WithError(err).Error("reset confirm failed")
		response.Error(c, http.StatusInternalServerError, "error resetting password", nil)
		return
	}
	response.Message(c, http.StatusOK, "password updated")
}
