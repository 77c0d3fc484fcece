package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/middleware"
	"github.com/gympoint/api/internal/security"
	"github.com/gympoint/api/internal/service"
	"github.com/gympoint/api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	signer      security.TokenSigner
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, signer security.TokenSigner) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		signer:      signer,
	}
}

// Register handles user registration
// POST /api/v1/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyInUse) {
			response.Conflict(c, fmt.Sprintf("Email '%s' is already in use", req.Email))
			return
		}
		writeError(c, err)
		return
	}

	response.Created(c, dto.ToUserResponse(user))
}

// Login opens a session
// POST /api/v1/sessions
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	user, refreshToken, err := h.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	accessToken, err := h.signer.Sign(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresIn:    int64(h.signer.TTL().Seconds()),
		User:         dto.ToUserResponse(user),
	})
}

// Refresh rotates a refresh token
// PATCH /api/v1/token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, refreshToken, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	accessToken, err := h.signer.Sign(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresIn:    int64(h.signer.TTL().Seconds()),
	})
}

// Logout ends every session of the authenticated user
// POST /api/v1/sessions/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID.(string)); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// Me returns the authenticated user's profile
// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), userID.(string))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}
