package handlers

import (
	"net/http"

	"sahyogjeevan/internal/middleware"
	"sahyogjeevan/internal/services"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	cookieMaxAge int
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
	}
}

// RegisterRoutes wires the auth routes onto the /api group.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/user", middleware.RequireAuth(), h.GetCurrentUser)

	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOTP)
		auth.POST("/verify-otp", h.VerifyOTP)
	}
}

// Register
// @Summary  Register a new user (employer: username+password, worker: phone)
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  201 {object} models.User
// @Router   /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Registration logs the new user in immediately.
	sess, err := h.authService.EstablishSession(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, sess.Token)

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": sess.Token,
	})
}

// Login
// @Summary  Password login for employers
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  200 {object} models.User
// @Router   /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Phone != "" && req.Username == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError(
			"phone login uses the OTP flow: request a code via /api/auth/send-otp"))
		return
	}

	user, err := h.authService.LoginWithPassword(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	sess, err := h.authService.EstablishSession(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, sess.Token)

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": sess.Token,
	})
}

// SendOTP
// @Summary  Request a login OTP for a worker phone number
// @Tags     auth
// @Router   /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.RequestOTP(req.Phone); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP
// @Summary  Verify a worker OTP and establish a session
// @Tags     auth
// @Router   /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.VerifyOTP(req.Phone, req.OTP)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	sess, err := h.authService.EstablishSession(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, sess.Token)

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": sess.Token,
	})
}

// Logout destroys the current session. Calling it without one succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if token == "" {
		token = middleware.ExtractToken(c)
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser returns the session's user with fresh profile/settings.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// The cookie is HttpOnly, so handlers that establish a session also return
// the token in the body for clients that auth with a bearer header.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
