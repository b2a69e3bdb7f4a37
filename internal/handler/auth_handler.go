package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"business_manager/internal/i18n"
	"business_manager/internal/logging"
	"business_manager/internal/middleware"
	"business_manager/internal/model"
	"business_manager/internal/response"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the attributes of the session cookies
type CookieOptions struct {
	MaxAge time.Duration // matches the stored session lifetime
	Domain string
	Secure bool
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	cookies CookieOptions
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{service: s, cookies: cookies}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgUserCreated), user.Summary())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		logging.FromContext(c.Request.Context()).Warn("login failed", "email", req.Email, "error", err)
		writeError(c, err)
		return
	}

	summary, err := json.Marshal(result.User)
	if err != nil {
		writeError(c, err)
		return
	}

	maxAge := int(h.cookies.MaxAge.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, result.AccessToken, maxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(middleware.UserCookie, string(summary), maxAge, "/", h.cookies.Domain, h.cookies.Secure, false)

	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgUserLoggedIn), result)
}

// Logout clears both cookies and ends the stored session if the token still
// names one. It always answers 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.Logout(ctx, middleware.SessionToken(c)); err != nil {
		logging.FromContext(ctx).Error("failed to end session on logout", "error", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(middleware.UserCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, false)

	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgUserLoggedOut), []any{})
}

// Me returns the identity resolved by RequireSession
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, i18n.T(lang(c), i18n.MsgUnauthorized))
		return
	}
	response.OK(c, http.StatusOK, i18n.T(lang(c), i18n.MsgAuthenticated), identity)
}

// ListUsers is the admin view of every account
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OKWithExtra(c, http.StatusOK, i18n.T(lang(c), i18n.MsgUsersFound), users, gin.H{"total": len(users)})
}

// RegisterAuthRoutes registers auth routes; sessionMW guards /me
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/logout", h.Logout)
		authGroup.GET("/me", sessionMW, h.Me)
	}
}

// RegisterAdminRoutes registers the admin-only user listing
func (h *AuthHandler) RegisterAdminRoutes(rg *gin.RouterGroup, sessionMW, adminMW gin.HandlerFunc) {
	adminGroup := rg.Group("/admin", sessionMW, adminMW)
	{
		adminGroup.GET("/users", h.ListUsers)
	}
}
