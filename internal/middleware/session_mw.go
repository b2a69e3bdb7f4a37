package middleware

import (
	"errors"
	"net/http"
	"strings"

	"business_manager/internal/i18n"
	"business_manager/internal/logging"
	"business_manager/internal/model"
	"business_manager/internal/response"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey     = "authUser"
	AuthRoleKey     = "authRole"
	AuthIdentityKey = "authIdentity"

	// AccessTokenCookie carries the raw session token
	AccessTokenCookie = "accessToken"
	// UserCookie carries a JSON user summary for display only; it is never trusted
	UserCookie = "user"
)

// SessionToken returns the token presented with the request: the accessToken
// cookie, or an "Authorization: Bearer" header for non-browser clients.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// RequireSession validates the presented token against the stored session on
// every request and puts the resolved identity in the gin context.
func RequireSession(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		lang := i18n.FromContext(ctx)

		identity, err := auth.AuthCheck(ctx, SessionToken(c))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				response.Abort(c, http.StatusUnauthorized, i18n.T(lang, i18n.MsgUnauthorized))
				return
			}
			logging.FromContext(ctx).Error("session check failed", "error", err)
			response.Abort(c, http.StatusInternalServerError, i18n.T(lang, i18n.MsgInternalError))
			return
		}

		c.Set(AuthUserKey, identity.ID)
		c.Set(AuthRoleKey, identity.Role)
		c.Set(AuthIdentityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity set by RequireSession
func IdentityFrom(c *gin.Context) (*model.Identity, bool) {
	v, exists := c.Get(AuthIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*model.Identity)
	return identity, ok && identity != nil
}
