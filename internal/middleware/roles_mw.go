package middleware

import (
	"net/http"
	"slices"

	"business_manager/internal/i18n"
	"business_manager/internal/model"
	"business_manager/internal/response"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through only for the given roles.
// It must run after RequireSession.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.FromContext(c.Request.Context())

		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			response.Abort(c, http.StatusUnauthorized, i18n.T(lang, i18n.MsgUnauthorized))
			return
		}

		userRole, ok := roleVal.(string)
		if !ok || !slices.Contains(allowedRoles, userRole) {
			response.Abort(c, http.StatusForbidden, i18n.T(lang, i18n.MsgForbidden))
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
