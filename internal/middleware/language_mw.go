package middleware

import (
	"business_manager/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Language resolves the response language once per request and stores it in
// the request context for handlers and the other middleware.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(i18n.CookieName)
		lang := i18n.Resolve(cookie, c.GetHeader("Accept-Language"))
		c.Request = c.Request.WithContext(i18n.WithLang(c.Request.Context(), lang))
		c.Header("Content-Language", lang)
		c.Next()
	}
}
