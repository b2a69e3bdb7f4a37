package handler

import (
	"net/http"

	"business_manager/internal/i18n"
	"business_manager/internal/middleware"
	"business_manager/internal/response"

	"github.com/gin-gonic/gin"
)

// PageHandler serves small JSON descriptors for the browser paths the RouteGate guards
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) page(name, titleKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := lang(c)
		data := gin.H{"page": name, "title": i18n.T(l, titleKey), "lang": l}
		if identity, ok := middleware.IdentityFrom(c); ok {
			data["user"] = identity
		}
		response.OK(c, http.StatusOK, i18n.T(l, titleKey), data)
	}
}

// RegisterPageRoutes registers /login, /signup and the session-guarded /dashboard
func (h *PageHandler) RegisterPageRoutes(r gin.IRoutes, sessionMW gin.HandlerFunc) {
	r.GET("/login", h.page("login", i18n.MsgPageLogin))
	r.GET("/signup", h.page("signup", i18n.MsgPageSignup))
	r.GET("/dashboard", sessionMW, h.page("dashboard", i18n.MsgPageDashboard))
}
