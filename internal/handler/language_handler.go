package handler

import (
	"net/http"
	"strings"

	"business_manager/internal/i18n"
	"business_manager/internal/response"

	"github.com/gin-gonic/gin"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60

// LanguageHandler stores the caller's preferred language in a cookie
type LanguageHandler struct {
	cookies CookieOptions
}

func NewLanguageHandler(cookies CookieOptions) *LanguageHandler {
	return &LanguageHandler{cookies: cookies}
}

// Change sets the lang cookie and answers in the newly chosen language
func (h *LanguageHandler) Change(c *gin.Context) {
	var req struct {
		Lang string `json:"lang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	chosen := strings.ToLower(strings.TrimSpace(req.Lang))
	if !i18n.Supported(chosen) {
		response.Fail(c, http.StatusBadRequest, i18n.T(lang(c), i18n.MsgInvalidLanguage))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.CookieName, chosen, languageCookieMaxAge, "/", h.cookies.Domain, h.cookies.Secure, false)
	response.OK(c, http.StatusOK, i18n.T(chosen, i18n.MsgLanguageChanged), gin.H{"lang": chosen})
}

func (h *LanguageHandler) RegisterLanguageRoutes(rg *gin.RouterGroup) {
	rg.POST("/language", h.Change)
}
