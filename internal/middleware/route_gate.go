package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GateConfig lists the browser path prefixes the RouteGate classifies
type GateConfig struct {
	Protected   []string // need a session cookie
	Public      []string // only for visitors without one
	EntryPath   string   // where visitors without a cookie are sent
	LandingPath string   // where visitors with a cookie are sent
}

// DefaultGateConfig guards /dashboard and keeps signed-in users off the login and signup pages
func DefaultGateConfig() GateConfig {
	return GateConfig{
		Protected:   []string{"/dashboard"},
		Public:      []string{"/login", "/signup"},
		EntryPath:   "/login",
		LandingPath: "/dashboard",
	}
}

// RouteGate redirects browser navigations based only on whether the
// accessToken cookie is present. It does not validate the token: handlers
// behind it still run RequireSession. /api paths are never redirected.
func RouteGate(cfg GateConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if matchPrefix(path, "/api") {
			c.Next()
			return
		}

		token, err := c.Cookie(AccessTokenCookie)
		hasCookie := err == nil && token != ""

		switch {
		case !hasCookie && matchAny(path, cfg.Protected):
			c.Redirect(http.StatusFound, cfg.EntryPath)
			c.Abort()
			return
		case hasCookie && matchAny(path, cfg.Public):
			c.Redirect(http.StatusFound, cfg.LandingPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func matchAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if matchPrefix(path, p) {
			return true
		}
	}
	return false
}

// matchPrefix matches whole path segments: /dashboard covers /dashboard/x but not /dashboards
func matchPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
