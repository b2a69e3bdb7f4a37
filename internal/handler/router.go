package handler

import (
	"log/slog"

	"business_manager/internal/middleware"
	"business_manager/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterDeps collects what NewRouter wires together
type RouterDeps struct {
	Auth        service.AuthService
	Customers   service.CustomerService
	Payments    service.PaymentService
	DB          Pinger
	Logger      *slog.Logger
	Cookies     CookieOptions
	CORSOrigins []string
	Gate        middleware.GateConfig
}

// NewRouter builds the gin engine: logging, recovery, CORS and language
// resolution for every request, the RouteGate for browser paths and
// RequireSession on every protected API route.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(deps.Logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.CORSOrigins
	}
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization", "Accept-Language")
	corsCfg.AddExposeHeaders(middleware.RequestIDHeader)
	router.Use(cors.New(corsCfg))

	router.Use(middleware.Language(), middleware.RouteGate(deps.Gate))

	sessionMW := middleware.RequireSession(deps.Auth)
	adminMW := middleware.AdminMiddleware()

	authHandler := NewAuthHandler(deps.Auth, deps.Cookies)
	customerHandler := NewCustomerHandler(deps.Customers)
	paymentHandler := NewPaymentHandler(deps.Payments)
	languageHandler := NewLanguageHandler(deps.Cookies)
	pageHandler := NewPageHandler()
	healthHandler := NewHealthHandler(deps.DB)

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, sessionMW)
	authHandler.RegisterAdminRoutes(apiGroup, sessionMW, adminMW)
	customerHandler.RegisterCustomerRoutes(apiGroup, sessionMW)
	paymentHandler.RegisterPaymentRoutes(apiGroup, sessionMW)
	languageHandler.RegisterLanguageRoutes(apiGroup)

	pageHandler.RegisterPageRoutes(router, sessionMW)
	router.GET("/health", healthHandler.Check)

	return router
}
