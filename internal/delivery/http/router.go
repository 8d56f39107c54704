package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "paperfolio/internal/middleware"
	"paperfolio/internal/utils"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler      *AuthHandler
	PortfolioHandler *PortfolioHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(requestIDContext)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "paperfolio-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
	}

	// Account routes (protected with AuthMiddleware)
	account := api.Group("", custommiddleware.AuthMiddleware)
	{
		account.GET("/me", config.PortfolioHandler.GetMe)
		account.GET("/quote", config.PortfolioHandler.GetQuote)
		account.POST("/trades/validate", config.PortfolioHandler.ValidateTrade)
		account.POST("/trades/commit", config.PortfolioHandler.CommitTrade)
		account.GET("/portfolio", config.PortfolioHandler.GetPortfolio)
		account.GET("/history", config.PortfolioHandler.GetHistory)
	}
}

// requestIDContext copies the echo request id into the request context so
// the service layer can correlate its log lines.
func requestIDContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rqID := c.Response().Header().Get(echo.HeaderXRequestID)
		ctx := utils.CtxWithRequestID(c.Request().Context(), rqID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
