package routes

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	pkgmiddleware "NYA_Service_Dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpAuthRoutes(r *gin.Engine, handler handler.AuthHandler, m middleware.AuthMiddleware, limiter pkgmiddleware.RateLimiter) {
	authRoutes := r.Group("/api")
	authRoutes.POST("/login", limiter.LimitByIP(), handler.Login())
	authRoutes.POST("/logout", m.ValidateAndExtractJwt(), handler.Logout())
	authRoutes.POST("/auth/refresh", handler.Refresh())
}
