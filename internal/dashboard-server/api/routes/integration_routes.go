package routes

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	"NYA_Service_Dashboard/internal/dashboard-server/model"

	"github.com/gin-gonic/gin"
)

func SetUpIntegrationRoutes(r *gin.Engine, handler handler.IntegrationHandler, m middleware.AuthMiddleware) {
	integrationRoutes := r.Group("/api/integrations", m.ValidateAndExtractJwt(), m.RequireRole(model.RoleAdmin))
	integrationRoutes.GET("", handler.GetIntegrations())
	integrationRoutes.PUT("", handler.SaveIntegrations())
}
