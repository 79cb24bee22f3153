package routes

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	"NYA_Service_Dashboard/internal/dashboard-server/model"

	"github.com/gin-gonic/gin"
)

func SetUpServiceRoutes(r *gin.Engine, handler handler.ServiceHandler, m middleware.AuthMiddleware) {
	serviceRoutes := r.Group("/api/services")
	serviceRoutes.GET("", handler.GetServices())
	serviceRoutes.GET("/export", m.ValidateAndExtractJwt(), m.RequireRole(model.RoleAdmin), handler.ExportServicesToExcelFile())
	serviceRoutes.POST("", m.ValidateAndExtractJwt(), m.RequireRole(model.RoleAdmin), handler.CreateService())
	serviceRoutes.PUT("/:id", m.ValidateAndExtractJwt(), m.RequireRole(model.RoleAdmin), handler.UpdateService())
	serviceRoutes.DELETE("/:id", m.ValidateAndExtractJwt(), m.RequireRole(model.RoleAdmin), handler.DeleteService())
}
