package routes

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	"NYA_Service_Dashboard/internal/dashboard-server/model"

	"github.com/gin-gonic/gin"
)

func SetUpUserRoutes(r *gin.Engine, handler handler.UserHandler, m middleware.AuthMiddleware) {
	userRoutes := r.Group("/api/users", m.ValidateAndExtractJwt())
	userRoutes.GET("/me", handler.GetMe())
	userRoutes.GET("", m.RequireRole(model.RoleAdmin), handler.GetUsers())
	userRoutes.POST("", m.RequireRole(model.RoleAdmin), handler.CreateUser())
	userRoutes.PUT("/:id", m.RequireRole(model.RoleAdmin), handler.UpdateUser())
}
