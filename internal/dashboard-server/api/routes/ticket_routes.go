package routes

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"

	"github.com/gin-gonic/gin"
)

// Ownership of a ticket is checked by the ticket service, so every authenticated user may reach these routes.
func SetUpTicketRoutes(r *gin.Engine, handler handler.TicketHandler, m middleware.AuthMiddleware) {
	ticketRoutes := r.Group("/api/tickets", m.ValidateAndExtractJwt())
	ticketRoutes.GET("", handler.GetTickets())
	ticketRoutes.POST("", handler.CreateTicket())
	ticketRoutes.PUT("/:id", handler.UpdateTicket())
	ticketRoutes.POST("/:id/messages", handler.AddMessage())
}
