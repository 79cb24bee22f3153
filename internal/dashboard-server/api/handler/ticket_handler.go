package handler

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/request"
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/response"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type TicketHandler interface {
	GetTickets() gin.HandlerFunc
	CreateTicket() gin.HandlerFunc
	UpdateTicket() gin.HandlerFunc
	AddMessage() gin.HandlerFunc
}

type ticketHandler struct {
	ticketService service.TicketService
	logger        Logger
}

func (*ticketHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must not be empty", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (t *ticketHandler) bindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: t.formatValidationError(validatorError[0]),
		})
	} else {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

// ticketError writes the response for a failed ticket operation.
func (t *ticketHandler) ticketError(c *gin.Context, err error, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Ticket not found",
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.Response{
			Message: "Permission denied",
		})
	default:
		t.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (t *ticketHandler) GetTickets() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		tickets, err := t.ticketService.GetTickets(c, user)
		if err != nil {
			err = fmt.Errorf("TicketHandler.GetTickets: %w", err)
			t.logger.LoggingError(c, err, "failed to get tickets", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

func (t *ticketHandler) CreateTicket() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			t.bindingError(c, err)
			return
		}
		user, _ := middleware.CurrentUser(c)
		created, err := t.ticketService.CreateTicket(c, user, model.Ticket{
			Subject:     req.Subject,
			Priority:    req.Priority,
			AssignedTo:  req.AssignedTo,
			Description: req.Description,
		})
		if err != nil {
			err = fmt.Errorf("TicketHandler.CreateTicket: %w", err)
			t.logger.LoggingError(c, err, "failed to create ticket", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (t *ticketHandler) UpdateTicket() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			t.bindingError(c, err)
			return
		}
		user, _ := middleware.CurrentUser(c)
		updated, err := t.ticketService.UpdateTicket(c, user, id, req.ToPatch())
		if err != nil {
			t.ticketError(c, fmt.Errorf("TicketHandler.UpdateTicket: %w", err), fmt.Sprintf("failed to update ticket %s", id))
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (t *ticketHandler) AddMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.TicketMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			t.bindingError(c, err)
			return
		}
		user, _ := middleware.CurrentUser(c)
		msg, err := t.ticketService.AddMessage(c, user, id, req.Text)
		if err != nil {
			t.ticketError(c, fmt.Errorf("TicketHandler.AddMessage: %w", err), fmt.Sprintf("failed to add message to ticket %s", id))
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func NewTicketHandler(ticketService service.TicketService, logger Logger) TicketHandler {
	return &ticketHandler{
		ticketService: ticketService,
		logger:        logger,
	}
}
