package handler

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/request"
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/response"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IntegrationHandler interface {
	GetIntegrations() gin.HandlerFunc
	SaveIntegrations() gin.HandlerFunc
}

type integrationHandler struct {
	integrationService service.IntegrationService
	logger             Logger
}

func (i *integrationHandler) GetIntegrations() gin.HandlerFunc {
	return func(c *gin.Context) {
		integrations, err := i.integrationService.GetIntegrations(c)
		if err != nil {
			err = fmt.Errorf("IntegrationHandler.GetIntegrations: %w", err)
			i.logger.LoggingError(c, err, "failed to get integrations", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, integrations)
	}
}

func (i *integrationHandler) SaveIntegrations() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.IntegrationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: fmt.Sprintf("The %s field is not a valid url", validatorError[0].Field()),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		saved, err := i.integrationService.SaveIntegrations(c, model.Integrations{
			UptimeKuma: model.IntegrationEndpoint{URL: req.UptimeKuma.URL, APIKey: req.UptimeKuma.APIKey},
			Authentik:  model.IntegrationEndpoint{URL: req.Authentik.URL, APIKey: req.Authentik.APIKey},
		})
		if err != nil {
			err = fmt.Errorf("IntegrationHandler.SaveIntegrations: %w", err)
			i.logger.LoggingError(c, err, "failed to save integrations", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func NewIntegrationHandler(integrationService service.IntegrationService, logger Logger) IntegrationHandler {
	return &integrationHandler{
		integrationService: integrationService,
		logger:             logger,
	}
}
