package handler

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/request"
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/response"
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ServiceHandler interface {
	GetServices() gin.HandlerFunc
	CreateService() gin.HandlerFunc
	UpdateService() gin.HandlerFunc
	DeleteService() gin.HandlerFunc
	ExportServicesToExcelFile() gin.HandlerFunc
}

type serviceHandler struct {
	serviceService service.ServiceService
	reportService  service.ReportService
	logger         Logger
}

func (*serviceHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must not be empty", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serviceHandler) bindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: s.formatValidationError(validatorError[0]),
		})
	} else {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

func (s *serviceHandler) GetServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := s.serviceService.GetServices(c)
		if err != nil {
			err = fmt.Errorf("ServiceHandler.GetServices: %w", err)
			s.logger.LoggingError(c, err, "failed to read services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Failed to read services",
			})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

func (s *serviceHandler) CreateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		created, err := s.serviceService.CreateService(c, req.ToPatch())
		if err != nil {
			err = fmt.Errorf("ServiceHandler.CreateService: %w", err)
			s.logger.LoggingError(c, err, "failed to create service", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Failed to save service",
			})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (s *serviceHandler) UpdateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		updated, err := s.serviceService.UpdateService(c, id, req.ToPatch())
		if err != nil {
			if errors.Is(err, apperrors.ErrServiceNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
				return
			}
			err = fmt.Errorf("ServiceHandler.UpdateService: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to update service %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Failed to save service",
			})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (s *serviceHandler) DeleteService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := s.serviceService.DeleteService(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrServiceNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
				return
			}
			err = fmt.Errorf("ServiceHandler.DeleteService: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete service %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Failed to delete service",
			})
			return
		}
		c.JSON(http.StatusOK, response.SuccessResponse{
			Success: true,
		})
	}
}

func (s *serviceHandler) ExportServicesToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := s.reportService.ExportServices(c)
		if err != nil {
			err = fmt.Errorf("ServiceHandler.ExportServicesToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("services-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServiceHandler.ExportServicesToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to write excel file", zap.ErrorLevel)
		}
	}
}

func NewServiceHandler(serviceService service.ServiceService, reportService service.ReportService, logger Logger) ServiceHandler {
	return &serviceHandler{
		serviceService: serviceService,
		reportService:  reportService,
		logger:         logger,
	}
}
