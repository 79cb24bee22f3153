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
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserHandler interface {
	GetUsers() gin.HandlerFunc
	GetMe() gin.HandlerFunc
	CreateUser() gin.HandlerFunc
	UpdateUser() gin.HandlerFunc
}

type userHandler struct {
	userService service.UserService
	logger      Logger
}

func (*userHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must not be empty", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (u *userHandler) bindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: u.formatValidationError(validatorError[0]),
		})
	} else {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

func (u *userHandler) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := u.userService.GetUsers(c)
		if err != nil {
			err = fmt.Errorf("UserHandler.GetUsers: %w", err)
			u.logger.LoggingError(c, err, "failed to get users", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		usersRes := make([]response.UserInfoResponse, 0, len(users))
		for _, user := range users {
			usersRes = append(usersRes, response.NewUserInfoResponse(user))
		}
		c.JSON(http.StatusOK, usersRes)
	}
}

func (u *userHandler) GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, response.NewUserInfoResponse(user))
	}
}

func (u *userHandler) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			u.bindingError(c, err)
			return
		}
		created, err := u.userService.CreateUser(c, model.User{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Email:    req.Email,
			Role:     req.Role,
			Status:   req.Status,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "Username already exists",
				})
				return
			}
			err = fmt.Errorf("UserHandler.CreateUser: %w", err)
			u.logger.LoggingError(c, err, "failed to create user", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, response.NewUserInfoResponse(created))
	}
}

func (u *userHandler) UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "User id must be an integer",
			})
			return
		}
		var req request.UpdateUserRequest
		if err = c.ShouldBindJSON(&req); err != nil {
			u.bindingError(c, err)
			return
		}
		updated, err := u.userService.UpdateUser(c, id, req.ToPatch())
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "User not found",
				})
				return
			}
			err = fmt.Errorf("UserHandler.UpdateUser: %w", err)
			u.logger.LoggingError(c, err, fmt.Sprintf("failed to update user %d", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewUserInfoResponse(updated))
	}
}

func NewUserHandler(userService service.UserService, logger Logger) UserHandler {
	return &userHandler{
		userService: userService,
		logger:      logger,
	}
}
