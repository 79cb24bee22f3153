package handler

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/request"
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/response"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	refreshTokenCookie     = "refresh_token"
	refreshTokenCookiePath = "/api"
)

type AuthHandler interface {
	Login() gin.HandlerFunc
	Logout() gin.HandlerFunc
	Refresh() gin.HandlerFunc
}

type authHandler struct {
	authService service.AuthService
	logger      Logger
}

func (*authHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (a *authHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: a.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		auth, err := a.authService.Login(c, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, response.Response{
					Message: "Invalid credentials",
				})
			case errors.Is(err, apperrors.ErrUserInactive):
				c.JSON(http.StatusForbidden, response.Response{
					Message: "Account is inactive",
				})
			default:
				err = fmt.Errorf("AuthHandler.Login: %w", err)
				a.logger.LoggingError(c, err, "failed to login", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.SetCookie(refreshTokenCookie, auth.RefreshToken, int(auth.RefreshTokenTTL.Seconds()), refreshTokenCookiePath, "", false, true)
		c.JSON(http.StatusOK, response.AuthenticationResponse{
			AccessToken: auth.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
			User:        response.NewUserInfoResponse(auth.User),
		})
	}
}

func (a *authHandler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		err := a.authService.Logout(c, user.ID)
		if err != nil {
			err = fmt.Errorf("AuthHandler.Logout: %w", err)
			a.logger.LoggingError(c, err, "failed to logout", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.SetCookie(refreshTokenCookie, "", -1, refreshTokenCookiePath, "", false, true)
		c.JSON(http.StatusOK, response.Response{
			Message: "Logout successfully",
		})
	}
}

func (a *authHandler) Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie(refreshTokenCookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Cookie not found",
			})
			return
		}
		auth, err := a.authService.Refresh(c, refreshToken)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidToken),
				errors.Is(err, apperrors.ErrRefreshTokenNotFound),
				errors.Is(err, apperrors.ErrUserNotFound),
				errors.Is(err, apperrors.ErrUserInactive):
				c.JSON(http.StatusUnauthorized, response.Response{
					Message: "Invalid refresh token",
				})
			default:
				err = fmt.Errorf("AuthHandler.Refresh: %w", err)
				a.logger.LoggingError(c, err, "failed to refresh token", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.SetCookie(refreshTokenCookie, auth.RefreshToken, int(auth.RefreshTokenTTL.Seconds()), refreshTokenCookiePath, "", false, true)
		c.JSON(http.StatusOK, response.AuthenticationResponse{
			AccessToken: auth.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
			User:        response.NewUserInfoResponse(auth.User),
		})
	}
}

func NewAuthHandler(authService service.AuthService, logger Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}
