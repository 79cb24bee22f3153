package middleware

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/dto/response"
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthMiddleware interface {
	// ValidateAndExtractJwt resolves the bearer token to a stored, active user and puts it in the context.
	ValidateAndExtractJwt() gin.HandlerFunc
	// RequireRole must run after ValidateAndExtractJwt.
	RequireRole(role string) gin.HandlerFunc
}

const (
	UserContextKey = "UserContextKey"
)

// CurrentUser returns the user stored by ValidateAndExtractJwt.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

type authMiddleware struct {
	authService service.AuthService
	logger      *zap.Logger
}

func (a *authMiddleware) ValidateAndExtractJwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: "Authentication required"})
			return
		}
		header := strings.Fields(authHeader)
		if len(header) != 2 || !strings.EqualFold(header[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: "Authorization header is invalid"})
			return
		}
		user, err := a.authService.Authenticate(c, header[1])
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidToken),
				errors.Is(err, apperrors.ErrUserNotFound),
				errors.Is(err, apperrors.ErrUserInactive):
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: "Invalid access token"})
			default:
				a.logger.Error("failed to authenticate request", zap.Error(err),
					zap.String("http_method", c.Request.Method), zap.String("http_path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{Message: "Internal server error"})
			}
			return
		}
		c.Set(UserContextKey, user)
		c.Next()
	}
}

func (a *authMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: "Authentication required"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Response{Message: "Permission denied"})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(authService service.AuthService, logger *zap.Logger) AuthMiddleware {
	return &authMiddleware{
		authService: authService,
		logger:      logger,
	}
}
