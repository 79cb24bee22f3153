package handler

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	mockhandler "NYA_Service_Dashboard/internal/dashboard-server/mocks/api/handler"
	mockservice "NYA_Service_Dashboard/internal/dashboard-server/mocks/service"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
)

var testAdmin = model.User{ID: 1, Username: "admin", Name: "Administrator", Role: model.RoleAdmin, Status: model.UserStatusActive, Password: "$2a$10$hash"}

func withUser(user model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
		c.Next()
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mockservice.NewMockAuthService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewAuthHandler(mockAuthService, mockLogger)

	router := gin.New()
	router.POST("/api/login", handler.Login())

	authResponse := service.AuthenticationResponse{
		AccessToken: "access.token", RefreshToken: "refresh.token", AccessTokenTTL: time.Hour, RefreshTokenTTL: 7 * 24 * time.Hour, User: testAdmin,
	}

	testCases := []struct {
		name           string
		body           string
		mock           func()
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name: "Success",
			body: `{"username":"admin","password":"nyaservices2025"}`,
			mock: func() {
				mockAuthService.EXPECT().Login(gomock.Any(), "admin", "nyaservices2025").Return(authResponse, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access_token":"access.token","token_type":"Bearer","expires_in":3600,"user":{"id":1,"username":"admin","name":"Administrator","role":"admin","status":"Active"}}`,
			expectCookie:   true,
		},
		{
			name:           "Missing password",
			body:           `{"username":"admin"}`,
			mock:           func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The Password field is required"}`,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"admin","password":"wrong"}`,
			mock: func() {
				mockAuthService.EXPECT().Login(gomock.Any(), "admin", "wrong").Return(service.AuthenticationResponse{}, apperrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name: "Inactive account",
			body: `{"username":"gone","password":"pw"}`,
			mock: func() {
				mockAuthService.EXPECT().Login(gomock.Any(), "gone", "pw").Return(service.AuthenticationResponse{}, apperrors.ErrUserInactive)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Account is inactive"}`,
		},
		{
			name: "Internal error",
			body: `{"username":"admin","password":"pw"}`,
			mock: func() {
				mockAuthService.EXPECT().Login(gomock.Any(), "admin", "pw").Return(service.AuthenticationResponse{}, errors.New("redis down"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to login", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			cookies := w.Result().Cookies()
			if tc.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "refresh_token", cookies[0].Name)
				assert.Equal(t, "refresh.token", cookies[0].Value)
				assert.Equal(t, "/api", cookies[0].Path)
				assert.True(t, cookies[0].HttpOnly)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mockservice.NewMockAuthService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewAuthHandler(mockAuthService, mockLogger)

	router := gin.New()
	router.POST("/api/logout", withUser(testAdmin), handler.Logout())

	testCases := []struct {
		name           string
		mock           func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mock: func() {
				mockAuthService.EXPECT().Logout(gomock.Any(), 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Logout successfully"}`,
		},
		{
			name: "Internal error",
			mock: func() {
				mockAuthService.EXPECT().Logout(gomock.Any(), 1).Return(errors.New("redis down"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to logout", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/logout", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mockservice.NewMockAuthService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewAuthHandler(mockAuthService, mockLogger)

	router := gin.New()
	router.POST("/api/auth/refresh", handler.Refresh())

	authResponse := service.AuthenticationResponse{
		AccessToken: "new.access", RefreshToken: "new.refresh", AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour, User: testAdmin,
	}

	testCases := []struct {
		name           string
		cookie         *http.Cookie
		mock           func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			cookie: &http.Cookie{Name: "refresh_token", Value: "old.refresh"},
			mock: func() {
				mockAuthService.EXPECT().Refresh(gomock.Any(), "old.refresh").Return(authResponse, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access_token":"new.access","token_type":"Bearer","expires_in":3600,"user":{"id":1,"username":"admin","name":"Administrator","role":"admin","status":"Active"}}`,
		},
		{
			name:           "Missing cookie",
			mock:           func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Cookie not found"}`,
		},
		{
			name:   "Reused token",
			cookie: &http.Cookie{Name: "refresh_token", Value: "old.refresh"},
			mock: func() {
				mockAuthService.EXPECT().Refresh(gomock.Any(), "old.refresh").Return(service.AuthenticationResponse{}, apperrors.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid refresh token"}`,
		},
		{
			name:   "Session expired",
			cookie: &http.Cookie{Name: "refresh_token", Value: "old.refresh"},
			mock: func() {
				mockAuthService.EXPECT().Refresh(gomock.Any(), "old.refresh").Return(service.AuthenticationResponse{}, apperrors.ErrRefreshTokenNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid refresh token"}`,
		},
		{
			name:   "Internal error",
			cookie: &http.Cookie{Name: "refresh_token", Value: "old.refresh"},
			mock: func() {
				mockAuthService.EXPECT().Refresh(gomock.Any(), "old.refresh").Return(service.AuthenticationResponse{}, errors.New("redis down"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to refresh token", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
