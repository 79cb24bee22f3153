package handler

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	mockhandler "NYA_Service_Dashboard/internal/dashboard-server/mocks/api/handler"
	mockservice "NYA_Service_Dashboard/internal/dashboard-server/mocks/service"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
)

var testDemo = model.User{ID: 2, Username: "demo", Role: model.RoleUser, Status: model.UserStatusActive}

func TestTicketHandler_GetTickets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTicketService := mockservice.NewMockTicketService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewTicketHandler(mockTicketService, mockLogger)

	router := gin.New()
	router.GET("/api/tickets", withUser(testDemo), handler.GetTickets())

	mockTicketService.EXPECT().GetTickets(gomock.Any(), testDemo).Return([]model.Ticket{
		{ID: "TKT-002", Subject: "VPN", Status: "Open", Date: "2025-05-01", Messages: []model.TicketMessage{}, UserID: 2},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/tickets", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"TKT-002","subject":"VPN","status":"Open","date":"2025-05-01","messages":[],"userId":2}]`, w.Body.String())
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTicketService := mockservice.NewMockTicketService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewTicketHandler(mockTicketService, mockLogger)

	router := gin.New()
	router.POST("/api/tickets", withUser(testDemo), handler.CreateTicket())

	testCases := []struct {
		name           string
		body           string
		mock           func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"subject":"VPN","priority":"High"}`,
			mock: func() {
				mockTicketService.EXPECT().CreateTicket(gomock.Any(), testDemo, model.Ticket{Subject: "VPN", Priority: "High"}).
					Return(model.Ticket{ID: "TKT-002", Subject: "VPN", Priority: "High", Status: "Open", Date: "2025-05-01", Messages: []model.TicketMessage{}, UserID: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":"TKT-002","subject":"VPN","priority":"High","status":"Open","date":"2025-05-01","messages":[],"userId":2}`,
		},
		{
			name:           "Missing subject",
			body:           `{"priority":"High"}`,
			mock:           func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The Subject field is required"}`,
		},
		{
			name: "Internal error",
			body: `{"subject":"VPN"}`,
			mock: func() {
				mockTicketService.EXPECT().CreateTicket(gomock.Any(), testDemo, gomock.Any()).Return(model.Ticket{}, errors.New("disk full"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to create ticket", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/tickets", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestTicketHandler_UpdateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTicketService := mockservice.NewMockTicketService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewTicketHandler(mockTicketService, mockLogger)

	router := gin.New()
	router.PUT("/api/tickets/:id", withUser(testDemo), handler.UpdateTicket())

	testCases := []struct {
		name           string
		mock           func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mock: func() {
				mockTicketService.EXPECT().UpdateTicket(gomock.Any(), testDemo, "TKT-001", model.TicketPatch{Status: strPtr("Closed")}).
					Return(model.Ticket{ID: "TKT-001", Subject: "VPN", Status: "Closed", Date: "2025-05-01", Messages: []model.TicketMessage{}, UserID: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"TKT-001","subject":"VPN","status":"Closed","date":"2025-05-01","messages":[],"userId":2}`,
		},
		{
			name: "Not found",
			mock: func() {
				mockTicketService.EXPECT().UpdateTicket(gomock.Any(), testDemo, "TKT-001", gomock.Any()).Return(model.Ticket{}, apperrors.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Ticket not found"}`,
		},
		{
			name: "Not the owner",
			mock: func() {
				mockTicketService.EXPECT().UpdateTicket(gomock.Any(), testDemo, "TKT-001", gomock.Any()).Return(model.Ticket{}, apperrors.ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Permission denied"}`,
		},
		{
			name: "Internal error",
			mock: func() {
				mockTicketService.EXPECT().UpdateTicket(gomock.Any(), testDemo, "TKT-001", gomock.Any()).Return(model.Ticket{}, errors.New("disk full"))
				mockLogger.EXPECT().LoggingError(gomock.Any(), gomock.Any(), "failed to update ticket TKT-001", zapcore.ErrorLevel)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, "/api/tickets/TKT-001", bytes.NewBufferString(`{"status":"Closed"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestTicketHandler_AddMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTicketService := mockservice.NewMockTicketService(ctrl)
	mockLogger := mockhandler.NewMockLogger(ctrl)
	handler := NewTicketHandler(mockTicketService, mockLogger)

	router := gin.New()
	router.POST("/api/tickets/:id/messages", withUser(testAdmin), handler.AddMessage())

	testCases := []struct {
		name           string
		body           string
		mock           func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"text":"Looking into it"}`,
			mock: func() {
				mockTicketService.EXPECT().AddMessage(gomock.Any(), testAdmin, "TKT-001", "Looking into it").
					Return(model.TicketMessage{Sender: "admin", Text: "Looking into it", Timestamp: "2025-05-01 10:00"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"sender":"admin","text":"Looking into it","timestamp":"2025-05-01 10:00"}`,
		},
		{
			name:           "Missing text",
			body:           `{}`,
			mock:           func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The Text field is required"}`,
		},
		{
			name: "Not found",
			body: `{"text":"hi"}`,
			mock: func() {
				mockTicketService.EXPECT().AddMessage(gomock.Any(), testAdmin, "TKT-001", "hi").Return(model.TicketMessage{}, apperrors.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Ticket not found"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/tickets/TKT-001/messages", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
