package repository

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRefreshTokenRepoWithMockRedis() (RefreshTokenRepository, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return NewRefreshTokenRepository(db), mock
}

func TestRefreshTokenRepository_SetRefreshTokenID(t *testing.T) {
	key := "session:7"

	tests := []struct {
		name        string
		ttl         time.Duration
		mockSetup   func(mock redismock.ClientMock)
		expectError bool
	}{
		{
			name: "Success, Set with TTL",
			ttl:  time.Hour,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSet(key, "jti-1", time.Hour).SetVal("OK")
			},
		},
		{
			name: "Success, keep existing TTL",
			ttl:  -1,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSet(key, "jti-1", -1).SetVal("OK")
			},
		},
		{
			name: "Error, Redis returns an error",
			ttl:  time.Hour,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSet(key, "jti-1", time.Hour).SetErr(errors.New("redis connection error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRefreshTokenRepoWithMockRedis()
			tt.mockSetup(mock)

			err := repo.SetRefreshTokenID(context.Background(), 7, "jti-1", tt.ttl)

			assert.Equal(t, tt.expectError, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_GetRefreshTokenID(t *testing.T) {
	key := "session:7"
	redisError := errors.New("redis error")

	tests := []struct {
		name          string
		mockSetup     func(mock redismock.ClientMock)
		expectedToken string
		expectedError error
	}{
		{
			name: "Success, Token found",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).SetVal("jti-1")
			},
			expectedToken: "jti-1",
		},
		{
			name: "Error, Token not found",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).RedisNil()
			},
			expectedError: apperrors.ErrRefreshTokenNotFound,
		},
		{
			name: "Error, Generic Redis error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).SetErr(redisError)
			},
			expectedError: redisError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRefreshTokenRepoWithMockRedis()
			tt.mockSetup(mock)

			token, err := repo.GetRefreshTokenID(context.Background(), 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_DeleteRefreshToken(t *testing.T) {
	key := "session:7"

	tests := []struct {
		name        string
		mockSetup   func(mock redismock.ClientMock)
		expectError bool
	}{
		{
			name: "Success, Key deleted",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel(key).SetVal(1)
			},
		},
		{
			name: "Success, Key did not exist",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel(key).SetVal(0)
			},
		},
		{
			name: "Error, Redis returns an error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel(key).SetErr(errors.New("redis command failed"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRefreshTokenRepoWithMockRedis()
			tt.mockSetup(mock)

			err := repo.DeleteRefreshToken(context.Background(), 7)

			assert.Equal(t, tt.expectError, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
