package repository

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RefreshTokenRepository interface {
	// SetRefreshTokenID stores the jti of the user's current refresh token.
	//
	// Set ttl to -1 to keep the existing TTL and 0 for no expiration.
	SetRefreshTokenID(ctx context.Context, userID int, refreshTokenID string, ttl time.Duration) error
	GetRefreshTokenID(ctx context.Context, userID int) (string, error)
	DeleteRefreshToken(ctx context.Context, userID int) error
}

type refreshTokenRepository struct {
	redis *redis.Client
}

func (*refreshTokenRepository) sessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

func (r *refreshTokenRepository) SetRefreshTokenID(ctx context.Context, userID int, refreshTokenID string, ttl time.Duration) error {
	err := r.redis.Set(ctx, r.sessionKey(userID), refreshTokenID, ttl).Err()
	if err != nil {
		return fmt.Errorf("refreshTokenRepository.SetRefreshTokenID: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) GetRefreshTokenID(ctx context.Context, userID int) (string, error) {
	tokenID, err := r.redis.Get(ctx, r.sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("refreshTokenRepository.GetRefreshTokenID: %w", apperrors.ErrRefreshTokenNotFound)
		}
		return "", fmt.Errorf("refreshTokenRepository.GetRefreshTokenID: %w", err)
	}
	return tokenID, nil
}

func (r *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, userID int) error {
	if err := r.redis.Del(ctx, r.sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("refreshTokenRepository.DeleteRefreshToken: %w", err)
	}
	return nil
}

func NewRefreshTokenRepository(redis *redis.Client) RefreshTokenRepository {
	return &refreshTokenRepository{redis: redis}
}
