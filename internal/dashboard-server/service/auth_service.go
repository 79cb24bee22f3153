package service

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/jwt"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthenticationResponse struct {
	AccessToken     string
	RefreshToken    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	User            model.User
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (AuthenticationResponse, error)
	Logout(ctx context.Context, userID int) error
	Refresh(ctx context.Context, refreshToken string) (AuthenticationResponse, error)
	// Authenticate verifies an access token and resolves its user from the user store,
	// so a deleted or deactivated user is rejected even while the token is unexpired.
	Authenticate(ctx context.Context, accessToken string) (model.User, error)
}

type authService struct {
	userService    UserService
	jwt            jwt.Utils
	tokenRepo      repository.RefreshTokenRepository
	userSessionTTL time.Duration
}

func (a *authService) issueTokens(ctx context.Context, user model.User, sessionTTL time.Duration) (AuthenticationResponse, error) {
	accessToken, err := a.jwt.CreateAccessToken(user)
	if err != nil {
		return AuthenticationResponse{}, err
	}
	refreshToken, err := a.jwt.CreateRefreshToken(user.ID)
	if err != nil {
		return AuthenticationResponse{}, err
	}
	if err = a.tokenRepo.SetRefreshTokenID(ctx, user.ID, refreshToken.JTI, sessionTTL); err != nil {
		return AuthenticationResponse{}, err
	}
	return AuthenticationResponse{
		AccessToken:     accessToken.Token,
		RefreshToken:    refreshToken.Token,
		AccessTokenTTL:  accessToken.TTL,
		RefreshTokenTTL: refreshToken.TTL,
		User:            user,
	}, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (AuthenticationResponse, error) {
	user, err := a.userService.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", apperrors.ErrInvalidCredentials)
		}
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", apperrors.ErrInvalidCredentials)
	}
	if !user.IsActive() {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", apperrors.ErrUserInactive)
	}
	res, err := a.issueTokens(ctx, user, a.userSessionTTL)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Login: %w", err)
	}
	return res, nil
}

func (a *authService) Logout(ctx context.Context, userID int) error {
	if err := a.tokenRepo.DeleteRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("authService.Logout: %w", err)
	}
	return nil
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (AuthenticationResponse, error) {
	claims, err := a.jwt.VerifyRefreshToken(refreshToken)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	savedJTI, err := a.tokenRepo.GetRefreshTokenID(ctx, claims.UserID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	// a reused old token means it leaked: end the whole session
	if savedJTI != claims.Id {
		if err = a.tokenRepo.DeleteRefreshToken(ctx, claims.UserID); err != nil {
			return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
		}
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", apperrors.ErrInvalidToken)
	}
	user, err := a.userService.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	if !user.IsActive() {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", apperrors.ErrUserInactive)
	}
	res, err := a.issueTokens(ctx, user, -1)
	if err != nil {
		return AuthenticationResponse{}, fmt.Errorf("authService.Refresh: %w", err)
	}
	return res, nil
}

func (a *authService) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	claims, err := a.jwt.VerifyAccessToken(accessToken)
	if err != nil {
		return model.User{}, fmt.Errorf("authService.Authenticate: %w", err)
	}
	user, err := a.userService.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return model.User{}, fmt.Errorf("authService.Authenticate: %w", err)
	}
	if !user.IsActive() {
		return model.User{}, fmt.Errorf("authService.Authenticate: %w", apperrors.ErrUserInactive)
	}
	return user, nil
}

func NewAuthService(userService UserService, jwt jwt.Utils, tokenRepo repository.RefreshTokenRepository, userSessionTTL time.Duration) AuthService {
	return &authService{
		userService:    userService,
		jwt:            jwt,
		tokenRepo:      tokenRepo,
		userSessionTTL: userSessionTTL,
	}
}
