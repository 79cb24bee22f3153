package jwt

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwt.StandardClaims
}

type AccessToken struct {
	Token string
	TTL   time.Duration
}

type RefreshToken struct {
	Token string
	TTL   time.Duration
	JTI   string
}

type Utils interface {
	CreateAccessToken(user model.User) (AccessToken, error)
	CreateRefreshToken(userID int) (RefreshToken, error)
	VerifyAccessToken(tokenString string) (*Claims, error)
	VerifyRefreshToken(tokenString string) (*Claims, error)
}

type utils struct {
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	secretKey       string
	now             func() time.Time
}

func (u *utils) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.secretKey))
}

func (u *utils) CreateAccessToken(user model.User) (AccessToken, error) {
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenTypeAccess,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: u.now().Add(u.accessTokenTTL).Unix(),
			IssuedAt:  u.now().Unix(),
		},
	}
	tokenString, err := u.sign(claims)
	if err != nil {
		return AccessToken{}, fmt.Errorf("jwt.utils.CreateAccessToken signing token: %w", err)
	}
	return AccessToken{
		Token: tokenString,
		TTL:   u.accessTokenTTL,
	}, nil
}

func (u *utils) CreateRefreshToken(userID int) (RefreshToken, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return RefreshToken{}, fmt.Errorf("jwt.utils.CreateRefreshToken: %w", err)
	}
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenTypeRefresh,
		StandardClaims: jwt.StandardClaims{
			Id:        jti.String(),
			ExpiresAt: u.now().Add(u.refreshTokenTTL).Unix(),
			IssuedAt:  u.now().Unix(),
		},
	}
	tokenString, err := u.sign(claims)
	if err != nil {
		return RefreshToken{}, fmt.Errorf("jwt.utils.CreateRefreshToken signing token: %w", err)
	}
	return RefreshToken{
		Token: tokenString,
		TTL:   u.refreshTokenTTL,
		JTI:   jti.String(),
	}, nil
}

func (u *utils) verify(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(u.secretKey), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.TokenType != tokenType || claims.UserID == 0 {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (u *utils) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims, err := u.verify(tokenString, tokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("jwt.Utils.VerifyAccessToken: %w", err)
	}
	return claims, nil
}

func (u *utils) VerifyRefreshToken(tokenString string) (*Claims, error) {
	claims, err := u.verify(tokenString, tokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("jwt.Utils.VerifyRefreshToken: %w", err)
	}
	return claims, nil
}

func NewJwtUtils(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) Utils {
	return &utils{
		secretKey:       secretKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		now:             time.Now,
	}
}
