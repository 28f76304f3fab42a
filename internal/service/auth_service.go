package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"invoicedesk/internal/config"
	"invoicedesk/internal/domain"
)

// Claims represents the JWT claims for the operator session.
type Claims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role"`
}

// TokenPair holds access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// LoginInput is the DTO for login requests. There is a single operator, so
// only the password is asked for.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// RefreshInput is the DTO for token refresh requests.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	passwordHash string
	cfg          config.JWTConfig
}

// NewAuthService creates a new AuthService implementation. An empty password
// hash disables login.
func NewAuthService(authCfg config.AuthConfig, cfg config.JWTConfig) AuthService {
	return &authService{
		passwordHash: authCfg.PasswordHash,
		cfg:          cfg,
	}
}

func (s *authService) Enabled() bool {
	return s.passwordHash != ""
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	if !s.Enabled() {
		return nil, domain.ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.generateTokenPair()
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if !s.Enabled() {
		return nil, domain.ErrAuthDisabled
	}
	if _, err := s.validateTokenString(refreshToken, "refresh"); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return s.generateTokenPair()
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	return s.validateTokenString(tokenString, "access")
}

func (s *authService) generateTokenPair() (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(s.cfg.AccessTokenExpiry)

	access, err := s.sign(now, accessExpiry, "access")
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := s.sign(now, now.Add(s.cfg.RefreshTokenExpiry), "refresh")
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

func (s *authService) sign(now, expiry time.Time, audience string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(domain.RoleOperator),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{audience},
		},
		Role: domain.RoleOperator,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}

func (s *authService) validateTokenString(tokenString, audience string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	if !slices.Contains(aud, audience) {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
