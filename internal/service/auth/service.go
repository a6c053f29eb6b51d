package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/asistapp/attendance-backend-go/internal/config"
	"github.com/asistapp/attendance-backend-go/internal/domain/auth"
	"github.com/asistapp/attendance-backend-go/internal/pkg/jwt"
)

// AuthServiceImpl authenticates the single admin credential from config.
// The attendance kiosk has exactly one operator account, so there is no user
// table behind this.
type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{admin: admin, jwtService: jwtService}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if !strings.EqualFold(req.Email, s.admin.Email) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(s.admin.Email)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	email, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !strings.EqualFold(email, s.admin.Email) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	return s.issueTokens(s.admin.Email)
}

func (s *AuthServiceImpl) issueTokens(email string) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
