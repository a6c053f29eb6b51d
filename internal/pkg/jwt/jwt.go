package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(email string) (token string, expiresAt int64, err error)
	GenerateRefreshToken(email string) (token string, expiresAt int64, err error)
	ValidateRefreshToken(tokenString string) (email string, err error)
	GenerateSSEToken(email string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (email string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"type":  "access",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"exp":   expiresAt,
		"type":  "refresh",
	})
	return tokenString, expiresAt, err
}

// ValidateRefreshToken checks a refresh token and returns its subject email.
func (j *JWTService) ValidateRefreshToken(tokenString string) (string, error) {
	return j.validateTyped(tokenString, "refresh")
}

// GenerateSSEToken generates a short-lived token for SSE connections, which
// cannot carry an Authorization header.
func (j *JWTService) GenerateSSEToken(email string) (token string, expiresIn int, err error) {
	expiresIn = 300 // 5 minutes in seconds
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"type":  "sse",
		"exp":   expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns the subject email.
func (j *JWTService) ValidateSSEToken(tokenString string) (string, error) {
	return j.validateTyped(tokenString, "sse")
}

func (j *JWTService) validateTyped(tokenString string, wantType string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != wantType {
		return "", jwt.ErrInvalidJWT()
	}

	emailVal, ok := token.Get("email")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	email, ok := emailVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return email, nil
}
