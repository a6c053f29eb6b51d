package auth

import "context"

// AuthService authenticates the admin credential and manages token pairs.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
