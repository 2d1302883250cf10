package auth

import "context"

// AuthService handles employee sign-in and token lifecycle. Token refresh is
// the collaborator behind the app's transparent retry-after-refresh
// interceptor; the attendance engine never sees it.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
