package domain

import "time"

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenConfig is injected at construction. The signing secret is never read
// from process environment inside the token service itself.
type TokenConfig struct {
	Secret               string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

type AuthRepo interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	GenerateRefreshToken(userID int64, email string) (string, error)
	VerifyToken(token string, kind TokenKind) (userID int64, email string, err error)
}

type AuthUseCase interface {
	Login(email, password string) (*Account, error)
	RefreshAccessToken(refreshToken string) (string, error)
	Verify(accessToken string) (userID int64, email string, err error)
}
