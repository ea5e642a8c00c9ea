package jwt

import (
	"fmt"
	"strconv"
	"time"

	jwtPkg "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
)

const (
	defaultAccessTokenDuration  = time.Hour
	defaultRefreshTokenDuration = 7 * 24 * time.Hour
)

type authRepo struct {
	config domain.TokenConfig
}

// CreateAuthRepo fails fast on an empty secret. Signer misconfiguration is a
// startup error, not a per-request one.
func CreateAuthRepo(config domain.TokenConfig) (domain.AuthRepo, error) {
	if config.Secret == "" {
		return nil, errors.New("token secret is not set")
	}
	if config.AccessTokenDuration == 0 {
		config.AccessTokenDuration = defaultAccessTokenDuration
	}
	if config.RefreshTokenDuration == 0 {
		config.RefreshTokenDuration = defaultRefreshTokenDuration
	}
	return &authRepo{
		config: config,
	}, nil
}

func (a *authRepo) GenerateAccessToken(userID int64, email string) (string, error) {
	return a.generateToken(userID, email, domain.AccessToken, a.config.AccessTokenDuration)
}

func (a *authRepo) GenerateRefreshToken(userID int64, email string) (string, error) {
	return a.generateToken(userID, email, domain.RefreshToken, a.config.RefreshTokenDuration)
}

func (a *authRepo) generateToken(userID int64, email string, kind domain.TokenKind, duration time.Duration) (string, error) {
	now := time.Now()
	token := jwtPkg.NewWithClaims(jwtPkg.SigningMethodHS256, jwtPkg.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"kind":  string(kind),
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	})
	signedToken, err := token.SignedString([]byte(a.config.Secret))
	if err != nil {
		return "", errors.Wrap(err, "signed token failed")
	}
	return signedToken, nil
}

func (a *authRepo) VerifyToken(tokenString string, kind domain.TokenKind) (int64, string, error) {
	// A missing secret yields the same deterministic verification failure as
	// a bad token, never an escaping panic.
	if a.config.Secret == "" {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "token secret is not set")
	}

	token, err := jwtPkg.Parse(tokenString, func(token *jwtPkg.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtPkg.SigningMethodHMAC); !ok {
			return nil, errors.New(fmt.Sprintf("unexpected signing %s", token.Header["alg"]))
		}
		return []byte(a.config.Secret), nil
	})
	if errors.Is(err, jwtPkg.ErrTokenExpired) {
		return 0, "", errors.Wrap(domain.ErrExpired, fmt.Sprintf("%+v", err))
	} else if err != nil {
		// Bad signature, malformed, unexpected alg, anything else the parser
		// rejects. All of it is an untrusted token, not a server fault.
		return 0, "", errors.Wrap(domain.ErrInvalidData, fmt.Sprintf("%+v", err))
	}

	mapClaims, ok := token.Claims.(jwtPkg.MapClaims)
	if !ok {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "get claims failed")
	}

	// A refresh token must never pass where an access token is expected, and
	// the other way around.
	tokenKind, ok := mapClaims["kind"].(string)
	if !ok || tokenKind != string(kind) {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "token kind mismatch")
	}

	userIDString, ok := mapClaims["sub"].(string)
	if !ok {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "get sub field failed")
	}
	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "parse sub field failed")
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return 0, "", errors.Wrap(domain.ErrInvalidData, "get email field failed")
	}

	return userID, email, nil
}
