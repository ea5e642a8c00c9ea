package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	"github.com/yhlin/social-network/kit/code"
	httpKit "github.com/yhlin/social-network/kit/http"
)

// CreateAuthMiddleware rejects the request before the endpoint runs when the
// bearer token is missing or does not verify.
func CreateAuthMiddleware(verifyFunc func(ctx context.Context, accessToken string) (userID int64, email string, err error)) endpoint.Middleware {
	return func(e endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			accessToken, ok := extractBearerToken(httpKit.GetToken(ctx))
			if !ok {
				return nil, code.CreateErrorCode(http.StatusUnauthorized)
			}
			userID, email, err := verifyFunc(ctx, accessToken)
			if err != nil {
				return nil, errors.Wrap(err, "auth failed")
			}
			ctx = httpKit.AddUserID(ctx, userID)
			ctx = httpKit.AddEmail(ctx, email)
			return e(ctx, request)
		}
	}
}

func extractBearerToken(authorization string) (string, bool) {
	const prefix = "Bearer "
	if len(authorization) <= len(prefix) || !strings.EqualFold(authorization[:len(prefix)], prefix) {
		return "", false
	}
	return authorization[len(prefix):], true
}
