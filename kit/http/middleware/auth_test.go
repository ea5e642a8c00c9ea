package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yhlin/social-network/kit/code"
	httpKit "github.com/yhlin/social-network/kit/http"
)

func TestAuthMiddleware(t *testing.T) {
	authMiddleware := CreateAuthMiddleware(func(ctx context.Context, accessToken string) (int64, string, error) {
		if accessToken == "good-token" {
			return 100, "email@gmail.com", nil
		}
		return 0, "", code.CreateErrorCode(http.StatusUnauthorized)
	})

	var gotUserID int64
	var gotEmail string
	guardedEndpoint := authMiddleware(func(ctx context.Context, request interface{}) (interface{}, error) {
		gotUserID = httpKit.GetUserID(ctx)
		gotEmail = httpKit.GetEmail(ctx)
		return "ok", nil
	})

	res, err := guardedEndpoint(httpKit.AddToken(context.Background(), "Bearer good-token"), nil)
	assert.Nil(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, int64(100), gotUserID)
	assert.Equal(t, "email@gmail.com", gotEmail)

	for _, authorization := range []string{
		"",
		"good-token",
		"Basic good-token",
		"Bearer bad-token",
	} {
		_, err := guardedEndpoint(httpKit.AddToken(context.Background(), authorization), nil)
		assert.NotNil(t, err)
		assert.Equal(t, http.StatusUnauthorized, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
	}
}
