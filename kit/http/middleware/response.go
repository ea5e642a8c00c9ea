package middleware

import (
	"context"
	"net/http"

	"github.com/yhlin/social-network/kit/code"
)

func EncodeResponseSetSuccessHTTPCode(next func(ctx context.Context, w http.ResponseWriter, response interface{}) error) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		// The status line must go out before the encoder writes the body.
		if successCode := code.ParseResponseSuccessCode(response); successCode.HTTPCode != http.StatusOK {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(successCode.HTTPCode)
		}
		return next(ctx, w, response)
	}
}
