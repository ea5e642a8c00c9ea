package http

import (
	"context"
	netHTTP "net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	httpKit "github.com/yhlin/social-network/kit/http"
	httpMiddlewareKit "github.com/yhlin/social-network/kit/http/middleware"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var (
	DecodePostCreateRequest  = httpTransportKit.DecodeJsonRequest[postCreateRequest]
	EncodePostCreateResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type postCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postCreateResponse struct {
	*domain.PublicPost
	code.SuccessCode `json:"-"`
}

func MakePostCreateEndpoint(svc domain.PostUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(postCreateRequest)
		post, err := svc.Create(httpKit.GetUserID(ctx), req.Title, req.Content)
		if err != nil {
			return nil, err
		}
		return &postCreateResponse{
			PublicPost:  post,
			SuccessCode: code.SuccessCode{HTTPCode: netHTTP.StatusCreated},
		}, nil
	}
}
