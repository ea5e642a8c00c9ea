package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/yhlin/social-network/domain"
	httpKit "github.com/yhlin/social-network/kit/http"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var (
	DecodePostDeleteRequest  = httpTransportKit.DecodeJsonRequest[postDeleteRequest]
	EncodePostDeleteResponse = httpTransportKit.EncodeJsonResponse
)

type postDeleteRequest struct {
	ID int64 `json:"id"`
}

type postDeleteResponse struct {
	Message string `json:"message"`
}

func MakePostDeleteEndpoint(svc domain.PostUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(postDeleteRequest)
		if err := svc.Delete(req.ID, httpKit.GetUserID(ctx)); err != nil {
			return nil, err
		}
		return &postDeleteResponse{Message: "Post deleted successfully"}, nil
	}
}
