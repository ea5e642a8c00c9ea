package http

import (
	"context"
	netHTTP "net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/yhlin/social-network/domain"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var EncodePostListResponse = httpTransportKit.EncodeJsonResponse

type postListRequest struct {
	Pagination domain.Pagination
}

func DecodePostListRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	limit, offset, err := httpTransportKit.DecodePaginationQuery(r)
	if err != nil {
		return nil, err
	}
	return postListRequest{Pagination: domain.Pagination{Limit: limit, Offset: offset}}, nil
}

func MakePostListEndpoint(svc domain.PostUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(postListRequest)
		posts, err := svc.GetAll(req.Pagination)
		if err != nil {
			return nil, err
		}
		return posts, nil
	}
}
