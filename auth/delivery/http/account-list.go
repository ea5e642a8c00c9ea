package http

import (
	"context"
	netHTTP "net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/yhlin/social-network/domain"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var EncodeAccountListResponse = httpTransportKit.EncodeJsonResponse

type accountListRequest struct {
	Pagination domain.Pagination
}

func DecodeAccountListRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	limit, offset, err := httpTransportKit.DecodePaginationQuery(r)
	if err != nil {
		return nil, err
	}
	return accountListRequest{Pagination: domain.Pagination{Limit: limit, Offset: offset}}, nil
}

func MakeAccountListEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountListRequest)
		accounts, err := svc.List(req.Pagination)
		if err != nil {
			return nil, err
		}
		return accounts, nil
	}
}
