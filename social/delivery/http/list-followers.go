package http

import (
	"context"
	netHTTP "net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var EncodeListFollowersResponse = httpTransportKit.EncodeJsonResponse

type listFollowersRequest struct {
	UserID     int64
	Pagination domain.Pagination
}

func DecodeListFollowersRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	limit, offset, err := httpTransportKit.DecodePaginationQuery(r)
	if err != nil {
		return nil, err
	}
	return listFollowersRequest{
		UserID:     userID,
		Pagination: domain.Pagination{Limit: limit, Offset: offset},
	}, nil
}

func MakeListFollowersEndpoint(svc domain.FollowUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(listFollowersRequest)
		followers, err := svc.GetFollowers(req.UserID, req.Pagination)
		if err != nil {
			return nil, err
		}
		return followers, nil
	}
}
