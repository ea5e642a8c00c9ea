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

var EncodeCountFollowersResponse = httpTransportKit.EncodeJsonResponse

type countFollowersRequest struct {
	UserID int64
}

type countFollowersResponse struct {
	Count int64 `json:"count"`
}

func DecodeCountFollowersRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return countFollowersRequest{UserID: userID}, nil
}

func MakeCountFollowersEndpoint(svc domain.FollowUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(countFollowersRequest)
		count, err := svc.CountFollowers(req.UserID)
		if err != nil {
			return nil, err
		}
		return &countFollowersResponse{Count: count}, nil
	}
}
