package http

import (
	"context"
	"fmt"
	netHTTP "net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	httpKit "github.com/yhlin/social-network/kit/http"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var EncodeUnfollowUserResponse = httpTransportKit.EncodeJsonResponse

type unfollowUserRequest struct {
	TargetUserID int64
}

type unfollowUserResponse struct {
	Message string `json:"message"`
}

func DecodeUnfollowUserRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	targetUserID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return unfollowUserRequest{TargetUserID: targetUserID}, nil
}

func MakeUnfollowUserEndpoint(svc domain.FollowUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(unfollowUserRequest)
		if err := svc.Unfollow(httpKit.GetUserID(ctx), req.TargetUserID); err != nil {
			return nil, err
		}
		return &unfollowUserResponse{Message: fmt.Sprintf("You are now unfollowing %d", req.TargetUserID)}, nil
	}
}
