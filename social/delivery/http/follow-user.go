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

var EncodeFollowUserResponse = httpTransportKit.EncodeJsonResponse

type followUserRequest struct {
	TargetUserID int64
}

type followUserResponse struct {
	Message string `json:"message"`
}

func DecodeFollowUserRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	targetUserID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return followUserRequest{TargetUserID: targetUserID}, nil
}

func MakeFollowUserEndpoint(svc domain.FollowUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(followUserRequest)
		if err := svc.Follow(httpKit.GetUserID(ctx), req.TargetUserID); err != nil {
			return nil, err
		}
		return &followUserResponse{Message: fmt.Sprintf("You are now following %d", req.TargetUserID)}, nil
	}
}
