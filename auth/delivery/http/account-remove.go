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

var EncodeAccountRemoveResponse = httpTransportKit.EncodeJsonResponse

type accountRemoveRequest struct {
	UserID int64
}

type accountRemoveResponse struct {
	Message string `json:"message"`
}

func DecodeAccountRemoveRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return accountRemoveRequest{UserID: userID}, nil
}

func MakeAccountRemoveEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRemoveRequest)
		return &accountRemoveResponse{Message: svc.Remove(req.UserID)}, nil
	}
}
