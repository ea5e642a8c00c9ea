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

var EncodeAccountUpdateResponse = httpTransportKit.EncodeJsonResponse

type accountUpdateRequest struct {
	UserID int64
}

type accountUpdateResponse struct {
	Message string `json:"message"`
}

func DecodeAccountUpdateRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return accountUpdateRequest{UserID: userID}, nil
}

func MakeAccountUpdateEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountUpdateRequest)
		return &accountUpdateResponse{Message: svc.Update(req.UserID)}, nil
	}
}
