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

var EncodeAccountGetResponse = httpTransportKit.EncodeJsonResponse

type accountGetRequest struct {
	UserID int64
}

func DecodeAccountGetRequest(ctx context.Context, r *netHTTP.Request) (interface{}, error) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return nil, code.CreateErrorCode(netHTTP.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return accountGetRequest{UserID: userID}, nil
}

func MakeAccountGetEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountGetRequest)
		account, err := svc.Get(req.UserID)
		if err != nil {
			return nil, err
		}
		return account, nil
	}
}
