package http

import (
	"context"
	netHTTP "net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	httpMiddlewareKit "github.com/yhlin/social-network/kit/http/middleware"
	httpTransportKit "github.com/yhlin/social-network/kit/http/transport"
)

var (
	DecodeAccountRegisterRequest  = httpTransportKit.DecodeJsonRequest[accountRegisterRequest]
	EncodeAccountRegisterResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountRegisterRequest struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Password  string `json:"password"`
}

type accountRegisterResponse struct {
	*domain.PublicAccount
	code.SuccessCode `json:"-"`
}

func MakeAccountRegisterEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRegisterRequest)
		account, err := svc.Register(req.Email, req.Firstname, req.Lastname, req.Password)
		if err != nil {
			return nil, err
		}
		return &accountRegisterResponse{
			PublicAccount: account,
			SuccessCode:   code.SuccessCode{HTTPCode: netHTTP.StatusCreated},
		}, nil
	}
}
