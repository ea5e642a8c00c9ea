package main

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authDeliveryHTTP "github.com/yhlin/social-network/auth/delivery/http"
	accountMySQLRepo "github.com/yhlin/social-network/auth/repository/account/mysql"
	authJWTRepo "github.com/yhlin/social-network/auth/repository/auth/jwt"
	accountUseCaseLib "github.com/yhlin/social-network/auth/usecase/account"
	authUseCaseLib "github.com/yhlin/social-network/auth/usecase/auth"
	"github.com/yhlin/social-network/domain"
	httpKit "github.com/yhlin/social-network/kit/http"
	httpMiddlewareKit "github.com/yhlin/social-network/kit/http/middleware"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
	redisKit "github.com/yhlin/social-network/kit/redis"
	traceKit "github.com/yhlin/social-network/kit/trace"
	utilKit "github.com/yhlin/social-network/kit/util"
	postDeliveryHTTP "github.com/yhlin/social-network/post/delivery/http"
	postMySQLRepo "github.com/yhlin/social-network/post/repository/post/mysql"
	postUseCaseLib "github.com/yhlin/social-network/post/usecase"
	socialDeliveryHTTP "github.com/yhlin/social-network/social/delivery/http"
	followMySQLRepo "github.com/yhlin/social-network/social/repository/follow/mysql"
	followUseCaseLib "github.com/yhlin/social-network/social/usecase"
	"go.opentelemetry.io/otel/trace"
)

const (
	SYSTEM_NAME  = "system"
	SERVICE_NAME = "social"
)

func main() {
	var (
		enableTracer    = utilKit.GetEnvBool("ENABLE_TRACER", false)
		enableMetric    = utilKit.GetEnvBool("ENABLE_METRIC", false)
		enableRateLimit = utilKit.GetEnvBool("ENABLE_RATE_LIMIT", false)
		env             = utilKit.GetEnvString("ENV", "development")
		httpAddr        = utilKit.GetEnvString("HTTP_ADDR", ":9093")
		mysqlURI        = utilKit.GetEnvString("MYSQL_URI", "root:password@tcp(127.0.0.1:3306)/db?charset=utf8mb4&parseTime=True&loc=Local")
		redisURI        = utilKit.GetEnvString("REDIS_URI", "localhost:6379")
		tokenSecret     = utilKit.GetRequireEnvString("TOKEN_SECRET")
	)

	logLevel := loggerKit.InfoLevel
	if env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	singletonDB, err := ormKit.CreateDB(ormKit.UseMySQL(mysqlURI))
	if err != nil {
		panic(err)
	}

	var tracer trace.Tracer
	if enableTracer {
		tracer, err = traceKit.CreateTracer(context.Background(), SERVICE_NAME)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	authRepo, err := authJWTRepo.CreateAuthRepo(domain.TokenConfig{Secret: tokenSecret})
	if err != nil {
		panic(err)
	}
	accountRepo := accountMySQLRepo.CreateAccountRepo(singletonDB)
	followRepo := followMySQLRepo.CreateFollowRepo(singletonDB)
	postRepo := postMySQLRepo.CreatePostRepo(singletonDB)

	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authRepo, accountRepo, logger)
	if err != nil {
		panic(err)
	}
	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, logger)
	if err != nil {
		panic(err)
	}
	followUseCase, err := followUseCaseLib.CreateFollowUseCase(followRepo, logger)
	if err != nil {
		panic(err)
	}
	postUseCase, err := postUseCaseLib.CreatePostUseCase(postRepo, accountRepo, logger)
	if err != nil {
		panic(err)
	}

	middlewares := []endpoint.Middleware{
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
		httpMiddlewareKit.CreateMetrics(SYSTEM_NAME, SERVICE_NAME),
	}
	if enableRateLimit {
		singletonCache, err := redisKit.CreateCache(redisURI, "", 0)
		if err != nil {
			panic(err)
		}
		rateLimit := utilKit.CreateCacheRateLimit(singletonCache, 3, 10)
		middlewares = append(middlewares, httpMiddlewareKit.CreateRateLimitMiddleware(rateLimit.Pass))
	}
	customMiddleware := endpoint.Chain(middlewares[0], middlewares[1:]...)
	authMiddleware := httpMiddlewareKit.CreateAuthMiddleware(func(ctx context.Context, accessToken string) (int64, string, error) {
		return authUseCase.Verify(accessToken)
	})

	g := new(run.Group)
	{
		r := mux.NewRouter()
		options := []httptransport.ServerOption{
			httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
			httptransport.ServerAfter(httpKit.CustomAfterCtx),
			httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
		}
		r.Methods("POST").Path("/api/v1/auth/login").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
				authDeliveryHTTP.DecodeAuthLoginRequest,
				authDeliveryHTTP.EncodeAuthLoginResponse,
				options...,
			))
		r.Methods("POST").Path("/api/v1/auth/refresh").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeRefreshAccessTokenEndpoint(authUseCase)),
				authDeliveryHTTP.DecodeRefreshAccessTokenRequest,
				authDeliveryHTTP.EncodeRefreshAccessTokenResponse,
				options...,
			))
		r.Methods("POST").Path("/api/v1/users").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
				authDeliveryHTTP.DecodeAccountRegisterRequest,
				authDeliveryHTTP.EncodeAccountRegisterResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/users").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(authDeliveryHTTP.MakeAccountListEndpoint(accountUseCase))),
				authDeliveryHTTP.DecodeAccountListRequest,
				authDeliveryHTTP.EncodeAccountListResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/users/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeAccountGetEndpoint(accountUseCase)),
				authDeliveryHTTP.DecodeAccountGetRequest,
				authDeliveryHTTP.EncodeAccountGetResponse,
				options...,
			))
		r.Methods("PATCH").Path("/api/v1/users/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeAccountUpdateEndpoint(accountUseCase)),
				authDeliveryHTTP.DecodeAccountUpdateRequest,
				authDeliveryHTTP.EncodeAccountUpdateResponse,
				options...,
			))
		r.Methods("DELETE").Path("/api/v1/users/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authDeliveryHTTP.MakeAccountRemoveEndpoint(accountUseCase)),
				authDeliveryHTTP.DecodeAccountRemoveRequest,
				authDeliveryHTTP.EncodeAccountRemoveResponse,
				options...,
			))
		r.Methods("POST").Path("/api/v1/followers/follow/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(socialDeliveryHTTP.MakeFollowUserEndpoint(followUseCase))),
				socialDeliveryHTTP.DecodeFollowUserRequest,
				socialDeliveryHTTP.EncodeFollowUserResponse,
				options...,
			))
		r.Methods("DELETE").Path("/api/v1/followers/unfollow/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(socialDeliveryHTTP.MakeUnfollowUserEndpoint(followUseCase))),
				socialDeliveryHTTP.DecodeUnfollowUserRequest,
				socialDeliveryHTTP.EncodeUnfollowUserResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/followers/count/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(socialDeliveryHTTP.MakeCountFollowersEndpoint(followUseCase)),
				socialDeliveryHTTP.DecodeCountFollowersRequest,
				socialDeliveryHTTP.EncodeCountFollowersResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/followers/list/{id}").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(socialDeliveryHTTP.MakeListFollowersEndpoint(followUseCase))),
				socialDeliveryHTTP.DecodeListFollowersRequest,
				socialDeliveryHTTP.EncodeListFollowersResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/posts").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(postDeliveryHTTP.MakePostListEndpoint(postUseCase))),
				postDeliveryHTTP.DecodePostListRequest,
				postDeliveryHTTP.EncodePostListResponse,
				options...,
			))
		r.Methods("POST").Path("/api/v1/posts").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(postDeliveryHTTP.MakePostCreateEndpoint(postUseCase))),
				postDeliveryHTTP.DecodePostCreateRequest,
				postDeliveryHTTP.EncodePostCreateResponse,
				options...,
			))
		r.Methods("DELETE").Path("/api/v1/posts").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(postDeliveryHTTP.MakePostDeleteEndpoint(postUseCase))),
				postDeliveryHTTP.DecodePostDeleteRequest,
				postDeliveryHTTP.EncodePostDeleteResponse,
				options...,
			))
		if enableMetric {
			r.Handle("/metrics", promhttp.Handler())
		}
		httpSrv := http.Server{
			Addr:    httpAddr,
			Handler: r,
		}
		g.Add(func() error {
			return httpSrv.ListenAndServe()
		}, func(err error) {
			if err != nil {
				logger.Error(err.Error())
			}
			httpSrv.Close()
		})
	}
	g.Run()
}
