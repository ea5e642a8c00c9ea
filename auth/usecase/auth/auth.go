package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
	utilKit "github.com/yhlin/social-network/kit/util"
)

type AuthService struct {
	authRepo    domain.AuthRepo
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreateAuthUseCase(authRepo domain.AuthRepo, accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AuthUseCase, error) {
	if logger == nil {
		return nil, errors.New("create service failed")
	}
	return &AuthService{
		logger:      logger,
		authRepo:    authRepo,
		accountRepo: accountRepo,
	}, nil
}

func (a *AuthService) Login(email, password string) (*domain.Account, error) {
	account, err := a.accountRepo.GetByEmail(email)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		// Same externally visible failure as a wrong password, so a caller
		// cannot probe which emails are registered.
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.InvalidPassword)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	if err := utilKit.CompareBcrypt([]byte(account.Password), []byte(password)); err != nil {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.InvalidPassword)
	}

	signedAccessToken, err := a.authRepo.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "signed access token failed")
	}

	signedRefreshToken, err := a.authRepo.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "signed refresh token failed")
	}

	return &domain.Account{
		ID:           account.ID,
		Email:        account.Email,
		Firstname:    account.Firstname,
		Lastname:     account.Lastname,
		AccessToken:  signedAccessToken,
		RefreshToken: signedRefreshToken,
	}, nil
}

func (a *AuthService) RefreshAccessToken(refreshTokenString string) (string, error) {
	userID, email, err := a.authRepo.VerifyToken(refreshTokenString, domain.RefreshToken)
	if errors.Is(err, domain.ErrInvalidData) {
		return "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.InvalidToken).AddErrorMetaData(err)
	} else if errors.Is(err, domain.ErrExpired) {
		return "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.Expired).AddErrorMetaData(err)
	} else if err != nil {
		return "", errors.Wrap(err, "verify token failed")
	}

	signedAccessToken, err := a.authRepo.GenerateAccessToken(userID, email)
	if err != nil {
		return "", errors.Wrap(err, "signed access token failed")
	}

	return signedAccessToken, nil
}

func (a *AuthService) Verify(accessToken string) (int64, string, error) {
	userID, email, err := a.authRepo.VerifyToken(accessToken, domain.AccessToken)
	if errors.Is(err, domain.ErrInvalidData) {
		return 0, "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.InvalidToken).AddErrorMetaData(err)
	} else if errors.Is(err, domain.ErrExpired) {
		return 0, "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.Expired).AddErrorMetaData(err)
	} else if err != nil {
		return 0, "", errors.Wrap(err, "verify token failed")
	}
	return userID, email, nil
}
