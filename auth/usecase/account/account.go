package account

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
)

type accountUseCase struct {
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreateAccountUseCase(accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create service failed")
	}
	return &accountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

func (a *accountUseCase) Register(email, firstname, lastname, password string) (*domain.PublicAccount, error) {
	account, err := a.accountRepo.Create(email, firstname, lastname, password)
	if mysqlErr, ok := ormKit.ConvertMySQLErr(err); ok && errors.Is(mysqlErr, ormKit.ErrDuplicatedKey) {
		return nil, code.CreateErrorCode(http.StatusConflict).AddCode(code.EmailExists)
	} else if errors.Is(err, ormKit.ErrDuplicatedKey) {
		return nil, code.CreateErrorCode(http.StatusConflict).AddCode(code.EmailExists)
	} else if err != nil {
		return nil, errors.Wrap(err, "create account failed")
	}
	return account.ToPublic(), nil
}

func (a *accountUseCase) Get(userID int64) (*domain.PublicAccount, error) {
	account, err := a.accountRepo.Get(userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return account.ToPublic(), nil
}

func (a *accountUseCase) List(pagination domain.Pagination) ([]*domain.PublicAccount, error) {
	accounts, err := a.accountRepo.List(pagination)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts failed")
	}
	publicAccounts := make([]*domain.PublicAccount, 0, len(accounts))
	for _, account := range accounts {
		publicAccounts = append(publicAccounts, account.ToPublic())
	}
	return publicAccounts, nil
}

// Update and Remove are stubs. Accounts are never edited or hard-deleted here.

func (a *accountUseCase) Update(userID int64) string {
	return fmt.Sprintf("This action updates a #%d account", userID)
}

func (a *accountUseCase) Remove(userID int64) string {
	return fmt.Sprintf("This action removes a #%d account", userID)
}
