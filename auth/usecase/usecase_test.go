package usecase

import (
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	accountSQLRepo "github.com/yhlin/social-network/auth/repository/account/mysql"
	authJWTRepo "github.com/yhlin/social-network/auth/repository/auth/jwt"
	"github.com/yhlin/social-network/auth/usecase/account"
	"github.com/yhlin/social-network/auth/usecase/auth"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
)

const accountSchema = `
CREATE TABLE account (
  id INTEGER PRIMARY KEY,
  firstname TEXT NOT NULL,
  lastname TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
)`

func createTestDB(t *testing.T) *ormKit.DB {
	t.Helper()

	ormDB, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(accountSchema).Error)
	return ormDB
}

func TestUseCase(t *testing.T) {
	email := "email@gmail.com"
	password := "password"

	ormDB := createTestDB(t)
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	authRepo, err := authJWTRepo.CreateAuthRepo(domain.TokenConfig{Secret: "test-secret"})
	assert.Nil(t, err)
	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)

	authUseCase, err := auth.CreateAuthUseCase(authRepo, accountRepo, logger)
	assert.Nil(t, err)
	accountUseCase, err := account.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)

	userInfo, err := accountUseCase.Register(email, "alice", "smith", password)
	assert.Nil(t, err)
	assert.Equal(t, email, userInfo.Email)

	accountResult, err := authUseCase.Login(email, password)
	assert.Nil(t, err)
	assert.NotEmpty(t, accountResult.AccessToken)
	assert.NotEmpty(t, accountResult.RefreshToken)

	userID, tokenEmail, err := authUseCase.Verify(accountResult.AccessToken)
	assert.Nil(t, err)
	assert.Equal(t, userInfo.ID, userID)
	assert.Equal(t, email, tokenEmail)

	accessToken, err := authUseCase.RefreshAccessToken(accountResult.RefreshToken)
	assert.Nil(t, err)
	userID, _, err = authUseCase.Verify(accessToken)
	assert.Nil(t, err)
	assert.Equal(t, userInfo.ID, userID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ormDB := createTestDB(t)
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	authRepo, err := authJWTRepo.CreateAuthRepo(domain.TokenConfig{Secret: "test-secret"})
	assert.Nil(t, err)
	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)

	authUseCase, err := auth.CreateAuthUseCase(authRepo, accountRepo, logger)
	assert.Nil(t, err)
	accountUseCase, err := account.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)

	_, err = accountUseCase.Register("email@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)

	_, wrongPasswordErr := authUseCase.Login("email@gmail.com", "wrong-password")
	assert.NotNil(t, wrongPasswordErr)
	assert.Equal(t, http.StatusUnauthorized, code.CreateHTTPError(code.ParseErrorCode(wrongPasswordErr)).HTTPCode)

	_, unknownEmailErr := authUseCase.Login("unknown@gmail.com", "password")
	assert.NotNil(t, unknownEmailErr)
	assert.Equal(t, http.StatusUnauthorized, code.CreateHTTPError(code.ParseErrorCode(unknownEmailErr)).HTTPCode)

	// An unknown email and a wrong password must be indistinguishable.
	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ormDB := createTestDB(t)
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)
	accountUseCase, err := account.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)

	_, err = accountUseCase.Register("email@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)

	_, err = accountUseCase.Register("email@gmail.com", "bob", "jones", "other-password")
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
}

func TestGetAndListAccounts(t *testing.T) {
	ormDB := createTestDB(t)
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)
	accountUseCase, err := account.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)

	alice, err := accountUseCase.Register("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)
	_, err = accountUseCase.Register("bob@gmail.com", "bob", "jones", "password")
	assert.Nil(t, err)

	got, err := accountUseCase.Get(alice.ID)
	assert.Nil(t, err)
	assert.Equal(t, alice, got)

	_, err = accountUseCase.Get(42)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)

	accounts, err := accountUseCase.List(domain.Pagination{})
	assert.Nil(t, err)
	assert.Len(t, accounts, 2)

	accounts, err = accountUseCase.List(domain.Pagination{Limit: 1, Offset: 1})
	assert.Nil(t, err)
	assert.Len(t, accounts, 1)
}

func TestUpdateAndRemoveAccountStubs(t *testing.T) {
	ormDB := createTestDB(t)
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)
	accountUseCase, err := account.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)

	alice, err := accountUseCase.Register("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)

	assert.Equal(t, fmt.Sprintf("This action updates a #%d account", alice.ID), accountUseCase.Update(alice.ID))
	assert.Equal(t, fmt.Sprintf("This action removes a #%d account", alice.ID), accountUseCase.Remove(alice.ID))

	// The account itself is untouched.
	got, err := accountUseCase.Get(alice.ID)
	assert.Nil(t, err)
	assert.Equal(t, alice, got)
}
