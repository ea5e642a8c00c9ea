package usecase

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	accountSQLRepo "github.com/yhlin/social-network/auth/repository/account/mysql"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
	followSQLRepo "github.com/yhlin/social-network/social/repository/follow/mysql"
)

const testSchema = `
CREATE TABLE account (
  id INTEGER PRIMARY KEY,
  firstname TEXT NOT NULL,
  lastname TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE TABLE follows (
  id INTEGER PRIMARY KEY,
  follower_id INTEGER NOT NULL,
  following_id INTEGER NOT NULL,
  created_at DATETIME,
  UNIQUE(follower_id, following_id)
);`

func createFollowUseCase(t *testing.T) (domain.FollowUseCase, domain.AccountRepo) {
	t.Helper()

	ormDB, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(testSchema).Error)

	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	followUseCase, err := CreateFollowUseCase(followSQLRepo.CreateFollowRepo(ormDB), logger)
	assert.Nil(t, err)

	return followUseCase, accountSQLRepo.CreateAccountRepo(ormDB)
}

func TestFollowYourself(t *testing.T) {
	followUseCase, _ := createFollowUseCase(t)

	// Rejected regardless of whether the account exists.
	err := followUseCase.Follow(1, 1)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
}

func TestFollowAndUnfollow(t *testing.T) {
	followUseCase, accountRepo := createFollowUseCase(t)

	alice, err := accountRepo.Create("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)
	bob, err := accountRepo.Create("bob@gmail.com", "bob", "jones", "password")
	assert.Nil(t, err)

	err = followUseCase.Unfollow(alice.ID, bob.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)

	assert.Nil(t, followUseCase.Follow(alice.ID, bob.ID))

	err = followUseCase.Follow(alice.ID, bob.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)

	assert.Nil(t, followUseCase.Unfollow(alice.ID, bob.ID))

	err = followUseCase.Unfollow(alice.ID, bob.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
}

func TestCountAndListFollowers(t *testing.T) {
	followUseCase, accountRepo := createFollowUseCase(t)

	alice, err := accountRepo.Create("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)
	bob, err := accountRepo.Create("bob@gmail.com", "bob", "jones", "password")
	assert.Nil(t, err)
	carol, err := accountRepo.Create("carol@gmail.com", "carol", "brown", "password")
	assert.Nil(t, err)

	assert.Nil(t, followUseCase.Follow(bob.ID, alice.ID))
	time.Sleep(10 * time.Millisecond)
	assert.Nil(t, followUseCase.Follow(carol.ID, alice.ID))

	count, err := followUseCase.CountFollowers(alice.ID)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), count)

	count, err = followUseCase.CountFollowers(bob.ID)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)

	followers, err := followUseCase.GetFollowers(alice.ID, domain.Pagination{})
	assert.Nil(t, err)
	assert.Len(t, followers, 2)
	// Newest first.
	assert.Equal(t, carol.ID, followers[0].Follower.ID)
	assert.Equal(t, "carol@gmail.com", followers[0].Follower.Email)
	assert.Equal(t, bob.ID, followers[1].Follower.ID)

	followers, err = followUseCase.GetFollowers(alice.ID, domain.Pagination{Limit: 1, Offset: 1})
	assert.Nil(t, err)
	assert.Len(t, followers, 1)
	assert.Equal(t, bob.ID, followers[0].Follower.ID)
}
