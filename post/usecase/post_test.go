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
	postSQLRepo "github.com/yhlin/social-network/post/repository/post/mysql"
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
CREATE TABLE post (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  author_id INTEGER NOT NULL,
  created_at DATETIME
);`

func createPostUseCase(t *testing.T) (domain.PostUseCase, domain.AccountRepo) {
	t.Helper()

	ormDB, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	assert.Nil(t, err)
	assert.Nil(t, ormDB.Exec(testSchema).Error)

	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "go.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	accountRepo := accountSQLRepo.CreateAccountRepo(ormDB)
	postUseCase, err := CreatePostUseCase(postSQLRepo.CreatePostRepo(ormDB), accountRepo, logger)
	assert.Nil(t, err)

	return postUseCase, accountRepo
}

func TestCreatePostWithUnknownAuthor(t *testing.T) {
	postUseCase, _ := createPostUseCase(t)

	_, err := postUseCase.Create(42, "title", "content")
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
}

func TestDeletePost(t *testing.T) {
	postUseCase, accountRepo := createPostUseCase(t)

	alice, err := accountRepo.Create("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)
	bob, err := accountRepo.Create("bob@gmail.com", "bob", "jones", "password")
	assert.Nil(t, err)

	post, err := postUseCase.Create(alice.ID, "title", "content")
	assert.Nil(t, err)
	assert.Equal(t, alice.ID, post.Author.ID)

	// Existence is checked before ownership.
	err = postUseCase.Delete(42, bob.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)

	err = postUseCase.Delete(post.ID, bob.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)

	assert.Nil(t, postUseCase.Delete(post.ID, alice.ID))

	err = postUseCase.Delete(post.ID, alice.ID)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, code.CreateHTTPError(code.ParseErrorCode(err)).HTTPCode)
}

func TestGetAllPosts(t *testing.T) {
	postUseCase, accountRepo := createPostUseCase(t)

	alice, err := accountRepo.Create("alice@gmail.com", "alice", "smith", "password")
	assert.Nil(t, err)

	first, err := postUseCase.Create(alice.ID, "first", "content")
	assert.Nil(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := postUseCase.Create(alice.ID, "second", "content")
	assert.Nil(t, err)

	posts, err := postUseCase.GetAll(domain.Pagination{})
	assert.Nil(t, err)
	assert.Len(t, posts, 2)
	// Newest first, author resolved.
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Equal(t, "alice@gmail.com", posts[0].Author.Email)

	posts, err = postUseCase.GetAll(domain.Pagination{Limit: 1})
	assert.Nil(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, second.ID, posts[0].ID)

	assert.Nil(t, postUseCase.Delete(second.ID, alice.ID))

	posts, err = postUseCase.GetAll(domain.Pagination{})
	assert.Nil(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, first.ID, posts[0].ID)
}
