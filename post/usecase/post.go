package usecase

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
)

type postUseCase struct {
	postRepo    domain.PostRepo
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreatePostUseCase(postRepo domain.PostRepo, accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.PostUseCase, error) {
	if logger == nil {
		return nil, errors.New("create service failed")
	}
	return &postUseCase{
		postRepo:    postRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

func (p *postUseCase) Create(authorID int64, title, content string) (*domain.PublicPost, error) {
	// The caller supplies an authenticated identity, but the account may have
	// vanished since the token was issued.
	author, err := p.accountRepo.Get(authorID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get author failed")
	}

	post, err := p.postRepo.Create(author.ID, title, content)
	if err != nil {
		return nil, errors.Wrap(err, "create post failed")
	}

	return &domain.PublicPost{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    author.ToPublic(),
		CreatedAt: post.CreatedAt,
	}, nil
}

func (p *postUseCase) GetAll(pagination domain.Pagination) ([]*domain.PublicPost, error) {
	posts, err := p.postRepo.ListAll(pagination)
	if err != nil {
		return nil, errors.Wrap(err, "list posts failed")
	}
	return posts, nil
}

// Delete checks existence before ownership, so a missing post is always "not
// found" and never "forbidden".
func (p *postUseCase) Delete(postID, userID int64) error {
	post, err := p.postRepo.Get(postID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.PostNotFound)
	} else if err != nil {
		return errors.Wrap(err, "get post failed")
	}

	if post.AuthorID != userID {
		return code.CreateErrorCode(http.StatusForbidden).AddCode(code.NotPostOwner)
	}

	rowsAffected, err := p.postRepo.Delete(postID)
	if err != nil {
		return errors.Wrap(err, "delete post failed")
	}
	if rowsAffected == 0 {
		// A concurrent delete won the race.
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.PostNotFound)
	}
	return nil
}
