package usecase

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	"github.com/yhlin/social-network/kit/code"
	loggerKit "github.com/yhlin/social-network/kit/logger"
	ormKit "github.com/yhlin/social-network/kit/orm"
)

type followUseCase struct {
	followRepo domain.FollowRepo
	logger     *loggerKit.Logger
}

func CreateFollowUseCase(followRepo domain.FollowRepo, logger *loggerKit.Logger) (domain.FollowUseCase, error) {
	if logger == nil {
		return nil, errors.New("create service failed")
	}
	return &followUseCase{
		followRepo: followRepo,
		logger:     logger,
	}, nil
}

func (f *followUseCase) Follow(followerID, followingID int64) error {
	// Rejected before any storage write.
	if followerID == followingID {
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.SelfFollow)
	}

	_, err := f.followRepo.Create(followerID, followingID)
	if mysqlErr, ok := ormKit.ConvertMySQLErr(err); ok && errors.Is(mysqlErr, ormKit.ErrDuplicatedKey) {
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.AlreadyFollowing)
	} else if errors.Is(err, ormKit.ErrDuplicatedKey) {
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.AlreadyFollowing)
	} else if err != nil {
		return errors.Wrap(err, "create follow failed")
	}
	return nil
}

func (f *followUseCase) Unfollow(followerID, followingID int64) error {
	rowsAffected, err := f.followRepo.Delete(followerID, followingID)
	if err != nil {
		return errors.Wrap(err, "delete follow failed")
	}
	if rowsAffected == 0 {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.FollowNotFound)
	}
	return nil
}

func (f *followUseCase) CountFollowers(userID int64) (int64, error) {
	count, err := f.followRepo.CountByFollowing(userID)
	if err != nil {
		return 0, errors.Wrap(err, "count followers failed")
	}
	return count, nil
}

func (f *followUseCase) GetFollowers(userID int64, pagination domain.Pagination) ([]*domain.Follower, error) {
	followers, err := f.followRepo.ListByFollowing(userID, pagination)
	if err != nil {
		return nil, errors.Wrap(err, "get followers failed")
	}
	return followers, nil
}
