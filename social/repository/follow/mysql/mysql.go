package mysql

import (
	"time"

	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	ormKit "github.com/yhlin/social-network/kit/orm"
	utilKit "github.com/yhlin/social-network/kit/util"
)

type followEntity struct {
	domain.Follow
}

func (followEntity) TableName() string {
	return "follows"
}

type followRepo struct {
	db *ormKit.DB
}

func CreateFollowRepo(db *ormKit.DB) domain.FollowRepo {
	return &followRepo{
		db: db,
	}
}

func (f *followRepo) Create(followerID, followingID int64) (*domain.Follow, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	follow := followEntity{
		Follow: domain.Follow{
			ID:          uniqueIDGenerate.Generate().GetInt64(),
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   time.Now(),
		},
	}

	if err := f.db.Create(&follow).Error; err != nil {
		return nil, errors.Wrap(err, "create follow failed")
	}

	return &follow.Follow, nil
}

// Delete reports how many rows matched. The caller decides whether zero is an
// error; probing for existence first would race a concurrent unfollow.
func (f *followRepo) Delete(followerID, followingID int64) (int64, error) {
	result := f.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&followEntity{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete follow failed")
	}
	return result.RowsAffected, nil
}

func (f *followRepo) CountByFollowing(followingID int64) (int64, error) {
	var count int64
	if err := f.db.Model(&followEntity{}).Where("following_id = ?", followingID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count follows failed")
	}
	return count, nil
}

type followerRow struct {
	FollowerID int64
	Email      string
	Firstname  string
	Lastname   string
	CreatedAt  time.Time
}

func (f *followRepo) ListByFollowing(followingID int64, pagination domain.Pagination) ([]*domain.Follower, error) {
	var rows []followerRow
	tx := f.db.Table("follows").
		Select("follows.follower_id, account.email, account.firstname, account.lastname, follows.created_at").
		Joins("JOIN account ON account.id = follows.follower_id").
		Where("follows.following_id = ?", followingID).
		Order("follows.created_at DESC")
	if pagination.Limit > 0 {
		tx = tx.Limit(pagination.Limit)
	}
	if pagination.Offset > 0 {
		tx = tx.Offset(pagination.Offset)
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list follows failed")
	}

	followers := make([]*domain.Follower, 0, len(rows))
	for _, row := range rows {
		followers = append(followers, &domain.Follower{
			Follower: &domain.PublicAccount{
				ID:        row.FollowerID,
				Email:     row.Email,
				Firstname: row.Firstname,
				Lastname:  row.Lastname,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return followers, nil
}
