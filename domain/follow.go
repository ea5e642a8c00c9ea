package domain

import "time"

// Follow is a directed edge: the follower account follows the following
// account. Self edges are forbidden and each ordered pair is unique.
type Follow struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"follower_id"`
	FollowingID int64     `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Follower struct {
	Follower  *PublicAccount `json:"follower"`
	CreatedAt time.Time      `json:"created_at"`
}

type FollowRepo interface {
	Create(followerID, followingID int64) (*Follow, error)
	Delete(followerID, followingID int64) (rowsAffected int64, err error)
	CountByFollowing(followingID int64) (int64, error)
	ListByFollowing(followingID int64, pagination Pagination) ([]*Follower, error)
}

type FollowUseCase interface {
	Follow(followerID, followingID int64) error
	Unfollow(followerID, followingID int64) error
	CountFollowers(userID int64) (int64, error)
	GetFollowers(userID int64, pagination Pagination) ([]*Follower, error)
}
