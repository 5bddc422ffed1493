package domain

import "time"

// Follow represents a directed edge in the follow graph. The FollowerID is
// the user that follows, the FollowedID is the user being followed. The
// composite unique index guarantees at most one edge per ordered pair.
type Follow struct {
	ID         int `json:"id"`
	FollowerID int `json:"follower_id" gorm:"notNull;uniqueIndex:idx_follower_followed"`
	FollowedID int `json:"followed_id" gorm:"notNull;uniqueIndex:idx_follower_followed"`

	CreatedAt time.Time `json:"created_at"`
}

// FollowService is a set of methods to manipulate and work with the Follow
// model. Follow and Unfollow are idempotent: repeating either leaves the
// edge set unchanged and returns no error.
type FollowService interface {
	Follow(followerID, followedID int) error
	Unfollow(followerID, followedID int) error
	IsFollowing(followerID, followedID int) (bool, error)
	Following(userID int) ([]User, error)
	Followers(userID int) ([]User, error)
	FollowingIDs(userID int) ([]int, error)
	CountFollowing(userID int) (int, error)
	CountFollowers(userID int) (int, error)
}
