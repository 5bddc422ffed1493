package domain

import "time"

// Like represents the fact that a user has liked a tweet. At most one Like
// exists per (user, tweet) pair, enforced by the toggle semantics and backed
// by the composite unique index.
type Like struct {
	ID      int `json:"id"`
	UserID  int `json:"user_id" gorm:"notNull;uniqueIndex:idx_user_tweet"`
	TweetID int `json:"tweet_id" gorm:"notNull;uniqueIndex:idx_user_tweet"`

	CreatedAt time.Time `json:"created_at"`
}

// LikeService is a set of methods to manipulate and work with the Like model.
// ToggleLike is the only way likes are created or removed. It adjusts the
// tweet's LikesCount by an atomic delta in the same transaction as the Like
// row write, so concurrent toggles on the same tweet never lose an update.
type LikeService interface {
	// ToggleLike likes the tweet if the user doesn't like it yet, otherwise
	// it removes the like. It returns the resulting liked state and the
	// tweet's new likes count.
	ToggleLike(userID, tweetID int) (liked bool, likesCount int, err error)
	IsLikedBy(userID, tweetID int) (bool, error)
	// LikedTweetIDs returns the subset of tweetIDs that the user likes,
	// as a set. It exists so the feed can annotate in a single query.
	LikedTweetIDs(userID int, tweetIDs []int) (map[int]bool, error)
}
