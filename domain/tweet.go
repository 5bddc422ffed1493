package domain

import "time"

// MaxTweetLength is the maximum number of characters (runes) a tweet may have.
const MaxTweetLength = 140

// Tweet represents a short text post authored by a user. LikesCount is
// denormalized and must always equal the number of Like records referencing
// the tweet. The LikeService is the only writer of that column.
type Tweet struct {
	ID         int    `json:"id"`
	UserID     int    `json:"user_id" gorm:"notNull;index"`
	User       User   `json:"user"`
	Content    string `json:"content"`
	LikesCount int    `json:"likes_count" gorm:"notNull;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TweetService is a set of methods to manipulate and work with the Tweet model.
type TweetService interface {
	CreateTweet(tweet *Tweet) error
	// DeleteTweet deletes a tweet and its likes. It fails with EUNAUTHORIZED
	// unless requestingUserID is the tweet's author.
	DeleteTweet(tweetID, requestingUserID int) error
	ByID(id int) (*Tweet, error)
	// ByUserID returns the tweets of a single user, newest first.
	ByUserID(userID int) ([]Tweet, error)
	// ListFor returns the tweets authored by userID or by any member of
	// followedIDs, newest first, ties broken by descending id.
	ListFor(userID int, followedIDs []int) ([]Tweet, error)
}
