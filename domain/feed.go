package domain

// FeedItem is a tweet annotated with the viewing user's like state.
type FeedItem struct {
	Tweet
	IsLiked bool `json:"is_liked"`
}

// Profile is the header data of a profile page: the profile user, their
// follower / following counts, and whether the viewer follows them.
type Profile struct {
	User           User `json:"user"`
	FollowerCount  int  `json:"follower_count"`
	FollowingCount int  `json:"following_count"`
	ViewerFollows  bool `json:"viewer_follows"`
}

// FeedService composes timelines out of the tweet, follow and like services.
type FeedService interface {
	// HomeFeed returns the tweets of the viewer and of everyone the viewer
	// follows, newest first, annotated with the viewer's like state.
	HomeFeed(viewerID int) ([]FeedItem, error)
	// ProfileFeed returns the profile of the named user and only that
	// user's tweets, regardless of the viewer's follow relationships.
	// A viewerID of 0 means an anonymous viewer.
	ProfileFeed(viewerID int, username string) (*Profile, []FeedItem, error)
}
