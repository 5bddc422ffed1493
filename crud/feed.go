package crud

import (
	"wtfTimeline/domain"
)

// FeedService composes timelines. It doesn't touch the database itself,
// it only orchestrates the user, tweet, follow and like services.
// It implements the domain.FeedService interface.
type FeedService struct {
	us domain.UserService
	ts domain.TweetService
	fs domain.FollowService
	ls domain.LikeService
}

// NewFeedService returns an instance of FeedService.
func NewFeedService(us domain.UserService, ts domain.TweetService, fs domain.FollowService, ls domain.LikeService) *FeedService {
	return &FeedService{
		us: us,
		ts: ts,
		fs: fs,
		ls: ls,
	}
}

// Ensure the FeedService struct properly implements the domain.FeedService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FeedService = &FeedService{}

// HomeFeed returns the tweets of the viewer and of everyone the viewer
// follows, newest first, each annotated with the viewer's like state.
func (s *FeedService) HomeFeed(viewerID int) ([]domain.FeedItem, error) {
	followedIDs, err := s.fs.FollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	tweets, err := s.ts.ListFor(viewerID, followedIDs)
	if err != nil {
		return nil, err
	}
	return s.annotate(viewerID, tweets)
}

// ProfileFeed returns the profile header data of the named user and only
// that user's tweets, regardless of the viewer's follow relationships.
// A viewerID of 0 means an anonymous viewer: nothing is marked as liked
// and ViewerFollows is false.
func (s *FeedService) ProfileFeed(viewerID int, username string) (*domain.Profile, []domain.FeedItem, error) {
	user, err := s.us.ByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	profile := domain.Profile{User: *user}
	if profile.FollowerCount, err = s.fs.CountFollowers(user.ID); err != nil {
		return nil, nil, err
	}
	if profile.FollowingCount, err = s.fs.CountFollowing(user.ID); err != nil {
		return nil, nil, err
	}
	if viewerID > 0 && viewerID != user.ID {
		if profile.ViewerFollows, err = s.fs.IsFollowing(viewerID, user.ID); err != nil {
			return nil, nil, err
		}
	}

	tweets, err := s.ts.ByUserID(user.ID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.annotate(viewerID, tweets)
	if err != nil {
		return nil, nil, err
	}
	return &profile, items, nil
}

// annotate attaches the viewer's like state to each tweet. The like lookup
// is a single batch query over all tweet IDs in the feed.
func (s *FeedService) annotate(viewerID int, tweets []domain.Tweet) ([]domain.FeedItem, error) {
	ids := make([]int, len(tweets))
	for i := range tweets {
		ids[i] = tweets[i].ID
	}

	liked := map[int]bool{}
	if viewerID > 0 {
		var err error
		liked, err = s.ls.LikedTweetIDs(viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]domain.FeedItem, len(tweets))
	for i, tweet := range tweets {
		items[i] = domain.FeedItem{
			Tweet:   tweet,
			IsLiked: liked[tweet.ID],
		}
	}
	return items, nil
}
