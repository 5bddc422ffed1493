package crud

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

func TestCreateTweet(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	tweet := &domain.Tweet{UserID: jack.ID, Content: "hello world"}
	require.NoError(t, s.Tweet.CreateTweet(tweet))
	assert.NotZero(t, tweet.ID)
	assert.Equal(t, "jack", tweet.User.Username)
	assert.Equal(t, 0, tweet.LikesCount)
}

func TestCreateTweet_ContentLength(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	// Exactly at the limit is fine.
	atLimit := &domain.Tweet{UserID: jack.ID, Content: strings.Repeat("a", domain.MaxTweetLength)}
	require.NoError(t, s.Tweet.CreateTweet(atLimit))

	// One over is rejected.
	over := &domain.Tweet{UserID: jack.ID, Content: strings.Repeat("a", domain.MaxTweetLength+1)}
	err := s.Tweet.CreateTweet(over)
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	// The limit counts runes, not bytes.
	multibyte := &domain.Tweet{UserID: jack.ID, Content: strings.Repeat("ü", domain.MaxTweetLength)}
	require.NoError(t, s.Tweet.CreateTweet(multibyte))
}

// Empty content is allowed, matching the original form behavior.
func TestCreateTweet_EmptyContentAllowed(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	tweet := &domain.Tweet{UserID: jack.ID, Content: ""}
	require.NoError(t, s.Tweet.CreateTweet(tweet))
}

func TestCreateTweet_RequiresAuthor(t *testing.T) {
	s := testServices(t)

	tweet := &domain.Tweet{Content: "orphan"}
	err := s.Tweet.CreateTweet(tweet)
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestDeleteTweet_OnlyByAuthor(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")
	ev := createUser(t, s, "ev")
	tweet := createTweet(t, s, jack, "hello")

	err := s.Tweet.DeleteTweet(tweet.ID, ev.ID)
	assert.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(err))

	// The failed delete must not have touched the record.
	_, err = s.Tweet.ByID(tweet.ID)
	require.NoError(t, err)

	require.NoError(t, s.Tweet.DeleteTweet(tweet.ID, jack.ID))
	_, err = s.Tweet.ByID(tweet.ID)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestDeleteTweet_CascadesLikes(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")
	ev := createUser(t, s, "ev")
	tweet := createTweet(t, s, jack, "hello")

	_, _, err := s.Like.ToggleLike(ev.ID, tweet.ID)
	require.NoError(t, err)

	require.NoError(t, s.Tweet.DeleteTweet(tweet.ID, jack.ID))

	var count int64
	require.NoError(t, s.db.Model(&domain.Like{}).Where("tweet_id = ?", tweet.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteTweet_Unknown(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	err := s.Tweet.DeleteTweet(9999, jack.ID)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestListFor_OrderedNewestFirst(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	t1 := createTweet(t, s, jack, "first")
	t2 := createTweet(t, s, jack, "second")
	t3 := createTweet(t, s, jack, "third")
	setTweetCreatedAt(t, s, t1.ID, time.Date(2014, 6, 22, 21, 55, 10, 0, time.UTC))
	setTweetCreatedAt(t, s, t2.ID, time.Date(2015, 6, 22, 21, 55, 10, 0, time.UTC))
	setTweetCreatedAt(t, s, t3.ID, time.Date(2016, 6, 22, 21, 55, 10, 0, time.UTC))

	tweets, err := s.Tweet.ListFor(jack.ID, nil)
	require.NoError(t, err)
	require.Len(t, tweets, 3)
	assert.Equal(t, []string{"third", "second", "first"},
		[]string{tweets[0].Content, tweets[1].Content, tweets[2].Content})
}

// Equal timestamps fall back to descending id, so the order is stable.
func TestListFor_TiesBrokenByID(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")

	t1 := createTweet(t, s, jack, "older insert")
	t2 := createTweet(t, s, jack, "newer insert")
	same := time.Date(2015, 6, 22, 21, 55, 10, 0, time.UTC)
	setTweetCreatedAt(t, s, t1.ID, same)
	setTweetCreatedAt(t, s, t2.ID, same)

	tweets, err := s.Tweet.ListFor(jack.ID, nil)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "newer insert", tweets[0].Content)
	assert.Equal(t, "older insert", tweets[1].Content)
}

func TestListFor_IncludesFollowedUsers(t *testing.T) {
	s := testServices(t)
	jack := createUser(t, s, "jack")
	ev := createUser(t, s, "ev")
	larry := createUser(t, s, "larry")

	createTweet(t, s, jack, "jack 1")
	createTweet(t, s, ev, "ev 1")
	createTweet(t, s, larry, "larry 1")

	tweets, err := s.Tweet.ListFor(jack.ID, []int{ev.ID})
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	for _, tweet := range tweets {
		assert.NotEqual(t, "larry 1", tweet.Content)
	}
}
