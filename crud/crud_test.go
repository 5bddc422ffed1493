package crud

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wtfTimeline/domain"
)

// testServices spins up a fresh in-memory sqlite database with the full
// schema and returns the crud services wired against it. The database name
// is derived from the test name, so tests don't see each other's data.
func testServices(t *testing.T) *Services {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		domain.User{},
		domain.Tweet{},
		domain.Follow{},
		domain.Like{},
	))

	services, err := NewServices(db,
		WithUser("test-pepper", "test-hmac-key"),
		WithTweet(),
		WithFollow(),
		WithLike(),
		WithFeed(),
	)
	require.NoError(t, err)
	return services
}

// createUser registers a user with valid defaults.
func createUser(t *testing.T, s *Services, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	require.NoError(t, s.User.Create(user))
	return user
}

// createTweet posts a tweet for the given user.
func createTweet(t *testing.T, s *Services, user *domain.User, content string) *domain.Tweet {
	t.Helper()
	tweet := &domain.Tweet{UserID: user.ID, Content: content}
	require.NoError(t, s.Tweet.CreateTweet(tweet))
	return tweet
}

// setTweetCreatedAt backdates a tweet, bypassing gorm's timestamp tracking.
func setTweetCreatedAt(t *testing.T, s *Services, tweetID int, createdAt time.Time) {
	t.Helper()
	err := s.db.Model(&domain.Tweet{}).
		Where("id = ?", tweetID).
		UpdateColumn("created_at", createdAt).Error
	require.NoError(t, err)
}

// feedContents maps a feed to its tweet contents, in feed order.
func feedContents(items []domain.FeedItem) []string {
	contents := make([]string, len(items))
	for i, item := range items {
		contents[i] = item.Content
	}
	return contents
}
