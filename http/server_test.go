package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wtfTimeline/crud"
	"wtfTimeline/domain"
)

// testServer wires a Server against a fresh in-memory sqlite database.
func testServer(t *testing.T) (*Server, *crud.Services) {
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

	services, err := crud.NewServices(db,
		crud.WithUser("test-pepper", "test-hmac-key"),
		crud.WithTweet(),
		crud.WithFollow(),
		crud.WithLike(),
		crud.WithFeed(),
	)
	require.NoError(t, err)
	return NewServer(false, "32-byte-long-auth-key-for-tests0", services), services
}

func createUser(t *testing.T, s *crud.Services, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	require.NoError(t, s.User.Create(user))
	return user
}

func TestProfileFeed_Anonymous(t *testing.T) {
	server, services := testServer(t)
	jack := createUser(t, services, "jack")
	tweet := &domain.Tweet{UserID: jack.ID, Content: "hello world"}
	require.NoError(t, services.Tweet.CreateTweet(tweet))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/jack", nil)
	server.Handler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Profile domain.Profile    `json:"profile"`
		Tweets  []domain.FeedItem `json:"tweets"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "jack", body.Profile.User.Username)
	require.Len(t, body.Tweets, 1)
	assert.Equal(t, "hello world", body.Tweets[0].Content)
	assert.False(t, body.Tweets[0].IsLiked)
}

func TestProfileFeed_UnknownUser(t *testing.T) {
	server, _ := testServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/nobody", nil)
	server.Handler().ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomeFeed_RequiresAuth(t *testing.T) {
	server, _ := testServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	server.Handler().ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHomeFeed_WithRememberCookie(t *testing.T) {
	server, services := testServer(t)
	jack := createUser(t, services, "jack")
	ev := createUser(t, services, "ev")
	require.NoError(t, services.Follow.Follow(jack.ID, ev.ID))
	require.NoError(t, services.Tweet.CreateTweet(&domain.Tweet{UserID: ev.ID, Content: "Tweet Evan 1"}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "remember_token", Value: jack.Remember})
	server.Handler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Tweets []domain.FeedItem `json:"tweets"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Tweets, 1)
	assert.Equal(t, "Tweet Evan 1", body.Tweets[0].Content)
}
