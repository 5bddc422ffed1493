package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// registerFeedRoutes is a helper for registering all Feed routes.
// GET /{username} is a catch-all, so these must be registered last.
func (s *Server) registerFeedRoutes(r *mux.Router) {
	// The authed user's home feed: their own tweets plus the tweets
	// of everyone they follow.
	r.HandleFunc("/", s.requireAuth(s.handleHomeFeed)).Methods("GET")

	// A user's profile feed: only that user's tweets. Anonymous
	// viewers are allowed.
	r.HandleFunc("/{username:[a-z0-9_]+}", s.handleProfileFeed).Methods("GET")
}

// handleHomeFeed handles the route "GET /".
func (s *Server) handleHomeFeed(w http.ResponseWriter, r *http.Request) {
	viewer := s.getUserFromContext(r.Context())
	items, err := s.feed.HomeFeed(viewer.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := map[string]interface{}{
		"tweets": items,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		errs.LogError(r, err)
		return
	}
}

// handleProfileFeed handles the route "GET /{username}".
// It shows only the named user's tweets, regardless of who they follow.
func (s *Server) handleProfileFeed(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	// Anonymous viewers get a zero viewer ID: nothing is marked as liked.
	var viewerID int
	if viewer := s.getUserFromContext(r.Context()); viewer != nil {
		viewerID = viewer.ID
	}

	profile, items, err := s.feed.ProfileFeed(viewerID, username)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := struct {
		Profile *domain.Profile   `json:"profile"`
		Tweets  []domain.FeedItem `json:"tweets"`
	}{
		Profile: profile,
		Tweets:  items,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		errs.LogError(r, err)
		return
	}
}
