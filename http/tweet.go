package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// registerTweetRoutes is a helper for registering all Tweet routes.
func (s *Server) registerTweetRoutes(r *mux.Router) {
	r.HandleFunc("/tweet", s.requireAuth(s.handleCreateTweet)).Methods("POST")
	r.HandleFunc("/tweet/{id:[0-9]+}/delete", s.requireAuth(s.handleDeleteTweet)).Methods("POST")
}

// handleCreateTweet handles the route "POST /tweet".
// It reads the content from the json body and creates a tweet for the authed user.
func (s *Server) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	var tweet domain.Tweet
	if err := json.NewDecoder(r.Body).Decode(&tweet); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	// The author is always the authed user, never taken from the body.
	user := s.getUserFromContext(r.Context())
	tweet.UserID = user.ID

	if err := s.ts.CreateTweet(&tweet); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(&tweet); err != nil {
		errs.LogError(r, err)
		return
	}
}

// handleDeleteTweet handles the route "POST /tweet/{id}/delete".
// Only the tweet's author may delete it.
func (s *Server) handleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	if err := s.ts.DeleteTweet(id, user.ID); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
