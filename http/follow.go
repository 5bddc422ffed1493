package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wtfTimeline/errs"
)

// registerFollowRoutes is a helper for registering all Follow routes.
func (s *Server) registerFollowRoutes(r *mux.Router) {
	r.HandleFunc("/follow", s.requireAuth(s.handleFollow)).Methods("POST")
	r.HandleFunc("/unfollow", s.requireAuth(s.handleUnfollow)).Methods("POST")
}

// followRequest is the json body of follow and unfollow requests.
type followRequest struct {
	Username string `json:"username"`
}

// handleFollow handles the route "POST /follow".
// It makes the authed user follow the named user. Following a user twice
// is a no-op, so the endpoint is safe to retry.
func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	followed, err := s.us.ByUsername(req.Username)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	follower := s.getUserFromContext(r.Context())
	if err := s.fs.Follow(follower.ID, followed.ID); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleUnfollow handles the route "POST /unfollow".
// It makes the authed user unfollow the named user. Unfollowing a user that
// isn't followed is a no-op.
func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	followed, err := s.us.ByUsername(req.Username)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	follower := s.getUserFromContext(r.Context())
	if err := s.fs.Unfollow(follower.ID, followed.ID); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
