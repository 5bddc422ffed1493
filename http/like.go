package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"wtfTimeline/errs"
)

// registerLikeRoutes is a helper for registering all Like routes.
func (s *Server) registerLikeRoutes(r *mux.Router) {
	// Toggle the authed user's like on a tweet.
	r.HandleFunc("/tweet/{id:[0-9]+}/like", s.requireAuth(s.handleToggleLike)).Methods("POST")
}

// handleToggleLike handles the route "POST /tweet/{id}/like".
// It likes the tweet if the authed user doesn't like it yet, otherwise it
// removes the like. The response carries the resulting state.
func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	liked, likesCount, err := s.ls.ToggleLike(user.ID, id)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := map[string]interface{}{
		"liked":       liked,
		"likes_count": likesCount,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		errs.LogError(r, err)
		return
	}
}
