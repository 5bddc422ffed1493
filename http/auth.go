package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"wtfTimeline/auth"
	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// registerAuthRoutes is a helper for registering all auth routes.
func (s *Server) registerAuthRoutes(r *mux.Router) {
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/logout", s.requireAuth(s.handleLogout)).Methods("POST")
}

// handleRegister handles the route "POST /register".
// It creates a new user record and signs the user in.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	if err := s.us.Create(&user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	if err := s.signIn(w, &user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(&user); err != nil {
		errs.LogError(r, err)
		return
	}
}

// handleLogin handles the route "POST /login".
// It authenticates the submitted credentials and signs the user in.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user, err := s.us.Authenticate(creds.Email, creds.Password)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	if err := s.signIn(w, user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		errs.LogError(r, err)
		return
	}
}

// handleLogout handles the route "POST /logout".
// It expires the session cookie and rotates the user's remember token,
// so the old cookie value can't be replayed.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "remember_token",
		Value:    "",
		Expires:  time.Now(),
		HttpOnly: true,
	})

	user := s.getUserFromContext(r.Context())
	token, err := auth.MakeRememberToken()
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}
	user.Remember = token
	if err := s.us.Update(user); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// signIn signs the given user in via a remember token cookie. A fresh token
// is generated and persisted if the user doesn't carry one yet.
func (s *Server) signIn(w http.ResponseWriter, user *domain.User) error {
	if user.Remember == "" {
		token, err := auth.MakeRememberToken()
		if err != nil {
			return err
		}
		user.Remember = token
		if err := s.us.Update(user); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "remember_token",
		Value:    user.Remember,
		HttpOnly: true,
	})
	return nil
}

// The authUser middleware tries to identify the requesting user by the
// remember token cookie and stores them in the request context. Requests
// without a valid cookie pass through anonymously.
func (s *Server) authUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("remember_token")
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.us.ByRemember(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		r = r.WithContext(auth.SetUser(r.Context(), user))
		next.ServeHTTP(w, r)
	})
}

// requireAuth wraps a handler and rejects anonymous requests.
// It assumes that the authUser middleware has already run.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.getUserFromContext(r.Context()) == nil {
			errs.ReturnError(w, r, errs.Errorf(errs.EUNAUTHORIZED, "You must be logged in."))
			return
		}
		next(w, r)
	}
}

// getUserFromContext returns the authed user, or nil for anonymous requests.
func (s *Server) getUserFromContext(ctx context.Context) *domain.User {
	return auth.GetUser(ctx)
}
