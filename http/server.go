package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"wtfTimeline/crud"
	"wtfTimeline/domain"
	"wtfTimeline/logger"
)

// Server provides the http functionality of the app, namely routing, request
// handling and middleware. It performs authentication and authorization
// before handing things over to one of the crud services.
type Server struct {
	router *mux.Router
	us     domain.UserService
	ts     domain.TweetService
	fs     domain.FollowService
	ls     domain.LikeService
	feed   domain.FeedService
}

// NewServer returns a new instance of the server, registers all necessary
// routes and gives their handlers access to the app services passed in.
func NewServer(isProd bool, csrfKey string, services *crud.Services) *Server {
	s := &Server{
		router: mux.NewRouter(),
		us:     services.User,
		ts:     services.Tweet,
		fs:     services.Follow,
		ls:     services.Like,
		feed:   services.Feed,
	}

	// Register routes of the auth system.
	s.registerAuthRoutes(s.router)

	// Register routes of the crud system.
	s.registerTweetRoutes(s.router)
	s.registerLikeRoutes(s.router)
	s.registerFollowRoutes(s.router)

	// The feed routes go last. GET /{username} is a catch-all and must not
	// shadow the fixed paths registered above.
	s.registerFeedRoutes(s.router)

	// Set up middleware that needs to run on every request. A new CSRF token
	// is issued on safe requests and checked on mutating ones.
	csrfMw := csrf.Protect([]byte(csrfKey), csrf.Secure(isProd), csrf.Path("/"))
	s.router.Use(csrfMw, setContentTypeJSON, s.logRequest, s.authUser)
	return s
}

// Handler exposes the router, so tests can drive the server
// through httptest without opening a socket.
func (s *Server) Handler() http.Handler {
	return s.router
}

// The setContentTypeJSON middleware sets the content type to "application/json".
func setContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// The logRequest middleware logs every request with its duration.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("duration", time.Since(start).String()),
		)
	})
}

// Run starts to listen and serve on the specified port.
func (s *Server) Run(port int) {
	addr := "localhost:" + strconv.Itoa(port)
	logger.Info("listening", logger.String("addr", addr))
	if err := http.ListenAndServe(addr, s.router); err != nil {
		logger.Fatal("server stopped", logger.Err(err))
	}
}
