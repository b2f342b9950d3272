package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bloglist/internal/config"
	"bloglist/internal/domain/analytics"
	"bloglist/internal/domain/models"
	"bloglist/internal/http/handlers/auth/login"
	authmw "bloglist/internal/http/handlers/middlewares/auth"
	"bloglist/internal/http/handlers/middlewares/compressor"
	logmw "bloglist/internal/http/handlers/middlewares/logger"
	"bloglist/internal/http/handlers/middlewares/ratelimit"
	"bloglist/internal/http/handlers/middlewares/realip"
	"bloglist/internal/http/handlers/post/create"
	"bloglist/internal/http/handlers/post/delete_by_id"
	"bloglist/internal/http/handlers/post/find_by_id"
	postlist "bloglist/internal/http/handlers/post/list"
	"bloglist/internal/http/handlers/post/update"
	"bloglist/internal/http/handlers/stats/summary"
	"bloglist/internal/http/handlers/system/ping"
	userlist "bloglist/internal/http/handlers/user/list"
	"bloglist/internal/http/handlers/user/register"
	"bloglist/internal/http/httputils"
	"bloglist/internal/services/blogs"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const loginRateWindow = time.Minute

//go:generate mockgen -source=server.go -destination=../mocks/mock_server.go -package=mocks
type Authentication interface {
	Register(ctx context.Context, username, name, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, models.User, error)
	Authenticate(header string) (models.Identity, error)
}

type ServiceBlogs interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Create(ctx context.Context, actor models.Identity, post models.Post) (models.Post, error)
	Update(ctx context.Context, actor models.Identity, id string, upd models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, actor models.Identity, id string) error
	ListUsers(ctx context.Context) ([]blogs.UserWithPosts, error)
	Stats(ctx context.Context) (analytics.Summary, error)
	PingDataBase(ctx context.Context) error
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	blogService ServiceBlogs
	authService Authentication
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, svc ServiceBlogs, auth Authentication) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("service cannot be nil")
	}
	if auth == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		blogService: svc,
		authService: auth,
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.middlewares(s.router),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// middlewares wraps the whole router so unmatched routes and CORS preflights
// are logged and answered too. Outermost first: request id, real ip, logging, cors, gzip.
// Forwarding headers are honoured only from cfg.TrustedProxies.
func (s *Server) middlewares(h http.Handler) http.Handler {
	h = compressor.MiddlewareCompressing()(h)
	h = cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding"},
		MaxAge:         300,
	}).Handler(h)
	h = logmw.MiddlewareLogging(s.log)(h)
	h = realip.MiddlewareRealIP(s.cfg.TrustedProxies)(h)
	h = middleware.RequestID(h)
	return h
}

func (s *Server) setupRoutes() {
	withAuth := authmw.MiddlewareAuth(s.authService, s.log)
	loginLimit := ratelimit.MiddlewareLimit(s.cfg.LoginRateLimit, loginRateWindow)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, "unknown endpoint")
	})

	/*
		Public routes (without auth)
	*/
	s.router.HandleFunc("/ping", ping.HandlerPing(s.blogService, s.handlerLog("ping"))).Methods(http.MethodGet)
	s.router.HandleFunc("/posts", postlist.HandlerListPosts(s.blogService, s.handlerLog("post_list"))).Methods(http.MethodGet)
	s.router.HandleFunc("/posts/{id}", find_by_id.HandlerGetPost(s.blogService, s.handlerLog("post_get"))).Methods(http.MethodGet)
	s.router.HandleFunc("/users", userlist.HandlerListUsers(s.blogService, s.handlerLog("user_list"))).Methods(http.MethodGet)
	s.router.HandleFunc("/users", register.HandlerRegisterUser(s.authService, s.handlerLog("user_register"))).Methods(http.MethodPost) // 201
	s.router.HandleFunc("/stats", summary.HandlerStats(s.blogService, s.handlerLog("stats"))).Methods(http.MethodGet)
	s.router.Handle("/login", loginLimit(login.HandlerLogin(s.authService, s.handlerLog("login")))).Methods(http.MethodPost)

	/*
		Protected routes (with auth), owner checks live in the service
	*/
	s.router.Handle("/posts", withAuth(create.HandlerCreatePost(s.blogService, s.handlerLog("post_create")))).Methods(http.MethodPost)              // 201
	s.router.Handle("/posts/{id}", withAuth(update.HandlerUpdatePost(s.blogService, s.handlerLog("post_update")))).Methods(http.MethodPut)          // 200
	s.router.Handle("/posts/{id}", withAuth(delete_by_id.HandlerDeletePost(s.blogService, s.handlerLog("post_delete")))).Methods(http.MethodDelete) // 204
}

func (s *Server) handlerLog(name string) *zerolog.Logger {
	l := s.log.With().Str("handler", name).Logger()
	return &l
}

// Handler exposes the full middleware chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
