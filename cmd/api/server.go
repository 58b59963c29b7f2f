package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mansoorhotak/repairo-user-management-api/account"
	"github.com/mansoorhotak/repairo-user-management-api/auth"
	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

type authService interface {
	RegisterUser(ctx context.Context, req auth.RegisterUserRequest) (user.User, error)
	RegisterProvider(ctx context.Context, req auth.RegisterProviderRequest) (provider.Provider, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error
}

type userService interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	List(ctx context.Context, limit int) ([]user.User, error)
	UpdateProfile(ctx context.Context, id string, params user.UpdateParams) (user.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type providerService interface {
	GetByID(ctx context.Context, id string) (provider.Provider, error)
	List(ctx context.Context, limit int) ([]provider.Provider, error)
	ListByExpertise(ctx context.Context, tag string, limit int) ([]provider.Provider, error)
	UpdateProfile(ctx context.Context, id string, params provider.UpdateParams) (provider.Provider, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type tokenVerifier interface {
	Verify(tokenString string) (auth.Claims, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Server owns the HTTP surface and dispatches into the domain services.
type Server struct {
	authService     authService
	userService     userService
	providerService providerService
	tokens          tokenVerifier
	db              pinger
	logger          *slog.Logger
}

// NewServer wires the handlers together.
func NewServer(authSvc authService, userSvc userService, providerSvc providerService, tokens tokenVerifier, db pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		authService:     authSvc,
		userService:     userSvc,
		providerService: providerSvc,
		tokens:          tokens,
		db:              db,
		logger:          logger,
	}
}

// Routes builds the router: public auth endpoints, kind-gated profile
// routes, and bearer-protected admin listings.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegisterUser)
		r.Post("/register-provider", s.handleRegisterProvider)
		r.Post("/login", s.handleLogin)
		r.Post("/forgot-password", s.handleForgotPassword)
		r.Post("/reset-password", s.handleResetPassword)
		r.Get("/expertise-categories", s.handleExpertiseCategories)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Route("/profile", func(r chi.Router) {
			r.Use(s.requireKind(account.KindUser))
			r.Get("/", s.handleGetUserProfile)
			r.Put("/", s.handleUpdateUserProfile)
			r.Delete("/", s.handleDeleteUserProfile)
		})
		r.Get("/", s.handleListUsers)
		r.Get("/{id}", s.handleGetUser)
	})

	r.Route("/service-providers", func(r chi.Router) {
		r.Get("/expertise/{tag}", s.handleProvidersByExpertise)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Route("/profile", func(r chi.Router) {
				r.Use(s.requireKind(account.KindProvider))
				r.Get("/", s.handleGetProviderProfile)
				r.Put("/", s.handleUpdateProviderProfile)
				r.Delete("/", s.handleDeleteProviderProfile)
			})
			r.Get("/", s.handleListProviders)
			r.Get("/{id}", s.handleGetProvider)
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			respondError(w, http.StatusInternalServerError, "database unavailable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
