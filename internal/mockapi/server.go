// Package mockapi is an in-memory rendition of the Eastlify backend. It
// speaks the same wire contracts the real API does, so the client and its
// store can be exercised end to end without any external service.
package mockapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
	"github.com/Liban-hassan-noor/eastlify-client/internal/validation"
)

// Server holds the mock backend state and its router.
type Server struct {
	data     *dataset
	tokens   *auth.TokenService
	validate *validation.Validator
	router   *chi.Mux
	logger   *slog.Logger
}

// NewServer creates a mock backend with an empty dataset. Call Seed to
// load the demo shops.
func NewServer(tokens *auth.TokenService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		data:     newDataset(),
		tokens:   tokens,
		validate: validation.New(),
		router:   chi.NewRouter(),
		logger:   logger.With("component", "mockapi"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack. CORS is wide open; a
// browser frontend on any origin talks to this backend during development.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.With(s.requireAuth).Get("/profile", s.handleProfile)
		r.With(s.requireAuth).Put("/profile", s.handleUpdateProfile)
	})

	s.router.Route("/shops", func(r chi.Router) {
		r.Get("/", s.handleListShops)
		r.With(s.requireAuth).Get("/my/shop", s.handleMyShop)
		r.Get("/{id}", s.handleGetShop)
		r.With(s.requireAuth).Put("/{id}", s.handleUpdateShop)
		r.With(s.requireAuth).Delete("/{id}", s.handleDeleteShop)
		r.Post("/{id}/activity", s.handleActivity)
		r.With(s.requireAuth).Post("/{id}/sale", s.handleSale)
		r.With(s.requireAuth).Get("/{id}/activities", s.handleListActivities)
	})

	s.router.Route("/products", func(r chi.Router) {
		r.Get("/", s.handleListProducts)
		r.With(s.requireAuth).Get("/my/products", s.handleMyProducts)
		r.Get("/{id}", s.handleGetProduct)
		r.With(s.requireAuth).Post("/", s.handleCreateProduct)
		r.With(s.requireAuth).Put("/{id}", s.handleUpdateProduct)
		r.With(s.requireAuth).Delete("/{id}", s.handleDeleteProduct)
	})

	s.router.Route("/reviews", func(r chi.Router) {
		r.Post("/", s.handleCreateReview)
		r.Get("/shop/{id}", s.handleListReviews)
		r.Get("/shop/{id}/stats", s.handleReviewStats)
		r.Post("/{id}/flag", s.handleFlagReview)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{"status": "ok"}, s.logger)
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUserID contextKey = "user_id"

// requireAuth validates the bearer token and attaches the user ID.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format", s.logger)
			return
		}

		claims, err := s.tokens.Verify(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID extracts the authenticated user ID from request context.
func userID(ctx context.Context) string {
	if v, ok := ctx.Value(contextKeyUserID).(string); ok {
		return v
	}
	return ""
}
