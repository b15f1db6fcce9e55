// Package store is the single source of truth for client state: the auth
// session, the cached shop/listing/activity collections, and the favorites
// set. Views call its operations and render from its snapshots; all network
// I/O goes through the API client it is constructed with.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	domainerrors "github.com/Liban-hassan-noor/eastlify-client/internal/errors"
	"github.com/Liban-hassan-noor/eastlify-client/internal/localstore"
	"github.com/Liban-hassan-noor/eastlify-client/internal/validation"
)

// Client is the API surface the store depends on. *api.Client satisfies it;
// tests substitute stubs.
type Client interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, update api.ProfileUpdate) (*domain.User, error)

	Shops(ctx context.Context, q api.ShopQuery) ([]domain.Shop, error)
	Shop(ctx context.Context, id string) (*domain.Shop, error)
	MyShop(ctx context.Context, token string) (*domain.Shop, error)
	UpdateShop(ctx context.Context, token, id string, update api.ShopUpdate) (*domain.Shop, error)
	DeleteShop(ctx context.Context, token, id string) error

	Products(ctx context.Context, q api.ProductQuery) ([]domain.Product, error)
	MyProducts(ctx context.Context, token string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, form api.ProductForm) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, form api.ProductForm) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	RecordActivity(ctx context.Context, shopID string, req api.ActivityRequest) (*api.ActivityResponse, error)
	RecordSale(ctx context.Context, token, shopID string, req api.SaleRequest) (*api.ActivityResponse, error)
	Activities(ctx context.Context, token, shopID string) ([]domain.Activity, error)

	CreateReview(ctx context.Context, req api.ReviewRequest) (*domain.Review, error)
	ShopReviews(ctx context.Context, shopID string, q api.ReviewPageQuery) (*api.ReviewPage, error)
	ReviewStats(ctx context.Context, shopID string) (*domain.ReviewStats, error)
	FlagReview(ctx context.Context, reviewID, reason string) error
}

// activityCap bounds the client-side activity view. The server keeps full
// history; the store keeps only the newest entries.
const activityCap = 10

// Resource names for the stale-response guard.
const (
	resShops      = "shops"
	resListings   = "listings"
	resMyListings = "myListings"
)

// Result is what mutation operations hand back to the caller. Message is
// meant to be rendered inline next to the form that triggered the mutation.
type Result struct {
	Success bool
	Message string
}

func ok() Result { return Result{Success: true} }

func fail(err error) Result {
	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		return Result{Message: derr.Message}
	}
	return Result{Message: err.Error()}
}

// Store owns all client state. Every exported operation is safe for
// concurrent use; state is guarded by mu and handed out only as copies.
type Store struct {
	api      Client
	local    localstore.Store
	validate *validation.Validator
	logger   *slog.Logger

	mu          sync.Mutex
	session     SessionState
	token       string
	currentUser *domain.User
	shops       []domain.Shop
	shopsError  string
	listings    []domain.Product
	myListings  []domain.Product
	activities  []domain.Activity
	favorites   []string

	// Per-resource sequence numbers. A fetch takes a number when it
	// starts and its response is applied only if no later fetch for the
	// same resource has started since.
	seq map[string]uint64

	subs []func()
}

// New creates a Store wired to the given API client and local persistence.
func New(apiClient Client, local localstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		api:      apiClient,
		local:    local,
		validate: validation.New(),
		logger:   logger.With("component", "store"),
		session:  SessionUninitialized,
		seq:      make(map[string]uint64),
	}
}

// Subscribe registers fn to be called after every committed state change.
// Subscribers run outside the store lock, so they may read snapshots.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify invokes subscribers. Must be called without holding mu.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// begin allocates the next sequence number for a resource fetch.
func (s *Store) begin(resource string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[resource]++
	return s.seq[resource]
}

// isLatest reports whether id is still the newest fetch for the resource.
// Callers must hold mu.
func (s *Store) isLatest(resource string, id uint64) bool {
	return s.seq[resource] == id
}

// Session returns the current session state.
func (s *Store) Session() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// CurrentUser returns a copy of the signed-in user, or nil when anonymous.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser.Clone()
}

// Shops returns a copy of the cached shop collection.
func (s *Store) Shops() []domain.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Shop(nil), s.shops...)
}

// ShopsError returns the visible error from the last shop-list fetch, or ""
// when the last fetch succeeded.
func (s *Store) ShopsError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shopsError
}

// Listings returns a copy of the public listings for the shop currently
// being viewed.
func (s *Store) Listings() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.listings...)
}

// MyListings returns a copy of the authenticated owner's inventory.
func (s *Store) MyListings() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.myListings...)
}

// Activities returns a copy of the bounded newest-first activity view.
func (s *Store) Activities() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Activity(nil), s.activities...)
}

// currentToken reads the session token, empty when anonymous.
func (s *Store) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
