package store

import (
	"context"
	"errors"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/localstore"
)

// SessionState is where the auth session currently stands.
type SessionState string

const (
	// SessionUninitialized means Restore has not run yet.
	SessionUninitialized SessionState = "uninitialized"

	// SessionRestoring means a persisted token is being exchanged for a
	// profile.
	SessionRestoring SessionState = "restoring"

	// SessionAuthenticated means a user is signed in.
	SessionAuthenticated SessionState = "authenticated"

	// SessionAnonymous means no user is signed in.
	SessionAnonymous SessionState = "anonymous"
)

// Restore brings the session up from persisted state. It loads the
// favorites set, then exchanges the persisted token (if any) for a profile.
// A failed exchange purges the token and lands the session in anonymous;
// Restore itself only errors on local storage problems.
func (s *Store) Restore(ctx context.Context) error {
	favorites, err := s.local.Favorites()
	if err != nil {
		return err
	}

	token, err := s.local.Token()
	if errors.Is(err, localstore.ErrNotFound) {
		s.mu.Lock()
		s.session = SessionAnonymous
		s.favorites = favorites
		s.mu.Unlock()
		s.notify()
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.session = SessionRestoring
	s.favorites = favorites
	s.mu.Unlock()
	s.notify()

	user, err := s.api.Profile(ctx, token)
	if err != nil {
		s.logger.Info("stored token rejected, starting anonymous", "error", err)
		if derr := s.local.DeleteToken(); derr != nil {
			s.logger.Error("failed to purge rejected token", "error", derr)
		}
		s.mu.Lock()
		s.session = SessionAnonymous
		s.mu.Unlock()
		s.notify()
		return nil
	}

	s.mu.Lock()
	s.session = SessionAuthenticated
	s.token = token
	s.currentUser = user
	s.mu.Unlock()
	s.notify()
	return nil
}

// Login signs the user in. On success the token is persisted and the
// session becomes authenticated; on failure nothing changes.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	req := api.LoginRequest{Email: email, Password: password}
	if err := s.validate.Validate(req); err != nil {
		return fail(err)
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return fail(err)
	}

	s.establishSession(resp)
	s.notify()
	return ok()
}

// RegisterShop creates an owner account with its shop and signs in. On
// success it kicks off background refreshes of the shop list and the new
// owner's listings and activities.
func (s *Store) RegisterShop(ctx context.Context, req api.RegisterRequest) Result {
	if err := s.validate.Validate(req); err != nil {
		return fail(err)
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return fail(err)
	}

	s.establishSession(resp)
	s.notify()

	bg := context.WithoutCancel(ctx)
	go s.FetchShops(bg, api.ShopQuery{})
	go s.FetchMyListings(bg)
	go s.FetchActivities(bg)

	return ok()
}

// establishSession persists the token and installs the authenticated user.
func (s *Store) establishSession(resp *api.AuthResponse) {
	if err := s.local.SetToken(resp.Token); err != nil {
		s.logger.Error("failed to persist token", "error", err)
	}
	s.mu.Lock()
	s.session = SessionAuthenticated
	s.token = resp.Token
	s.currentUser = resp.User
	s.mu.Unlock()
}

// Logout drops the session locally. There is no server call; the token is
// simply forgotten.
func (s *Store) Logout() {
	if err := s.local.DeleteToken(); err != nil {
		s.logger.Error("failed to delete persisted token", "error", err)
	}
	s.mu.Lock()
	s.session = SessionAnonymous
	s.token = ""
	s.currentUser = nil
	s.myListings = nil
	s.activities = nil
	s.mu.Unlock()
	s.notify()
}

// UpdateProfile sends changed profile fields to the server and merges the
// response into the current user. The embedded shop is kept when the
// response does not carry one.
func (s *Store) UpdateProfile(ctx context.Context, update api.ProfileUpdate) Result {
	token := s.currentToken()
	if token == "" {
		return Result{Message: "you must be signed in"}
	}

	user, err := s.api.UpdateProfile(ctx, token, update)
	if err != nil {
		return fail(err)
	}

	s.mu.Lock()
	// A logout may have raced the request; installing the response then
	// would resurrect a signed-out user. The server kept the update
	// either way.
	if s.token == "" || s.currentUser == nil || s.currentUser.ID != user.ID {
		s.mu.Unlock()
		return ok()
	}
	if user.Shop == nil {
		user.Shop = s.currentUser.Shop
	}
	s.currentUser = user
	s.mu.Unlock()
	s.notify()
	return ok()
}

// FetchMyShop loads the owner's shop and attaches it to the current user.
// Failures are logged, never surfaced; callers treat the shop as lazily
// populated.
func (s *Store) FetchMyShop(ctx context.Context) {
	token := s.currentToken()
	if token == "" {
		return
	}

	shop, err := s.api.MyShop(ctx, token)
	if err != nil {
		s.logger.Warn("failed to fetch own shop", "error", err)
		return
	}

	s.mu.Lock()
	if s.currentUser != nil {
		s.currentUser.Shop = shop
	}
	s.mu.Unlock()
	s.notify()
}
