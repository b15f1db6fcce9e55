package api

import (
	"context"
	"net/http"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// RegisterRequest is the payload for creating a shop-owner account.
// The shop is created alongside the account.
type RegisterRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8,max=1024"`
	Phone      string   `json:"phone" validate:"required,max=20"`
	ShopName   string   `json:"shopName" validate:"required,max=100"`
	Street     string   `json:"street" validate:"required,max=100"`
	Categories []string `json:"categories" validate:"required,min=1"`
}

// LoginRequest is the payload for owner login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate carries the owner profile fields to change. Nil fields are
// omitted and left untouched by the backend.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// AuthResponse is the result of a successful login or registration.
type AuthResponse struct {
	Token string
	User  *domain.User
}

// authWire is the flattened auth response body: token plus user fields at
// the top level, with the owned shop embedded when one exists.
type authWire struct {
	Token string       `json:"token"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Shop  *domain.Shop `json:"shop"`
}

func (w *authWire) toResponse() *AuthResponse {
	return &AuthResponse{
		Token: w.Token,
		User: &domain.User{
			ID:    w.ID,
			Name:  w.Name,
			Email: w.Email,
			Phone: w.Phone,
			Shop:  w.Shop,
		},
	}
}

// Register creates a shop-owner account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var wire authWire
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", req, &wire); err != nil {
		return nil, err
	}
	return wire.toResponse(), nil
}

// Login exchanges credentials for a token and the owner profile.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var wire authWire
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req, &wire); err != nil {
		return nil, err
	}
	return wire.toResponse(), nil
}

// Profile exchanges a stored token for the owner profile. A 401 means the
// token is invalid or expired.
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes owner profile fields and returns the updated
// profile as the backend stored it.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
