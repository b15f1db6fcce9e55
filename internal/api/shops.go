package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// ShopQuery narrows the public shop listing. Empty fields are omitted; the
// backend treats each as a filter, combined with AND.
type ShopQuery struct {
	Category string
	Street   string
	Search   string
}

// ShopUpdate carries the shop fields to change. Nil fields are omitted
// from the multipart form and left untouched by the backend.
type ShopUpdate struct {
	Name         *string
	Description  *string
	Street       *string
	Phone        *string
	WhatsApp     *string
	Categories   *[]string
	WorkingHours map[string]string
	ProfileImage ImageField
	CoverImage   ImageField
}

// shopsWire is the listing endpoint envelope.
type shopsWire struct {
	Shops []domain.Shop `json:"shops"`
}

// Shops fetches the public shop listing.
func (c *Client) Shops(ctx context.Context, q ShopQuery) ([]domain.Shop, error) {
	path := "/shops" + query("category", q.Category, "street", q.Street, "search", q.Search)

	var wire shopsWire
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &wire); err != nil {
		return nil, err
	}
	return wire.Shops, nil
}

// Shop fetches a single shop document.
func (c *Client) Shop(ctx context.Context, id string) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops/"+id, "", nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// MyShop fetches the authenticated owner's shop document.
func (c *Client) MyShop(ctx context.Context, token string) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops/my/shop", token, nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// UpdateShop updates a shop via multipart form and returns the stored
// document.
func (c *Client) UpdateShop(ctx context.Context, token, id string, update ShopUpdate) (*domain.Shop, error) {
	f := newForm()
	f.optString("name", update.Name)
	f.optString("description", update.Description)
	f.optString("street", update.Street)
	f.optString("phone", update.Phone)
	f.optString("whatsapp", update.WhatsApp)
	if update.Categories != nil {
		f.optJSON("categories", *update.Categories)
	}
	if update.WorkingHours != nil {
		f.optJSON("workingHours", update.WorkingHours)
	}
	f.image("profileImage", update.ProfileImage)
	f.image("coverImage", update.CoverImage)

	body, contentType, err := f.close()
	if err != nil {
		return nil, fmt.Errorf("build shop form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/shops/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var shop domain.Shop
	if err := c.do(req, token, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// DeleteShop removes a shop. Owner only.
func (c *Client) DeleteShop(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/shops/"+id, token, nil, nil)
}
