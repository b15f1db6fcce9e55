package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// ActivityRequest records a public customer interaction with a shop.
type ActivityRequest struct {
	Type domain.ActivityType `json:"type" validate:"required,oneof=call whatsapp"`
	Item string              `json:"item,omitempty" validate:"omitempty,max=200"`
}

// SaleRequest records a completed sale. Owner only.
type SaleRequest struct {
	Item   string `json:"item" validate:"required,max=200"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

// ActivityResponse is the `{activity, shop}` pair the activity endpoints
// return: the recorded entry and a partial stat delta for the shop.
type ActivityResponse struct {
	Activity domain.Activity  `json:"activity"`
	Shop     domain.ShopStats `json:"shop"`
}

// activitiesWire is the history endpoint envelope.
type activitiesWire struct {
	Activities []domain.Activity `json:"activities"`
}

// RecordActivity logs a call or WhatsApp tap against a shop. The endpoint
// is public; pings are rate limited per shop so browsing cannot flood the
// backend.
func (c *Client) RecordActivity(ctx context.Context, shopID string, req ActivityRequest) (*ActivityResponse, error) {
	if err := c.limiter.Wait(ctx, shopID); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var out ActivityResponse
	if err := c.doJSON(ctx, http.MethodPost, "/shops/"+shopID+"/activity", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordSale logs a completed sale against the owner's shop.
func (c *Client) RecordSale(ctx context.Context, token, shopID string, req SaleRequest) (*ActivityResponse, error) {
	// The wire carries the discriminator alongside the sale fields.
	body := struct {
		SaleRequest
		Type domain.ActivityType `json:"type"`
	}{SaleRequest: req, Type: domain.ActivitySale}

	var out ActivityResponse
	if err := c.doJSON(ctx, http.MethodPost, "/shops/"+shopID+"/sale", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activities fetches the full activity history for a shop. Owner only.
func (c *Client) Activities(ctx context.Context, token, shopID string) ([]domain.Activity, error) {
	var wire activitiesWire
	if err := c.doJSON(ctx, http.MethodGet, "/shops/"+shopID+"/activities", token, nil, &wire); err != nil {
		return nil, err
	}
	return wire.Activities, nil
}
