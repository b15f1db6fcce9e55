package store

import (
	"context"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
)

// RecordActivity logs a call or WhatsApp tap against a shop. The endpoint
// is public; when the shop is the signed-in owner's own, the returned stat
// delta is merged into their shop and the entry joins the activity view.
// Call sites on browse pages fire and forget the result.
func (s *Store) RecordActivity(ctx context.Context, shopID string, req api.ActivityRequest) Result {
	if err := s.validate.Validate(req); err != nil {
		return fail(err)
	}

	resp, err := s.api.RecordActivity(ctx, shopID, req)
	if err != nil {
		s.logger.Debug("activity ping failed", "shop", shopID, "error", err)
		return fail(err)
	}

	s.applyActivity(shopID, resp)
	return ok()
}

// RecordSale logs a completed sale against the owner's own shop and merges
// the returned stat delta.
func (s *Store) RecordSale(ctx context.Context, req api.SaleRequest) Result {
	if err := s.validate.Validate(req); err != nil {
		return fail(err)
	}

	s.mu.Lock()
	token := s.token
	var shopID string
	if s.currentUser != nil && s.currentUser.Shop != nil {
		shopID = s.currentUser.Shop.ID
	}
	s.mu.Unlock()

	if token == "" || shopID == "" {
		return Result{Message: "you must be signed in with a shop"}
	}

	resp, err := s.api.RecordSale(ctx, token, shopID, req)
	if err != nil {
		return fail(err)
	}

	s.applyActivity(shopID, resp)
	return ok()
}

// applyActivity merges an activity response into local state. The stat
// delta and the activity entry only apply when the shop is the signed-in
// owner's own; a customer tapping call on someone else's shop changes
// nothing locally.
func (s *Store) applyActivity(shopID string, resp *api.ActivityResponse) {
	s.mu.Lock()
	if s.currentUser == nil || s.currentUser.Shop == nil || s.currentUser.Shop.ID != shopID {
		s.mu.Unlock()
		return
	}
	mergeShopStats(s.currentUser.Shop, resp.Shop)
	s.activities = pushActivity(s.activities, resp.Activity)
	s.mu.Unlock()
	s.notify()
}

// FetchActivities replaces the activity view with the newest entries from
// the server, bounded like every other path into the view. Failures are
// logged only.
func (s *Store) FetchActivities(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	var shopID string
	if s.currentUser != nil && s.currentUser.Shop != nil {
		shopID = s.currentUser.Shop.ID
	}
	s.mu.Unlock()

	if token == "" || shopID == "" {
		return
	}

	activities, err := s.api.Activities(ctx, token, shopID)
	if err != nil {
		s.logger.Warn("activity history fetch failed", "error", err)
		return
	}
	if len(activities) > activityCap {
		activities = activities[:activityCap]
	}

	s.mu.Lock()
	s.activities = activities
	s.mu.Unlock()
	s.notify()
}
