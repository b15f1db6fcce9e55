package mockapi

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
)

type activityRequest struct {
	Type domain.ActivityType `json:"type" validate:"required,oneof=call whatsapp"`
	Item string              `json:"item" validate:"omitempty,max=200"`
}

type saleRequest struct {
	Item   string `json:"item" validate:"required,max=200"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

type activityBody struct {
	Activity domain.Activity  `json:"activity"`
	Shop     domain.ShopStats `json:"shop"`
}

type activitiesBody struct {
	Activities []domain.Activity `json:"activities"`
}

// handleActivity records a call or WhatsApp tap. Public endpoint; browsing
// customers have no account.
func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	entry, stats, err := s.data.recordActivity(chi.URLParam(r, "id"), req.Type, req.Item, 0)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, activityBody{Activity: *entry, Shop: *stats}, s.logger)
}

// handleSale records a completed sale. Owner only.
func (s *Server) handleSale(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if !s.data.owns(userID(r.Context()), shopID) {
		response.Forbidden(w, "Not your shop", s.logger)
		return
	}

	var req saleRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	entry, stats, err := s.data.recordActivity(shopID, domain.ActivitySale, req.Item, req.Amount)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, activityBody{Activity: *entry, Shop: *stats}, s.logger)
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if !s.data.owns(userID(r.Context()), shopID) {
		response.Forbidden(w, "Not your shop", s.logger)
		return
	}
	response.Success(w, activitiesBody{Activities: s.data.listActivities(shopID)}, s.logger)
}
