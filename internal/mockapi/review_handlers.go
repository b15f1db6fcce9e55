package mockapi

import (
	"encoding/json/v2"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
	"github.com/Liban-hassan-noor/eastlify-client/internal/id"
)

type reviewRequest struct {
	Shop    string `json:"shop" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

type flagRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type reviewPageBody struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Pages   int             `json:"pages"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	reviewID, err := id.Generate("rev")
	if err != nil {
		response.InternalError(w, "could not create review", s.logger)
		return
	}

	review, err := s.data.createReview(domain.Review{
		ID:        reviewID,
		Shop:      req.Shop,
		Author:    req.Author,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, review, s.logger)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews := s.data.listReviews(chi.URLParam(r, "id"))

	q := r.URL.Query()
	page := intParam(q.Get("page"), 1)
	limit := intParam(q.Get("limit"), 10)
	sortOrder := q.Get("sort")
	if sortOrder == "" {
		sortOrder = "-createdAt"
	}

	switch sortOrder {
	case "-createdAt":
		// Stored newest first already.
	case "createdAt":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		})
	case "rating":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating < reviews[j].Rating
		})
	case "-rating":
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	default:
		response.BadRequest(w, "Unknown sort order", s.logger)
		return
	}

	total := len(reviews)
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.Success(w, reviewPageBody{
		Reviews: reviews[start:end],
		Total:   total,
		Page:    page,
		Pages:   pages,
	}, s.logger)
}

func (s *Server) handleReviewStats(w http.ResponseWriter, r *http.Request) {
	stats := s.data.reviewStats(chi.URLParam(r, "id"))
	response.Success(w, stats, s.logger)
}

func (s *Server) handleFlagReview(w http.ResponseWriter, r *http.Request) {
	var req flagRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.data.flagReview(chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]string{"message": "Review flagged"}, s.logger)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
