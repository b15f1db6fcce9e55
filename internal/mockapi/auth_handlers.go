package mockapi

import (
	"encoding/json/v2"
	"net/http"
	"time"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
	"github.com/Liban-hassan-noor/eastlify-client/internal/id"
)

type registerRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8,max=1024"`
	Phone      string   `json:"phone" validate:"required,max=20"`
	ShopName   string   `json:"shopName" validate:"required,max=100"`
	Street     string   `json:"street" validate:"required,max=100"`
	Categories []string `json:"categories" validate:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// authBody is the flattened auth response: token plus user fields at the
// top level, shop embedded.
type authBody struct {
	Token string       `json:"token"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Shop  *domain.Shop `json:"shop,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	uid, err := id.Generate("user")
	if err != nil {
		response.InternalError(w, "could not create account", s.logger)
		return
	}
	shopID, err := id.Generate("shop")
	if err != nil {
		response.InternalError(w, "could not create account", s.logger)
		return
	}

	user := domain.User{ID: uid, Name: req.Name, Email: req.Email, Phone: req.Phone}
	shop := domain.Shop{
		ID:         shopID,
		Owner:      uid,
		Name:       req.ShopName,
		Street:     req.Street,
		Phone:      req.Phone,
		Categories: req.Categories,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.data.createUser(user, hash, shop); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		response.InternalError(w, "could not issue token", s.logger)
		return
	}

	response.Created(w, authBody{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Shop:  &shop,
	}, s.logger)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	rec, found := s.data.userByEmail(req.Email)
	if !found {
		response.Unauthorized(w, "Invalid credentials", s.logger)
		return
	}
	match, err := auth.VerifyPassword(rec.passwordHash, req.Password)
	if err != nil || !match {
		response.Unauthorized(w, "Invalid credentials", s.logger)
		return
	}

	user, err := s.data.profile(rec.user.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		response.InternalError(w, "could not issue token", s.logger)
		return
	}

	response.Success(w, authBody{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Shop:  user.Shop,
	}, s.logger)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.data.profile(userID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, user, s.logger)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validate.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user, err := s.data.updateProfile(userID(r.Context()), req.Name, req.Phone, req.Email)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, user, s.logger)
}
