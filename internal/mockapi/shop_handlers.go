package mockapi

import (
	"encoding/json/v2"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
	"github.com/Liban-hassan-noor/eastlify-client/internal/id"
)

// maxFormMemory bounds multipart parsing; anything larger spills to disk.
const maxFormMemory = 32 << 20

type shopsBody struct {
	Shops []domain.Shop `json:"shops"`
}

func (s *Server) handleListShops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	shops := s.data.listShops(q.Get("category"), q.Get("street"), q.Get("search"))
	response.Success(w, shopsBody{Shops: shops}, s.logger)
}

func (s *Server) handleGetShop(w http.ResponseWriter, r *http.Request) {
	shop, err := s.data.shop(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, shop, s.logger)
}

func (s *Server) handleMyShop(w http.ResponseWriter, r *http.Request) {
	shop, err := s.data.ownedShop(userID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, shop, s.logger)
}

func (s *Server) handleUpdateShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if !s.data.owns(userID(r.Context()), shopID) {
		response.Forbidden(w, "Not your shop", s.logger)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", s.logger)
		return
	}
	form := r.MultipartForm

	var categories []string
	if raw, found := formValue(form, "categories"); found {
		if err := json.Unmarshal([]byte(raw), &categories); err != nil {
			response.BadRequest(w, "Invalid categories field", s.logger)
			return
		}
	}
	var workingHours map[string]string
	if raw, found := formValue(form, "workingHours"); found {
		if err := json.Unmarshal([]byte(raw), &workingHours); err != nil {
			response.BadRequest(w, "Invalid workingHours field", s.logger)
			return
		}
	}

	profileImage, err := s.imageSlot(form, "profileImage", shopID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	coverImage, err := s.imageSlot(form, "coverImage", shopID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	shop, err := s.data.mutateShop(shopID, func(shop *domain.Shop) {
		if v, found := formValue(form, "name"); found {
			shop.Name = v
		}
		if v, found := formValue(form, "description"); found {
			shop.Description = v
		}
		if v, found := formValue(form, "street"); found {
			shop.Street = v
		}
		if v, found := formValue(form, "phone"); found {
			shop.Phone = v
		}
		if v, found := formValue(form, "whatsapp"); found {
			shop.WhatsApp = v
		}
		if categories != nil {
			shop.Categories = categories
		}
		if workingHours != nil {
			shop.WorkingHours = workingHours
		}
		if profileImage != nil {
			shop.ProfileImage = *profileImage
		}
		if coverImage != nil {
			shop.CoverImage = *coverImage
		}
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, shop, s.logger)
}

func (s *Server) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if !s.data.owns(userID(r.Context()), shopID) {
		response.Forbidden(w, "Not your shop", s.logger)
		return
	}
	if err := s.data.deleteShop(shopID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]string{"message": "Shop deleted"}, s.logger)
}

// imageSlot resolves a single-image form slot following the
// new/existing/clear convention. Returns nil when the slot is untouched.
func (s *Server) imageSlot(form *multipart.Form, field, ownerID string) (*string, error) {
	if files := form.File[field]; len(files) > 0 {
		url, err := s.storeUpload(files[0], ownerID)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}
	if existing, found := formValue(form, "existing"+upperFirst(field)); found {
		return &existing, nil
	}
	if v, found := formValue(form, field); found && v == "" {
		empty := ""
		return &empty, nil
	}
	return nil, nil
}

// storeUpload pretends to persist an uploaded image and hands back the URL
// a real backend would. The bytes themselves are discarded.
func (s *Server) storeUpload(header *multipart.FileHeader, ownerID string) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	imageID, err := id.Generate("img")
	if err != nil {
		return "", err
	}
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("/uploads/%s/%s%s", ownerID, imageID, ext), nil
}

func formValue(form *multipart.Form, field string) (string, bool) {
	values := form.Value[field]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
