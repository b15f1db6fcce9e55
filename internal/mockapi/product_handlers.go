package mockapi

import (
	"encoding/json/v2"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	domainerrors "github.com/Liban-hassan-noor/eastlify-client/internal/errors"
	"github.com/Liban-hassan-noor/eastlify-client/internal/http/response"
	"github.com/Liban-hassan-noor/eastlify-client/internal/id"
)

type productsBody struct {
	Products []domain.Product `json:"products"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := s.data.listProducts(q.Get("shop"), q.Get("category"), q.Get("search"))
	response.Success(w, productsBody{Products: products}, s.logger)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.data.product(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, product, s.logger)
}

func (s *Server) handleMyProducts(w http.ResponseWriter, r *http.Request) {
	shop, err := s.data.ownedShop(userID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, productsBody{Products: s.data.listProducts(shop.ID, "", "")}, s.logger)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	shop, err := s.data.ownedShop(userID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", s.logger)
		return
	}
	form := r.MultipartForm

	productID, err := id.Generate("prod")
	if err != nil {
		response.InternalError(w, "could not create product", s.logger)
		return
	}

	product := domain.Product{
		ID:        productID,
		Shop:      shop.ID,
		Stock:     1,
		InStock:   true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.applyProductForm(&product, form); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if product.Name == "" {
		response.BadRequest(w, "name is required", s.logger)
		return
	}
	if product.Price <= 0 {
		response.BadRequest(w, "price must be greater than zero", s.logger)
		return
	}

	s.data.createProduct(product)
	response.Created(w, &product, s.logger)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	existing, err := s.data.product(productID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if !s.data.owns(userID(r.Context()), existing.Shop) {
		response.Forbidden(w, "Not your product", s.logger)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", s.logger)
		return
	}
	form := r.MultipartForm

	// Apply to a copy first so a bad form leaves the stored product alone.
	updated := *existing
	if err := s.applyProductForm(&updated, form); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	product, err := s.data.mutateProduct(productID, func(p *domain.Product) { *p = updated })
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, product, s.logger)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	existing, err := s.data.product(productID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if !s.data.owns(userID(r.Context()), existing.Shop) {
		response.Forbidden(w, "Not your product", s.logger)
		return
	}

	if err := s.data.deleteProduct(productID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]string{"message": "Product deleted"}, s.logger)
}

// applyProductForm folds the multipart fields into the product. Fields
// absent from the form are left untouched; the image gallery is rebuilt
// from the existingImages passthroughs plus fresh uploads whenever either
// is present.
func (s *Server) applyProductForm(p *domain.Product, form *multipart.Form) error {
	if v, found := formValue(form, "name"); found {
		p.Name = v
	}
	if v, found := formValue(form, "description"); found {
		p.Description = v
	}
	if v, found := formValue(form, "category"); found {
		p.Category = v
	}
	if v, found := formValue(form, "price"); found {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domainerrors.Validation("price must be a number")
		}
		p.Price = price
	}
	if v, found := formValue(form, "compareAtPrice"); found {
		compare, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domainerrors.Validation("compareAtPrice must be a number")
		}
		p.CompareAtPrice = compare
	}
	if v, found := formValue(form, "stock"); found {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return domainerrors.Validation("stock must be a whole number")
		}
		p.Stock = stock
	}
	if v, found := formValue(form, "inStock"); found {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return domainerrors.Validation("inStock must be true or false")
		}
		p.InStock = inStock
	}

	for field, dest := range map[string]*[]string{
		"tags":   &p.Tags,
		"sizes":  &p.Sizes,
		"colors": &p.Colors,
	} {
		if v, found := formValue(form, field); found {
			var list []string
			if err := json.Unmarshal([]byte(v), &list); err != nil {
				return domainerrors.Validationf("Invalid %s field", field)
			}
			*dest = list
		}
	}

	existing := form.Value["existingImages"]
	uploads := form.File["images"]
	if len(existing) > 0 || len(uploads) > 0 {
		images := append([]string(nil), existing...)
		for _, header := range uploads {
			url, err := s.storeUpload(header, p.Shop)
			if err != nil {
				return err
			}
			images = append(images, url)
		}
		p.Images = images
	}

	return nil
}
