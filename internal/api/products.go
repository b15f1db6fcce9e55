package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// ProductQuery narrows the public product listing.
type ProductQuery struct {
	Shop     string
	Category string
	Search   string
}

// ProductForm carries product fields for create and update. Nil fields are
// omitted; on create the backend applies its own defaults for anything
// missing.
type ProductForm struct {
	Name           *string
	Description    *string
	Category       *string
	Price          *float64
	CompareAtPrice *float64
	Stock          *int
	InStock        *bool
	Tags           *[]string
	Sizes          *[]string
	Colors         *[]string
	// Images holds the product gallery in display order: uploads are sent
	// as binary parts, kept URLs under existingImages.
	Images []ImageField
}

// productsWire is the listing endpoint envelope.
type productsWire struct {
	Products []domain.Product `json:"products"`
}

// Products fetches the public product listing.
func (c *Client) Products(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	path := "/products" + query("shop", q.Shop, "category", q.Category, "search", q.Search)

	var wire productsWire
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &wire); err != nil {
		return nil, err
	}
	return wire.Products, nil
}

// Product fetches a single product document.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// MyProducts fetches the authenticated owner's full inventory.
func (c *Client) MyProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var wire productsWire
	if err := c.doJSON(ctx, http.MethodGet, "/products/my/products", token, nil, &wire); err != nil {
		return nil, err
	}
	return wire.Products, nil
}

// CreateProduct creates a listing via multipart form.
func (c *Client) CreateProduct(ctx context.Context, token string, form ProductForm) (*domain.Product, error) {
	return c.sendProduct(ctx, token, http.MethodPost, "/products", form)
}

// UpdateProduct updates a listing via multipart form.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, form ProductForm) (*domain.Product, error) {
	return c.sendProduct(ctx, token, http.MethodPut, "/products/"+id, form)
}

// DeleteProduct removes a listing. Owner only.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+id, token, nil, nil)
}

func (c *Client) sendProduct(ctx context.Context, token, method, path string, pf ProductForm) (*domain.Product, error) {
	f := newForm()
	f.optString("name", pf.Name)
	f.optString("description", pf.Description)
	f.optString("category", pf.Category)
	f.optFloat("price", pf.Price)
	f.optFloat("compareAtPrice", pf.CompareAtPrice)
	f.optInt("stock", pf.Stock)
	f.optBool("inStock", pf.InStock)
	if pf.Tags != nil {
		f.optJSON("tags", *pf.Tags)
	}
	if pf.Sizes != nil {
		f.optJSON("sizes", *pf.Sizes)
	}
	if pf.Colors != nil {
		f.optJSON("colors", *pf.Colors)
	}
	f.imageList("images", pf.Images)

	body, contentType, err := f.close()
	if err != nil {
		return nil, fmt.Errorf("build product form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var product domain.Product
	if err := c.do(req, token, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
