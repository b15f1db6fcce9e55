package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liban-hassan-noor/eastlify-client/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{BaseURL: server.URL, ActivityRPS: 1000, ActivityBurst: 1000}, logger)
	t.Cleanup(client.Close)

	return client, server
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
		wantMsg    string
	}{
		{
			name:       "unauthorized with message",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"Invalid credentials"}`,
			wantErr:    errors.ErrUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"message":"Shop not found"}`,
			wantErr:    errors.ErrNotFound,
			wantMsg:    "Shop not found",
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"message":"Not your shop"}`,
			wantErr:    errors.ErrForbidden,
			wantMsg:    "Not your shop",
		},
		{
			name:       "bad request",
			statusCode: http.StatusBadRequest,
			body:       `{"message":"name is required"}`,
			wantErr:    errors.ErrValidation,
			wantMsg:    "name is required",
		},
		{
			name:       "server error without message body",
			statusCode: http.StatusInternalServerError,
			body:       `boom`,
			wantErr:    errors.ErrInternal,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			_, err := client.Shop(context.Background(), "shop-1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)

			var domainErr *errors.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.wantMsg, domainErr.Message)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Connection refused from here on.

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{BaseURL: server.URL}, logger)
	defer client.Close()

	_, err := client.Shops(context.Background(), ShopQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
}

func TestClient_Shops(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shops", r.URL.Path)
		assert.Equal(t, "Textiles", r.URL.Query().Get("category"))
		assert.Equal(t, "dirac", r.URL.Query().Get("search"))
		assert.Empty(t, r.URL.Query().Get("street"), "empty filters must be omitted")
		assert.Empty(t, r.Header.Get("Authorization"), "shop listing is public")

		w.Write([]byte(`{"shops":[{"id":"shop-1","name":"Al-Amin Textiles"},{"id":"shop-2","name":"Madina Scents"}]}`))
	})

	shops, err := client.Shops(context.Background(), ShopQuery{Category: "Textiles", Search: "dirac"})
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Al-Amin Textiles", shops[0].Name)
}

func TestClient_Login_FlattenedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{
			"token": "tok-abc",
			"id": "user-1",
			"name": "Halima",
			"email": "halima@example.com",
			"shop": {"id": "shop-1", "name": "Al-Amin Textiles", "sales": 85000}
		}`))
	})

	resp, err := client.Login(context.Background(), LoginRequest{Email: "halima@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	require.NotNil(t, resp.User.Shop)
	assert.Equal(t, 85000, resp.User.Shop.Sales)
}

func TestClient_Profile_SendsBearer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"user-1","name":"Halima","email":"halima@example.com"}`))
	})

	user, err := client.Profile(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestClient_RecordSale_Body(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shops/shop-1/sale", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"item":"Dirac","amount":500,"type":"sale"}`, string(body))

		w.Write([]byte(`{"activity":{"id":"act-1","shop":"shop-1","type":"sale","item":"Dirac","amount":500},"shop":{"sales":1500,"orders":2}}`))
	})

	resp, err := client.RecordSale(context.Background(), "tok-abc", "shop-1", SaleRequest{Item: "Dirac", Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, "act-1", resp.Activity.ID)
	require.NotNil(t, resp.Shop.Sales)
	assert.Equal(t, 1500, *resp.Shop.Sales)
	require.NotNil(t, resp.Shop.Orders)
	assert.Equal(t, 2, *resp.Shop.Orders)
	assert.Nil(t, resp.Shop.TotalCalls, "fields the server did not echo stay nil")
}

func TestClient_ShopReviews_Defaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reviews/shop/shop-1", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "-createdAt", r.URL.Query().Get("sort"))

		w.Write([]byte(`{"reviews":[{"id":"rev-1","shop":"shop-1","author":"Fatuma","rating":5}],"total":1,"page":1,"pages":1}`))
	})

	page, err := client.ShopReviews(context.Background(), "shop-1", ReviewPageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, 5, page.Reviews[0].Rating)
}

func TestClient_DeleteProduct(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/prod-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DeleteProduct(context.Background(), "tok-abc", "prod-1")
	assert.NoError(t, err)
}
