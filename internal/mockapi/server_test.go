package mockapi

import (
	"bytes"
	"encoding/json/v2"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()

	key, err := auth.LoadOrGenerateKey(t.TempDir())
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(key, time.Hour)
	require.NoError(t, err)

	srv := NewServer(tokens, slog.New(slog.DiscardHandler))
	require.NoError(t, srv.Seed())

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, srv
}

// doJSON fires a JSON request and decodes the response into out (when out
// is non-nil), returning the status code.
func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.UnmarshalRead(resp.Body, out))
	}
	return resp.StatusCode
}

func login(t *testing.T, baseURL, email string) (string, authBody) {
	t.Helper()
	var body authBody
	status := doJSON(t, http.MethodPost, baseURL+"/auth/login", "",
		map[string]string{"email": email, "password": SeedPassword}, &body)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body.Token)
	return body.Token, body
}

func TestLogin(t *testing.T) {
	ts, _ := newTestServer(t)

	token, body := login(t, ts.URL, "amina@eastlify.so")
	assert.True(t, strings.HasPrefix(token, "v4.local."))
	assert.Equal(t, "Amina Warsame", body.Name)
	require.NotNil(t, body.Shop)
	assert.Equal(t, "Madina Scents", body.Shop.Name)
}

func TestLogin_BadPassword(t *testing.T) {
	ts, _ := newTestServer(t)

	var errBody struct {
		Message string `json:"message"`
	}
	status := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "",
		map[string]string{"email": "amina@eastlify.so", "password": "wrong"}, &errBody)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", errBody.Message)
}

func TestRegister(t *testing.T) {
	ts, _ := newTestServer(t)

	var body authBody
	status := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]any{
		"name":       "Hodan Farah",
		"email":      "hodan@eastlify.so",
		"password":   "correct horse",
		"phone":      "+254700000009",
		"shopName":   "Hodan Boutique",
		"street":     "Business Bay",
		"categories": []string{"Fashion"},
	}, &body)

	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body.Token)
	require.NotNil(t, body.Shop)
	assert.Equal(t, "Hodan Boutique", body.Shop.Name)

	// The new shop shows up in the public listing.
	var listing shopsBody
	status = doJSON(t, http.MethodGet, ts.URL+"/shops", "", nil, &listing)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listing.Shops, 4)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts, _ := newTestServer(t)

	status := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]any{
		"name":       "Impostor",
		"email":      "Amina@Eastlify.so",
		"password":   "correct horse",
		"phone":      "+254700000010",
		"shopName":   "Copy Shop",
		"street":     "Garage",
		"categories": []string{"Electronics"},
	}, nil)

	assert.Equal(t, http.StatusConflict, status)
}

func TestProfile_RequiresToken(t *testing.T) {
	ts, _ := newTestServer(t)

	status := doJSON(t, http.MethodGet, ts.URL+"/auth/profile", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token, _ := login(t, ts.URL, "amina@eastlify.so")
	var user domain.User
	status = doJSON(t, http.MethodGet, ts.URL+"/auth/profile", token, nil, &user)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "amina@eastlify.so", user.Email)
	require.NotNil(t, user.Shop)
	assert.Equal(t, "shop-madina", user.Shop.ID)
}

func TestListShops_Filters(t *testing.T) {
	ts, _ := newTestServer(t)

	var all shopsBody
	doJSON(t, http.MethodGet, ts.URL+"/shops", "", nil, &all)
	assert.Len(t, all.Shops, 3)

	var byStreet shopsBody
	doJSON(t, http.MethodGet, ts.URL+"/shops?street=Garage", "", nil, &byStreet)
	require.Len(t, byStreet.Shops, 1)
	assert.Equal(t, "Digital World Islii", byStreet.Shops[0].Name)

	var bySearch shopsBody
	doJSON(t, http.MethodGet, ts.URL+"/shops?search=dirac", "", nil, &bySearch)
	require.Len(t, bySearch.Shops, 1)
	assert.Equal(t, "Al-Amin Textiles", bySearch.Shops[0].Name)
}

func TestUpdateShop_Multipart(t *testing.T) {
	ts, _ := newTestServer(t)
	token, me := login(t, ts.URL, "amina@eastlify.so")

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("name", "Madina Scents & Oud"))
	require.NoError(t, w.WriteField("categories", `["Cosmetics","Wholesale"]`))
	require.NoError(t, w.WriteField("existingCoverImage", "https://cdn.example.com/old-cover.jpg"))
	part, err := w.CreateFormFile("profileImage", "profile.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/shops/"+me.Shop.ID, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var shop domain.Shop
	require.NoError(t, json.UnmarshalRead(resp.Body, &shop))
	assert.Equal(t, "Madina Scents & Oud", shop.Name)
	assert.Equal(t, []string{"Cosmetics", "Wholesale"}, shop.Categories)
	assert.Equal(t, "https://cdn.example.com/old-cover.jpg", shop.CoverImage)
	assert.True(t, strings.HasPrefix(shop.ProfileImage, "/uploads/"), shop.ProfileImage)
	assert.Equal(t, "Eastleigh Mall", shop.Street, "untouched fields survive")
}

func TestUpdateShop_OwnershipEnforced(t *testing.T) {
	ts, _ := newTestServer(t)
	token, _ := login(t, ts.URL, "amina@eastlify.so")

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("name", "Hijacked"))
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/shops/shop-digital", buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestActivity_PublicCallBumpsStats(t *testing.T) {
	ts, _ := newTestServer(t)

	var body activityBody
	status := doJSON(t, http.MethodPost, ts.URL+"/shops/shop-madina/activity", "",
		map[string]string{"type": "call"}, &body)

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, domain.ActivityCall, body.Activity.Type)
	require.NotNil(t, body.Shop.TotalCalls)
	assert.Equal(t, 57, *body.Shop.TotalCalls)
	assert.Nil(t, body.Shop.Sales, "sale stats are not echoed for a call")
}

func TestSale_OwnerOnly(t *testing.T) {
	ts, _ := newTestServer(t)

	// Anonymous is rejected outright.
	status := doJSON(t, http.MethodPost, ts.URL+"/shops/shop-madina/sale", "",
		map[string]any{"item": "Royal Oud", "amount": 3000}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// A different owner is forbidden.
	otherToken, _ := login(t, ts.URL, "hassan@eastlify.so")
	status = doJSON(t, http.MethodPost, ts.URL+"/shops/shop-madina/sale", otherToken,
		map[string]any{"item": "Royal Oud", "amount": 3000}, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// The owner succeeds and gets the sale delta back.
	token, _ := login(t, ts.URL, "amina@eastlify.so")
	var body activityBody
	status = doJSON(t, http.MethodPost, ts.URL+"/shops/shop-madina/sale", token,
		map[string]any{"item": "Royal Oud", "amount": 3000}, &body)
	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, body.Shop.Sales)
	assert.Equal(t, 38000, *body.Shop.Sales)
	require.NotNil(t, body.Shop.Orders)
	assert.Equal(t, 13, *body.Shop.Orders)

	// The sale shows up first in the owner's activity log.
	var activityList activitiesBody
	status = doJSON(t, http.MethodGet, ts.URL+"/shops/shop-madina/activities", token, nil, &activityList)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, activityList.Activities)
	assert.Equal(t, domain.ActivitySale, activityList.Activities[0].Type)
	assert.Equal(t, 3000, activityList.Activities[0].Amount)
}

func TestProducts_CreateListDelete(t *testing.T) {
	ts, _ := newTestServer(t)
	token, _ := login(t, ts.URL, "amina@eastlify.so")

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("name", "Bakhoor Box"))
	require.NoError(t, w.WriteField("price", "1500"))
	require.NoError(t, w.WriteField("tags", `["incense","gift"]`))
	part, err := w.CreateFormFile("images", "box.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/products", buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Product
	require.NoError(t, json.UnmarshalRead(resp.Body, &created))
	assert.Equal(t, "Bakhoor Box", created.Name)
	assert.Equal(t, 1500.0, created.Price)
	assert.Equal(t, []string{"incense", "gift"}, created.Tags)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0], "/uploads/"))

	var mine productsBody
	status := doJSON(t, http.MethodGet, ts.URL+"/products/my/products", token, nil, &mine)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, mine.Products, 2)

	status = doJSON(t, http.MethodDelete, ts.URL+"/products/"+created.ID, token, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status = doJSON(t, http.MethodGet, ts.URL+"/products/"+created.ID, "", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReviews_PaginationAndStats(t *testing.T) {
	ts, _ := newTestServer(t)

	ratings := []int{5, 4, 5, 3, 1}
	for i, rating := range ratings {
		status := doJSON(t, http.MethodPost, ts.URL+"/reviews", "", map[string]any{
			"shop":    "shop-alamin",
			"author":  "Customer " + string(rune('A'+i)),
			"rating":  rating,
			"comment": "review body",
		}, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	var page reviewPageBody
	status := doJSON(t, http.MethodGet, ts.URL+"/reviews/shop/shop-alamin?page=1&limit=2", "", nil, &page)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Reviews, 2)
	// Default sort is newest first.
	assert.Equal(t, "Customer E", page.Reviews[0].Author)

	var last reviewPageBody
	doJSON(t, http.MethodGet, ts.URL+"/reviews/shop/shop-alamin?page=3&limit=2", "", nil, &last)
	require.Len(t, last.Reviews, 1)
	assert.Equal(t, "Customer A", last.Reviews[0].Author)

	var stats domain.ReviewStats
	status = doJSON(t, http.MethodGet, ts.URL+"/reviews/shop/shop-alamin/stats", "", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, stats.Total)
	assert.InDelta(t, 3.6, stats.Average, 0.001)
	assert.Equal(t, 2, stats.Distribution["5"])
	assert.Equal(t, 1, stats.Distribution["1"])

	// Flagging marks the review in subsequent listings.
	var first reviewPageBody
	doJSON(t, http.MethodGet, ts.URL+"/reviews/shop/shop-alamin?limit=1", "", nil, &first)
	reviewID := first.Reviews[0].ID
	status = doJSON(t, http.MethodPost, ts.URL+"/reviews/"+reviewID+"/flag", "",
		map[string]string{"reason": "spam"}, nil)
	require.Equal(t, http.StatusOK, status)

	doJSON(t, http.MethodGet, ts.URL+"/reviews/shop/shop-alamin?limit=1", "", nil, &first)
	assert.True(t, first.Reviews[0].Flagged)
}

func TestReviews_UpdateShopRating(t *testing.T) {
	ts, _ := newTestServer(t)

	// Seeded rating is overwritten once real reviews arrive.
	for _, rating := range []int{5, 5} {
		doJSON(t, http.MethodPost, ts.URL+"/reviews", "", map[string]any{
			"shop":   "shop-madina",
			"author": "Fatuma Ali",
			"rating": rating,
		}, nil)
	}

	var shop domain.Shop
	status := doJSON(t, http.MethodGet, ts.URL+"/shops/shop-madina", "", nil, &shop)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5.0, shop.Rating)
	assert.Equal(t, 2, shop.ReviewCount)
}
