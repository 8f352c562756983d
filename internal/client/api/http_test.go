package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvtran/shopfront/internal/client/models"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, message string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	err = json.NewEncoder(w).Encode(map[string]any{
		"success":   status < 400,
		"message":   message,
		"data":      json.RawMessage(raw),
		"timestamp": time.Now().Format(time.RFC3339),
	})
	require.NoError(t, err)
}

func TestLogin_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req.Username)

		writeEnvelope(t, w, http.StatusOK, "ok", models.LoginResponse{
			AccessToken:  "at",
			RefreshToken: "rt",
			User:         models.User{ID: 7, Username: "alice", Role: models.RoleCustomer},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	resp, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "at", resp.AccessToken)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestDo_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(t, w, http.StatusOK, "ok", models.User{ID: 1})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	c.SetTokens("token-123", "refresh-123")

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestDo_RefreshesOn401AndRetries(t *testing.T) {
	var refreshed bool
	var meCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/me":
			meCalls++
			if r.Header.Get("Authorization") != "Bearer fresh-at" {
				writeEnvelope(t, w, http.StatusUnauthorized, "token expired", nil)
				return
			}
			writeEnvelope(t, w, http.StatusOK, "ok", models.User{ID: 7})
		case "/api/auth/refresh-token":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "old-rt", body["refreshToken"])
			writeEnvelope(t, w, http.StatusOK, "ok", models.LoginResponse{
				AccessToken:  "fresh-at",
				RefreshToken: "fresh-rt",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	c.SetTokens("stale-at", "old-rt")

	var cbAccess, cbRefresh string
	c.OnTokensRefreshed(func(access, refresh string) {
		refreshed = true
		cbAccess, cbRefresh = access, refresh
	})

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, 2, meCalls)
	assert.True(t, refreshed)
	assert.Equal(t, "fresh-at", cbAccess)
	assert.Equal(t, "fresh-rt", cbRefresh)
}

func TestDo_401WithoutRefreshTokenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, "bad credentials", nil)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDo_ServerErrorCarriesEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, "product out of stock", nil)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)

	_, err := c.Product(context.Background(), 1)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "product out of stock", apiErr.Message)
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := NewHTTPClient(srv.URL, time.Second, nil)

	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProducts_SendsFilterParams(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		writeEnvelope(t, w, http.StatusOK, "ok", models.Page[models.Product]{
			Content:  []models.Product{{ID: 1, Name: "T-Shirt"}},
			PageSize: 12,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	page, err := c.Products(context.Background(), models.ProductQuery{
		Page:       2,
		Size:       12,
		SortBy:     "price",
		SortDir:    "ASC",
		Keyword:    "shirt",
		CategoryID: 3,
		MaxPrice:   500000,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	assert.Contains(t, got, "page=2")
	assert.Contains(t, got, "size=12")
	assert.Contains(t, got, "sortBy=price")
	assert.Contains(t, got, "sortDir=ASC")
	assert.Contains(t, got, "keyword=shirt")
	assert.Contains(t, got, "categoryId=3")
	assert.Contains(t, got, "maxPrice=500000")
}

func TestCreateOrder_SendsRequestIDHeader(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		writeEnvelope(t, w, http.StatusCreated, "created", models.Order{ID: 10, Status: models.OrderStatusPending})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	order, err := c.CreateOrder(context.Background(), models.OrderRequest{
		Items:         []models.CartItemRequest{{ProductID: 1, Quantity: 2}},
		PaymentMethod: models.PaymentMethodCOD,
	}, "req-abc")
	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)
	assert.Equal(t, "req-abc", gotID)
}
