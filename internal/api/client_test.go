package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoshop/storefront/internal/catalog"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, staticToken(token)), srv
}

func TestPromotionsDecodesWireShape(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/promocoes", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "public route must not be credentialed")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"p1","titulo":"Fone","precoAntigo":100,"precoNovo":50,"loja":"TechShop"}]`))
	}), "")

	promotions, err := client.Promotions(context.Background())
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, "p1", promotions[0].ID)
	assert.Equal(t, 50.0, promotions[0].NewPrice)
}

func TestAuthenticatedCallSendsBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}), "tok-123")

	_, err := client.AllCoupons(context.Background())
	require.NoError(t, err)
}

func TestMissingTokenFailsWithoutARequest(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), "")

	err := client.DeletePromotion(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called, "no request should reach the backend without a token")
}

func TestRejectedTokenMapsToUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expirado"}`))
	}), "stale")

	err := client.DeletePromotion(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"e-mail ja cadastrado"}`))
	}), "tok")

	err := client.RegisterAdmin(context.Background(), RegisterInput{Name: "Ana", Email: "a@b.c", Password: "secret1"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "e-mail ja cadastrado", se.Message)
	assert.Equal(t, "e-mail ja cadastrado", ServerMessage(err))
}

func TestNotFoundClassification(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), "tok")

	err := client.DeleteCoupon(context.Background(), "gone")
	assert.True(t, IsNotFound(err))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestNetworkFailureWrapsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // client now dials a dead address
	client := NewClient(Config{BaseURL: srv.URL}, nil)

	_, err := client.Promotions(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] == "admin" && body["password"] == "admin123" {
			w.Write([]byte(`{"token":"tok-xyz"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"usuario ou senha incorretos"}`))
	}), "")

	token, err := client.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)

	_, err = client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized, "a failed login is not a session-expiry signal")
}

func TestLoginWithoutTokenInBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"conta bloqueada"}`))
	}), "")

	_, err := client.Login(context.Background(), "admin", "admin123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conta bloqueada")
}

func TestUpdatePromotionKeepsIDInURL(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}), "tok")

	in := PromotionInputFrom(catalog.Promotion{ID: "p9", Title: "Fone", NewPrice: 99})
	require.NoError(t, client.UpdatePromotion(context.Background(), "p9", in))

	assert.Equal(t, "/api/promocoes/p9", gotPath)
	_, hasID := gotBody["_id"]
	assert.False(t, hasID, "update body must not carry an identifier")
}
