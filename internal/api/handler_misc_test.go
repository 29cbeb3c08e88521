package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hostel-manager-backend/config"
)

func TestImportDataEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	alice, token := env.createOwner(t, "alice")
	env.setupLayout(t, alice, token, 2)

	w := env.do(t, "POST", "/api/import-data", token, gin.H{
		"userId": alice.ID,
		"records": []gin.H{
			{"roomNo": "101", "name": "Ravi", "mobile": "9000000001", "joinDate": "2026-08-01"},
			{"roomNo": "999", "name": "Lost", "mobile": "9000000002", "joinDate": "2026-08-01"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, 1.0, body["imported"])
	assert.Equal(t, 0.0, body["skipped"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	alice, token := env.createOwner(t, "alice")

	w := env.do(t, "POST", "/api/profile/update", token, gin.H{
		"userId": alice.ID, "hostelName": "Sunrise PG", "email": "alice@example.com", "mobile": "9000000009",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := env.store.FindUserByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise PG", got.HostelName)
	assert.Equal(t, "alice@example.com", got.Email)

	w = env.do(t, "POST", "/api/profile/update", token, gin.H{
		"userId": alice.ID, "hostelName": "Sunrise PG", "email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetHostelEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	alice, token := env.createOwner(t, "alice")
	env.setupLayout(t, alice, token, 2)

	w := env.do(t, "POST", "/api/reset-hostel", token, gin.H{"userId": alice.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := env.store.FindUserByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.False(t, got.SetupComplete)

	// Another owner cannot reset Alice's hostel.
	_, bobToken := env.createOwner(t, "bob")
	w = env.do(t, "POST", "/api/reset-hostel", bobToken, gin.H{"userId": alice.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubscriptionEndpoints(t *testing.T) {
	env := newTestEnv(t, nil)
	_, token := env.createOwner(t, "alice")

	endpoint := "https://push.example.com/sub/abc"

	w := env.do(t, "PUT", "/api/subscriptions", token, gin.H{
		"endpoint": endpoint, "p256dh": "key1", "auth": "auth1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, "GET", "/api/subscriptions?endpoint="+endpoint, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "key1", decodeBody(t, w)["p256dh"])

	w = env.do(t, "DELETE", "/api/subscriptions", token, gin.H{"endpoint": endpoint})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, "GET", "/api/subscriptions?endpoint="+endpoint, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVAPIDPublicKeyUnconfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, "GET", "/api/vapid_public_key", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVAPIDPublicKeyConfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	cfg := &config.Config{}
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Auth.BcryptCost = bcrypt.MinCost
	router := NewRouter(env.store, cfg, env.tokens, nil, &webpush.Options{VAPIDPublicKey: "BTestKey"})

	req := httptest.NewRequest("GET", "/api/vapid_public_key", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BTestKey")
}
