package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/db"
	"hostel-manager-backend/internal/mail"
	"hostel-manager-backend/internal/model"
	"hostel-manager-backend/internal/store"
)

const testPassword = "secret123"

type testEnv struct {
	db     *gorm.DB
	store  store.Store
	tokens *auth.Issuer
	router *gin.Engine
}

// fakeMailer records the last temporary password it was asked to send.
type fakeMailer struct {
	to   string
	temp string
	err  error
}

func (m *fakeMailer) SendTempPassword(_ context.Context, to, _, tempPassword string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.temp = tempPassword
	return nil
}

// newTestEnv builds a router backed by an in-memory SQLite database. Response
// caching is off and the rate limit is high enough to never trip in tests.
func newTestEnv(t *testing.T, mailer mail.Mailer) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{}
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Auth.BcryptCost = bcrypt.MinCost

	s := store.NewGormStore(gormDB)
	tokens := auth.NewIssuer("test-secret", time.Hour)
	router := NewRouter(s, cfg, tokens, mailer, nil)

	return &testEnv{db: gormDB, store: s, tokens: tokens, router: router}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createOwner inserts an approved owner directly and mints a token for it.
func (e *testEnv) createOwner(t *testing.T, username string) (*model.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{Username: username, Password: hash, IsApproved: true}
	require.NoError(t, e.store.CreateUser(context.Background(), user))

	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) createAdmin(t *testing.T) (*model.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	admin := &model.User{
		Username:      db.AdminUsername,
		Password:      hash,
		IsAdmin:       true,
		IsApproved:    true,
		SetupComplete: true,
	}
	require.NoError(t, e.store.CreateUser(context.Background(), admin))

	token, err := e.tokens.Issue(admin)
	require.NoError(t, err)
	return admin, token
}

// setupLayout runs the setup endpoint for the owner and returns the room and
// bed IDs from the dashboard.
func (e *testEnv) setupLayout(t *testing.T, owner *model.User, token string, capacity int) (roomID int64, bedIDs []int64) {
	t.Helper()

	w := e.do(t, "POST", "/api/setup", token, gin.H{
		"userId":      owner.ID,
		"hostelName":  "Test PG",
		"totalFloors": 1,
		"rooms": []gin.H{
			{"floor": 1, "roomNo": "101", "capacity": capacity},
		},
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = e.do(t, "GET", fmt.Sprintf("/api/dashboard/%d", owner.ID), token, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	var rooms []model.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	require.Len(t, rooms[0].Beds, capacity)

	for _, bed := range rooms[0].Beds {
		bedIDs = append(bedIDs, bed.ID)
	}
	return rooms[0].ID, bedIDs
}
