package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/npezzotti/birdseye/internal/config"
	"github.com/npezzotti/birdseye/internal/database"
	"github.com/npezzotti/birdseye/internal/server"
	"github.com/npezzotti/birdseye/internal/stats"
	"github.com/npezzotti/birdseye/internal/testutil"
	"github.com/npezzotti/birdseye/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestApp(t *testing.T, db database.BirdseyeRepository) *BirdseyeApp {
	t.Helper()

	su := &stats.MockStatsUpdater{}
	su.On("RegisterMetric", mock.Anything).Times(4)

	cs, err := server.NewChatServer(testutil.TestLogger(t), db, su)
	if err != nil {
		t.Fatalf("failed to create chat server: %v", err)
	}

	cfg, err := config.NewConfig(
		"localhost:8080",
		"postgres://test",
		base64.StdEncoding.EncodeToString([]byte("test-signing-key")),
		[]string{"http://localhost:3000"},
	)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	return NewBirdseyeApp(http.NewServeMux(), testutil.TestLogger(t), cs, db, cfg)
}

func TestUserIdContext(t *testing.T) {
	ctx := WithUserId(context.Background(), "u1")
	userId, ok := UserId(ctx)
	assert.True(t, ok, "expected user id to be present")
	assert.Equal(t, "u1", userId)

	_, ok = UserId(context.Background())
	assert.False(t, ok, "expected no user id in empty context")
}

func TestJwtRoundTrip(t *testing.T) {
	app := newTestApp(t, &database.MockBirdseyeRepository{})

	user := types.User{Id: "u1", Username: "alice"}
	token, err := app.createJwtForSession(user, time.Hour)
	assert.NoError(t, err, "expected no error creating token")

	userId, err := app.extractUserIdFromToken(token)
	assert.NoError(t, err, "expected no error extracting user id")
	assert.Equal(t, "u1", userId)
}

func TestJwtExpired(t *testing.T) {
	app := newTestApp(t, &database.MockBirdseyeRepository{})

	token, err := app.createJwtForSession(types.User{Id: "u1"}, -time.Hour)
	assert.NoError(t, err)

	_, err = app.extractUserIdFromToken(token)
	assert.Error(t, err, "expected error for expired token")
}

func TestJwtWrongKey(t *testing.T) {
	app := newTestApp(t, &database.MockBirdseyeRepository{})
	other := newTestApp(t, &database.MockBirdseyeRepository{})
	other.signingKey = []byte("other-signing-key")

	token, err := other.createJwtForSession(types.User{Id: "u1"}, time.Hour)
	assert.NoError(t, err)

	_, err = app.extractUserIdFromToken(token)
	assert.Error(t, err, "expected error for token signed with another key")
}

func TestAuthMiddleware(t *testing.T) {
	app := newTestApp(t, &database.MockBirdseyeRepository{})

	var gotUserId string
	handler := app.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotUserId, _ = UserId(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieKey, Value: "not-a-token"})

		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := app.createJwtForSession(types.User{Id: "u1"}, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.AddCookie(createJwtCookie(token, time.Hour))

		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", gotUserId, "expected user id to be injected into the request context")
		assert.Contains(t, rr.Header().Get("Cache-Control"), "no-store")
	})
}

func Test_hashAndVerifyPassword(t *testing.T) {
	hash, err := hashPassword("password123")
	assert.NoError(t, err, "expected no error hashing password")
	assert.NotEqual(t, "password123", hash, "expected hash to differ from plaintext")

	assert.True(t, verifyPassword(hash, "password123"), "expected matching password to verify")
	assert.False(t, verifyPassword(hash, "wrong"), "expected mismatched password to fail")
}
