package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]*entity.Session)}
}

func (s *stubStore) Load(_ context.Context, id string) *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[id]
}

func (s *stubStore) Save(_ context.Context, id string, session *entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
}

func (s *stubStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *stubStore) Keys(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		keys = append(keys, id)
	}

	return keys
}

func (s *stubStore) DeleteAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*entity.Session)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) NewTimer(time.Duration) service.Timer {
	panic("timer not expected in this test")
}

func (c *fixedClock) NewTicker(time.Duration) service.Ticker {
	panic("ticker not expected in this test")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(url string) *config.Config {
	return &config.Config{
		AuthBackend: &config.AuthBackendConfig{
			URL:     url,
			AnonKey: "test-anon-key",
		},
	}
}

func newTestClient(url string, store service.SessionStore) service.AuthBackend {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return New(testConfig(url), nil, store, clk, testLogger())
}

func TestClientNotConfigured(t *testing.T) {
	store := newStubStore()
	client := New(&config.Config{}, nil, store, &fixedClock{}, testLogger())
	ctx := context.Background()

	_, _, err := client.SignIn(ctx, "user@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrAuthNotConfigured)

	_, _, err = client.SignUp(ctx, "user@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrAuthNotConfigured)

	_, err = client.RefreshSession(ctx, "some-session")
	assert.ErrorIs(t, err, domainerrors.ErrAuthNotConfigured)

	_, err = client.FetchUser(ctx, &entity.Session{AccessToken: "token"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthNotConfigured)

	assert.Nil(t, client.GetSession(ctx, "some-session"))

	// Local cleanup still runs without a configured backend.
	store.Save(ctx, "stale", &entity.Session{AccessToken: "token"})
	client.SignOut(ctx, "stale", true)
	assert.Nil(t, store.Load(ctx, "stale"))
}

func TestSignInStoresSessionAndEmitsChange(t *testing.T) {
	expiresAt := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"token_type":    "bearer",
			"expires_at":    expiresAt.Unix(),
			"refresh_token": "refresh-1",
		})
	}))
	defer server.Close()

	store := newStubStore()
	client := newTestClient(server.URL, store)

	var changes []entity.AuthChange
	unsubscribe := client.OnAuthChange(func(change entity.AuthChange) {
		changes = append(changes, change)
	})
	defer unsubscribe()

	sessionID, session, err := client.SignIn(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotNil(t, session)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, expiresAt.Unix(), session.ExpiresAt.Unix())

	stored := store.Load(context.Background(), sessionID)
	require.NotNil(t, stored)
	assert.Equal(t, "access-1", stored.AccessToken)

	require.Len(t, changes, 1)
	assert.Equal(t, entity.AuthSignedIn, changes[0].Kind)
	assert.Equal(t, sessionID, changes[0].SessionID)
}

func TestSignInInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL, newStubStore())

	_, _, err := client.SignIn(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSignUpConfirmationRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// No token material when the deployment requires email confirmation.
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "5a41d6a5-1c42-4b43-9a2c-111111111111"})
	}))
	defer server.Close()

	store := newStubStore()
	client := newTestClient(server.URL, store)

	sessionID, session, err := client.SignUp(context.Background(), "new@example.com", "secret")
	require.NoError(t, err)
	assert.Empty(t, sessionID)
	assert.Nil(t, session)
	assert.Empty(t, store.Keys(context.Background()))
}

func TestRefreshSessionReplacesUnderSameID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-old", body["refresh_token"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-new",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-new",
		})
	}))
	defer server.Close()

	store := newStubStore()
	store.Save(context.Background(), "sid-1", &entity.Session{
		AccessToken:  "access-old",
		RefreshToken: "refresh-old",
	})

	client := newTestClient(server.URL, store)

	var changes []entity.AuthChange
	unsubscribe := client.OnAuthChange(func(change entity.AuthChange) {
		changes = append(changes, change)
	})
	defer unsubscribe()

	session, err := client.RefreshSession(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "access-new", session.AccessToken)

	stored := store.Load(context.Background(), "sid-1")
	require.NotNil(t, stored)
	assert.Equal(t, "access-new", stored.AccessToken)
	assert.Equal(t, "refresh-new", stored.RefreshToken)

	require.Len(t, changes, 1)
	assert.Equal(t, entity.AuthTokenRefreshed, changes[0].Kind)
}

func TestRefreshSessionWithoutStoredSession(t *testing.T) {
	client := newTestClient("http://localhost:1", newStubStore())

	_, err := client.RefreshSession(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestRefreshSessionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := newStubStore()
	store.Save(context.Background(), "sid-1", &entity.Session{RefreshToken: "refresh-old"})

	client := newTestClient(server.URL, store)

	_, err := client.RefreshSession(context.Background(), "sid-1")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshRejected)

	// The stored session stays untouched on rejection.
	assert.NotNil(t, store.Load(context.Background(), "sid-1"))
}

func TestSignOutClearsLocalSessionDespiteBackendFailure(t *testing.T) {
	var gotScope string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		gotScope = r.URL.Query().Get("scope")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := newStubStore()
	store.Save(context.Background(), "sid-1", &entity.Session{AccessToken: "access-1"})

	client := newTestClient(server.URL, store)

	var changes []entity.AuthChange
	unsubscribe := client.OnAuthChange(func(change entity.AuthChange) {
		changes = append(changes, change)
	})
	defer unsubscribe()

	client.SignOut(context.Background(), "sid-1", true)

	assert.Equal(t, "global", gotScope)
	assert.Nil(t, store.Load(context.Background(), "sid-1"))
	require.Len(t, changes, 1)
	assert.Equal(t, entity.AuthSignedOut, changes[0].Kind)
}

func TestFetchUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "5a41d6a5-1c42-4b43-9a2c-222222222222",
			"email":         "user@example.com",
			"user_metadata": map[string]string{"name": "Pat"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, newStubStore())

	user, err := client.FetchUser(context.Background(), &entity.Session{AccessToken: "access-1"})
	require.NoError(t, err)
	assert.Equal(t, "5a41d6a5-1c42-4b43-9a2c-222222222222", user.ID.String())
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Pat", user.Name)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestFetchUserNilSession(t *testing.T) {
	client := newTestClient("http://localhost:1", newStubStore())

	_, err := client.FetchUser(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

type stubVerifier struct {
	err error
}

func (v *stubVerifier) ParseAccessToken(string) (*service.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}

	return &service.Claims{}, nil
}

func TestFetchUserRejectedByLocalVerifier(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer server.Close()

	verifier := &stubVerifier{err: errors.New("token is expired")}
	client := New(testConfig(server.URL), verifier, newStubStore(), &fixedClock{}, testLogger())

	_, err := client.FetchUser(context.Background(), &entity.Session{AccessToken: "expired"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token failed verification")
	assert.Zero(t, calls)
}

func TestFetchUserPassesLocalVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "5a41d6a5-1c42-4b43-9a2c-333333333333",
			"email": "user@example.com",
		})
	}))
	defer server.Close()

	client := New(testConfig(server.URL), &stubVerifier{}, newStubStore(), &fixedClock{}, testLogger())

	user, err := client.FetchUser(context.Background(), &entity.Session{AccessToken: "live"})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestOnAuthChangeUnsubscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-1",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, newStubStore())

	calls := 0
	unsubscribe := client.OnAuthChange(func(entity.AuthChange) { calls++ })

	_, _, err := client.SignIn(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()

	_, _, err = client.SignIn(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
