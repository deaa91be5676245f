// Package backend implements the auth client wrapper over the hosted
// auth service's REST API. It owns session persistence through the
// session store and announces every state change it causes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"
	"roost/internal/errors"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// Client talks to a GoTrue-compatible auth API. All methods honor the
// wrapper contract: reads degrade to "no session", sign-out is
// best-effort, writes report real errors.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	tokens     service.TokenService
	store      service.SessionStore
	clock      service.Clock
	logger     *slog.Logger

	subMu       sync.RWMutex
	subscribers map[int]func(entity.AuthChange)
	nextSubID   int
}

// New creates the auth backend client. A missing authBackend config
// section is not an error at construction time; every call then fails
// with ErrAuthNotConfigured so the rest of the app still boots. tokens
// is optional; without it every user check goes over the network.
func New(cfg *config.Config, tokens service.TokenService, store service.SessionStore, clk service.Clock, logger *slog.Logger) service.AuthBackend {
	client := &Client{
		tokens:      tokens,
		store:       store,
		clock:       clk,
		logger:      logger,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		subscribers: make(map[int]func(entity.AuthChange)),
	}

	if cfg.AuthBackend != nil {
		client.baseURL = cfg.AuthBackend.URL
		client.anonKey = cfg.AuthBackend.AnonKey
		if cfg.AuthBackend.Timeout > 0 {
			client.httpClient.Timeout = cfg.AuthBackend.Timeout
		}
	}

	return client
}

// configured reports whether the deployment carries auth settings.
func (c *Client) configured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// sessionPayload is the auth service's session JSON.
type sessionPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
}

// toSession converts the wire payload to the domain session. ExpiresAt
// wins when present; some deployments only send expires_in.
func (c *Client) toSession(payload *sessionPayload) *entity.Session {
	expiresAt := time.Unix(payload.ExpiresAt, 0)
	if payload.ExpiresAt == 0 {
		expiresAt = c.clock.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}

	return &entity.Session{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		TokenType:    payload.TokenType,
		ExpiresAt:    expiresAt,
	}
}

// SignIn performs a password grant and stores the resulting session.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, *entity.Session, error) {
	if !c.configured() {
		return "", nil, domainerrors.ErrAuthNotConfigured
	}

	body := map[string]string{"email": email, "password": password}

	var payload sessionPayload
	status, err := c.postJSON(ctx, "/auth/v1/token?grant_type=password", "", body, &payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "password grant failed")
	}
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		return "", nil, domainerrors.ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return "", nil, errors.Errorf("password grant failed with status %d", status)
	}

	sessionID := uuid.NewString()
	session := c.toSession(&payload)
	c.store.Save(ctx, sessionID, session)
	c.emit(entity.AuthChange{Kind: entity.AuthSignedIn, SessionID: sessionID, Session: session})

	return sessionID, session, nil
}

// SignUp registers the account. When the deployment requires email
// confirmation the response carries no token material; the caller gets
// a nil session and shows the confirmation notice.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, *entity.Session, error) {
	if !c.configured() {
		return "", nil, domainerrors.ErrAuthNotConfigured
	}

	body := map[string]string{"email": email, "password": password}

	var payload sessionPayload
	status, err := c.postJSON(ctx, "/auth/v1/signup", "", body, &payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign-up failed")
	}
	if status != http.StatusOK {
		return "", nil, domainerrors.ErrSignUpFailed.WrapMessage("auth service rejected sign-up")
	}

	if payload.AccessToken == "" {
		// Account created, confirmation pending.
		return "", nil, nil
	}

	sessionID := uuid.NewString()
	session := c.toSession(&payload)
	c.store.Save(ctx, sessionID, session)
	c.emit(entity.AuthChange{Kind: entity.AuthSignedIn, SessionID: sessionID, Session: session})

	return sessionID, session, nil
}

// GetSession returns the stored session or nil. It never fails; the
// store already degrades every failure to a logged nil.
func (c *Client) GetSession(ctx context.Context, sessionID string) *entity.Session {
	if sessionID == "" {
		return nil
	}

	return c.store.Load(ctx, sessionID)
}

// RefreshSession exchanges the stored refresh token for a replacement
// session and persists it under the same ID.
func (c *Client) RefreshSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if !c.configured() {
		return nil, domainerrors.ErrAuthNotConfigured
	}

	current := c.store.Load(ctx, sessionID)
	if current == nil {
		return nil, domainerrors.ErrNoSession
	}

	body := map[string]string{"refresh_token": current.RefreshToken}

	var payload sessionPayload
	status, err := c.postJSON(ctx, "/auth/v1/token?grant_type=refresh_token", "", body, &payload)
	if err != nil {
		return nil, errors.Wrap(err, "refresh grant failed")
	}
	if status != http.StatusOK {
		return nil, domainerrors.ErrRefreshRejected.WrapMessage("auth service declined the refresh")
	}

	session := c.toSession(&payload)
	c.store.Save(ctx, sessionID, session)
	c.emit(entity.AuthChange{Kind: entity.AuthTokenRefreshed, SessionID: sessionID, Session: session})

	return session, nil
}

// SignOut invalidates the session. The local entry goes away first so
// the caller ends up signed out no matter what the auth service says;
// backend failures are logged and swallowed.
func (c *Client) SignOut(ctx context.Context, sessionID string, global bool) {
	session := c.store.Load(ctx, sessionID)
	c.store.Delete(ctx, sessionID)

	if session != nil && c.configured() {
		path := "/auth/v1/logout"
		if global {
			path += "?scope=global"
		}
		if status, err := c.postJSON(ctx, path, session.AccessToken, nil, nil); err != nil {
			c.logger.Warn("sign-out call failed, local session already cleared",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		} else if status != http.StatusNoContent && status != http.StatusOK {
			c.logger.Warn("sign-out rejected by auth service, local session already cleared",
				slog.String("session_id", sessionID),
				slog.Int("status", status),
			)
		}
	}

	c.emit(entity.AuthChange{Kind: entity.AuthSignedOut, SessionID: sessionID})
}

// userPayload is the auth service's user JSON.
type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

// FetchUser resolves the identity behind a session. The role returned
// here is the customer default; the profile row holds the real role.
func (c *Client) FetchUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if !c.configured() {
		return nil, domainerrors.ErrAuthNotConfigured
	}
	if session == nil {
		return nil, domainerrors.ErrNoSession
	}

	// A token that fails local verification cannot pass the auth
	// service either; skip the round trip.
	if c.tokens != nil {
		if _, err := c.tokens.ParseAccessToken(session.AccessToken); err != nil {
			return nil, errors.Wrap(err, "access token failed verification")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user request")
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload userPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode user response")
	}

	userID, err := uuid.Parse(payload.ID)
	if err != nil {
		return nil, errors.Wrap(err, "auth service returned a non-uuid user id")
	}

	return &entity.User{
		ID:    userID,
		Email: payload.Email,
		Name:  payload.UserMetadata.Name,
		Role:  entity.RoleCustomer,
	}, nil
}

// OnAuthChange registers a subscriber for auth-state changes.
func (c *Client) OnAuthChange(fn func(entity.AuthChange)) func() {
	c.subMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subscribers, id)
		c.subMu.Unlock()
	}
}

// emit delivers a change to every subscriber outside the lock.
func (c *Client) emit(change entity.AuthChange) {
	c.subMu.RLock()
	fns := make([]func(entity.AuthChange), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.subMu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

// postJSON sends a JSON POST with the project's api key. When authToken
// is set it overrides the anon bearer. A nil out skips decoding. The
// status code is returned for callers that map specific statuses; only
// transport-level problems surface as errors.
func (c *Client) postJSON(ctx context.Context, path, authToken string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "failed to decode response")
		}
	} else {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp.StatusCode, nil
}
