// Package facebook adapts the Facebook login dialog and Graph API to
// the SocialGraph interface. OAuth dialog and code exchange go through
// golang.org/x/oauth2; the remaining Graph reads are plain HTTP.
package facebook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"
	"roost/internal/errors"

	"golang.org/x/oauth2"
)

const (
	defaultGraphVersion = "v21.0"
	defaultTimeout      = 10 * time.Second

	dialogHost = "https://www.facebook.com"
	graphHost  = "https://graph.facebook.com"
)

// facebookScopes covers the messaging dashboard: page listing plus the
// conversation permissions the inbox needs.
var facebookScopes = []string{
	"public_profile",
	"email",
	"pages_show_list",
	"pages_messaging",
	"pages_read_engagement",
}

// instagramScopes extends the Facebook set with the Instagram
// professional-account permissions.
var instagramScopes = []string{
	"public_profile",
	"pages_show_list",
	"instagram_basic",
	"instagram_manage_messages",
}

// Graph is the Facebook platform adapter.
type Graph struct {
	appID       string
	appSecret   string
	redirectURL string
	version     string
	clock       service.Clock
	httpClient  *http.Client

	// Overridable hosts so tests can point at a local server.
	dialogBase string
	graphBase  string
}

// New creates the adapter. Missing Facebook settings are tolerated;
// every call then reports ErrFacebookNotConfigured.
func New(cfg *config.Config, clk service.Clock) service.SocialGraph {
	graph := &Graph{
		version:    defaultGraphVersion,
		clock:      clk,
		httpClient: &http.Client{Timeout: defaultTimeout},
		dialogBase: dialogHost,
		graphBase:  graphHost,
	}

	if cfg.Facebook != nil {
		graph.appID = cfg.Facebook.AppID
		graph.appSecret = cfg.Facebook.AppSecret
		graph.redirectURL = cfg.Facebook.RedirectURL
		if cfg.Facebook.GraphVersion != "" {
			graph.version = cfg.Facebook.GraphVersion
		}
		if cfg.Facebook.Timeout > 0 {
			graph.httpClient.Timeout = cfg.Facebook.Timeout
		}
	}

	return graph
}

func (g *Graph) configured() bool {
	return g.appID != "" && g.appSecret != "" && g.redirectURL != ""
}

// oauthConfig builds the oauth2 config for one platform. The endpoints
// pin the configured Graph version instead of the library defaults.
func (g *Graph) oauthConfig(platform entity.Platform) *oauth2.Config {
	scopes := facebookScopes
	if platform == entity.PlatformInstagram {
		scopes = instagramScopes
	}

	return &oauth2.Config{
		ClientID:     g.appID,
		ClientSecret: g.appSecret,
		RedirectURL:  g.redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/%s/dialog/oauth", g.dialogBase, g.version),
			TokenURL: fmt.Sprintf("%s/%s/oauth/access_token", g.graphBase, g.version),
		},
	}
}

// AuthorizationURL returns the login dialog URL carrying the hand-off
// state. The dialog always asks for a code, never an implicit token.
func (g *Graph) AuthorizationURL(state string, platform entity.Platform) (string, error) {
	if !g.configured() {
		return "", domainerrors.ErrFacebookNotConfigured
	}
	if !platform.IsValid() {
		return "", errors.Errorf("unsupported platform: %s", platform)
	}

	return g.oauthConfig(platform).AuthCodeURL(state), nil
}

// ExchangeCode trades the dialog's authorization code for a user token.
func (g *Graph) ExchangeCode(ctx context.Context, code string) (string, time.Time, error) {
	if !g.configured() {
		return "", time.Time{}, domainerrors.ErrFacebookNotConfigured
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)

	token, err := g.oauthConfig(entity.PlatformFacebook).Exchange(ctx, code)
	if err != nil {
		return "", time.Time{}, domainerrors.ErrOAuthExchangeFailed.WrapMessage(err.Error())
	}

	return token.AccessToken, token.Expiry, nil
}

// LongLivedToken upgrades a short-lived user token. Page tokens minted
// from a long-lived user token do not expire on their own.
func (g *Graph) LongLivedToken(ctx context.Context, shortToken string) (string, time.Time, error) {
	if !g.configured() {
		return "", time.Time{}, domainerrors.ErrFacebookNotConfigured
	}

	query := url.Values{}
	query.Set("grant_type", "fb_exchange_token")
	query.Set("client_id", g.appID)
	query.Set("client_secret", g.appSecret)
	query.Set("fb_exchange_token", shortToken)

	endpoint := fmt.Sprintf("%s/%s/oauth/access_token?%s", g.graphBase, g.version, query.Encode())

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := g.getJSON(ctx, endpoint, &payload); err != nil {
		return "", time.Time{}, errors.Wrap(err, "token upgrade failed")
	}

	expiry := time.Time{}
	if payload.ExpiresIn > 0 {
		expiry = g.clock.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}

	return payload.AccessToken, expiry, nil
}

// UserInfo fetches the profile behind a token. An empty facebookUID
// resolves the token owner.
func (g *Graph) UserInfo(ctx context.Context, facebookUID, accessToken string) (*entity.FacebookUser, error) {
	if !g.configured() {
		return nil, domainerrors.ErrFacebookNotConfigured
	}

	subject := facebookUID
	if subject == "" {
		subject = "me"
	}

	query := url.Values{}
	query.Set("fields", "id,name,email")
	query.Set("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s/%s?%s", g.graphBase, g.version, subject, query.Encode())

	var user entity.FacebookUser
	if err := g.getJSON(ctx, endpoint, &user); err != nil {
		return nil, errors.Wrap(err, "profile fetch failed")
	}

	return &user, nil
}

// Pages lists the pages the token can manage.
func (g *Graph) Pages(ctx context.Context, accessToken string) ([]entity.FacebookPage, error) {
	if !g.configured() {
		return nil, domainerrors.ErrFacebookNotConfigured
	}

	query := url.Values{}
	query.Set("fields", "id,name,access_token,category,tasks")
	query.Set("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s/me/accounts?%s", g.graphBase, g.version, query.Encode())

	var payload struct {
		Data []entity.FacebookPage `json:"data"`
	}
	if err := g.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, errors.Wrap(err, "page listing failed")
	}

	return payload.Data, nil
}

// ParseSignedRequest verifies and decodes a signed_request parameter,
// the format Facebook uses for its data-deletion callback.
func (g *Graph) ParseSignedRequest(signedRequest string) (*service.SignedRequestPayload, error) {
	if !g.configured() {
		return nil, domainerrors.ErrFacebookNotConfigured
	}

	encodedSig, encodedPayload, found := strings.Cut(signedRequest, ".")
	if !found {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("missing signature separator")
	}

	signature, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("signature is not base64url")
	}

	mac := hmac.New(sha256.New, []byte(g.appSecret))
	mac.Write([]byte(encodedPayload))
	if !hmac.Equal(signature, mac.Sum(nil)) {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("signature mismatch")
	}

	decodedPayload, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("payload is not base64url")
	}

	var payload service.SignedRequestPayload
	if err := json.Unmarshal(decodedPayload, &payload); err != nil {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("payload is not valid json")
	}

	if !strings.EqualFold(payload.Algorithm, "HMAC-SHA256") {
		return nil, domainerrors.ErrSignedRequestInvalid.WrapMessage("unexpected signing algorithm")
	}

	return &payload, nil
}

// getJSON performs a Graph GET and decodes the 200 response.
func (g *Graph) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
