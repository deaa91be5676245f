package service

import (
	"context"
	"time"

	"roost/internal/domain/entity"
)

// SignedRequestPayload is the decoded body of a Facebook signed_request,
// as delivered to the data-deletion callback.
type SignedRequestPayload struct {
	UserID    string `json:"user_id"`
	Algorithm string `json:"algorithm"`
	IssuedAt  int64  `json:"issued_at"`
}

// SocialGraph wraps the Facebook Graph API behind context-aware calls
// with explicit timeouts. Every method fails with
// domainerrors.ErrFacebookNotConfigured when the app credentials are
// absent, so a misconfigured deployment degrades to clear errors instead
// of panicking at dial time.
type SocialGraph interface {
	// AuthorizationURL builds the OAuth dialog URL for the given state
	// parameter, requesting the server-side code flow
	// (response_type=code).
	AuthorizationURL(state string, platform entity.Platform) (string, error)

	// ExchangeCode trades an authorization code for a user access token.
	ExchangeCode(ctx context.Context, code string) (token string, expiry time.Time, err error)

	// LongLivedToken trades a short-lived user token for a long-lived one.
	LongLivedToken(ctx context.Context, shortToken string) (token string, expiry time.Time, err error)

	// UserInfo fetches the minimal profile for the token's user.
	UserInfo(ctx context.Context, facebookUID, accessToken string) (*entity.FacebookUser, error)

	// Pages lists the pages the token's user administers, in API order.
	Pages(ctx context.Context, accessToken string) ([]entity.FacebookPage, error)

	// ParseSignedRequest verifies and decodes a signed_request payload.
	ParseSignedRequest(signedRequest string) (*SignedRequestPayload, error)
}
