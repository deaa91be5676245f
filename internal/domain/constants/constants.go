// Package constants defines shared domain constants.
package constants

// SessionKeyPrefix prefixes every persisted session blob. The auth
// layer owns this name; other storage users must stay out of it.
const SessionKeyPrefix = "sb-auth-token"

// SessionCookieName is the HTTP-only cookie carrying the opaque session
// ID. The blob it points at stays server-side under SessionKeyPrefix.
const SessionCookieName = "roost_session"

// Session store providers.
const (
	SessionStoreProviderMemory = "memory"
	SessionStoreProviderFile   = "file"
	SessionStoreProviderRedis  = "redis"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
