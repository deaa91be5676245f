package usecase

import (
	"context"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// CallbackStep names one stage of the OAuth callback flow. The steps a
// request actually passed through are reported in order so the page can
// show where a failure happened.
type CallbackStep string

const (
	// StepProcessing covers query-parameter validation.
	StepProcessing CallbackStep = "processing"
	// StepAuthRestore covers loading the hand-off envelope and checking
	// the session it names.
	StepAuthRestore CallbackStep = "auth_restore"
	// StepExchangingCode covers trading the authorization code for
	// tokens.
	StepExchangingCode CallbackStep = "exchanging_code"
	// StepGettingPages covers fetching the page list when no cached
	// list rode along in the envelope.
	StepGettingPages CallbackStep = "getting_pages"
	// StepSaving covers persisting the connection.
	StepSaving CallbackStep = "saving"
	// StepSuccess is terminal.
	StepSuccess CallbackStep = "success"
	// StepError is terminal.
	StepError CallbackStep = "error"
)

// CallbackResult reports the outcome of a callback or page selection.
type CallbackResult struct {
	Steps          []CallbackStep           // States entered, in order.
	NeedsSelection bool                     // True when several pages are available and one must be picked.
	Pages          []entity.FacebookPage    // Offered pages when NeedsSelection is set.
	Connection     *entity.SocialConnection // The persisted connection on success.
	RedirectTo     string                   // Where the browser should go next.
}

// ConnectionUsecase drives social-platform linking from the first
// redirect through the callback to the stored connection, plus the
// data-deletion flow Facebook requires.
type ConnectionUsecase interface {
	// BeginLink writes a hand-off envelope and returns the provider
	// dialog URL to redirect the browser to.
	BeginLink(ctx context.Context, userID uuid.UUID, sessionID string, platform entity.Platform) (string, error)

	// HandleWidgetStatus processes a login-status report from the
	// embedded login widget. Whatever the status, the flow converges on
	// a persisted hand-off and the dialog URL; a connected status just
	// lets the envelope carry pre-fetched pages.
	HandleWidgetStatus(ctx context.Context, userID uuid.UUID, sessionID string, status entity.StatusChange) (string, error)

	// CompleteFacebookCallback runs the callback state machine for the
	// Facebook platform.
	CompleteFacebookCallback(ctx context.Context, state, code string) (*CallbackResult, error)

	// CompleteInstagramCallback runs the callback state machine for the
	// Instagram platform.
	CompleteInstagramCallback(ctx context.Context, state, code string) (*CallbackResult, error)

	// SelectPage finishes a multi-page callback by persisting the
	// chosen page.
	SelectPage(ctx context.Context, state, pageID string) (*CallbackResult, error)

	// ListConnections returns the user's connections with token
	// material redacted.
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error)

	// MessengerQR renders the m.me QR code for an owned page
	// connection.
	MessengerQR(ctx context.Context, userID, connectionID uuid.UUID) ([]byte, error)

	// HandleDeletionCallback processes a signed data-deletion request
	// from Facebook and returns the recorded request.
	HandleDeletionCallback(ctx context.Context, signedRequest string) (*entity.DeletionRequest, error)

	// DeletionStatus looks up a deletion request by its public code.
	DeletionStatus(ctx context.Context, code string) (*entity.DeletionRequest, error)

	// SweepExpiredHandoffs removes stale envelopes and reports how many
	// were removed.
	SweepExpiredHandoffs(ctx context.Context) (int64, error)
}
