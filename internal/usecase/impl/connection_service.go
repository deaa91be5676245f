package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	redirectLogin    = "/auth"
	redirectSettings = "/settings"
)

// connectionService implements the ConnectionUsecase interface. Access
// tokens are sealed the moment they arrive from the Graph API; nothing
// below this layer ever sees plaintext, including the cached page lists
// inside hand-off envelopes.
type connectionService struct {
	fx.In

	txManager repository.TransactionManager
	backend   service.AuthBackend
	graph     service.SocialGraph
	cipher    service.TokenCipher
	publisher service.EventPublisher
	qrSvc     service.QRCodeService
	clock     service.Clock
	logger    *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(
	txManager repository.TransactionManager,
	backend service.AuthBackend,
	graph service.SocialGraph,
	cipher service.TokenCipher,
	publisher service.EventPublisher,
	qrSvc service.QRCodeService,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ConnectionUsecase {
	return &connectionService{
		txManager: txManager,
		backend:   backend,
		graph:     graph,
		cipher:    cipher,
		publisher: publisher,
		qrSvc:     qrSvc,
		clock:     clock,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLink writes a fresh hand-off envelope and returns the provider's
// OAuth dialog URL. The envelope is the only thing that survives the
// full-page redirect, so it must be durable before the URL is handed out.
func (srv *connectionService) BeginLink(ctx context.Context, userID uuid.UUID, sessionID string, platform entity.Platform) (string, error) {
	if !platform.IsValid() {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "unknown platform")
	}

	envelope := srv.newEnvelope(userID, sessionID, platform)

	// 1. Build the dialog URL first so a configuration problem surfaces
	// before anything is written.
	dialogURL, err := srv.graph.AuthorizationURL(envelope.State, platform)
	if err != nil {
		srv.log(ctx).Error("Failed to build OAuth dialog URL", slog.Any("error", err), slog.Any("platform", platform))
		return "", err
	}

	// 2. Persist the envelope.
	if err := srv.saveEnvelope(ctx, envelope); err != nil {
		srv.log(ctx).Error("Failed to persist hand-off envelope", slog.Any("error", err), slog.Any("user_id", userID))
		return "", errors.Wrap(err, "failed to persist hand-off envelope")
	}

	srv.log(ctx).Info("Link started",
		slog.Any("user_id", userID),
		slog.Any("platform", platform),
		slog.Any("state", envelope.State))

	return dialogURL, nil
}

// HandleWidgetStatus reacts to the Facebook login widget reporting its
// status. A connected status lets us cache the profile and page list
// ahead of time, but no branch depends on that succeeding: every status
// converges on a persisted envelope and a redirect to the code-flow
// dialog, which is the only authorization the gateway trusts.
func (srv *connectionService) HandleWidgetStatus(ctx context.Context, userID uuid.UUID, sessionID string, status entity.StatusChange) (string, error) {
	envelope := srv.newEnvelope(userID, sessionID, entity.PlatformFacebook)

	switch status.Status {
	case entity.LoginStatusConnected:
		srv.prefetchFromWidget(ctx, envelope, status)
	case entity.LoginStatusNotAuthorized:
		srv.log(ctx).Info("Widget reports app not authorized", slog.Any("user_id", userID))
	default:
		srv.log(ctx).Info("Widget reports no usable Facebook session",
			slog.Any("user_id", userID),
			slog.Any("status", status.Status))
	}

	dialogURL, err := srv.graph.AuthorizationURL(envelope.State, entity.PlatformFacebook)
	if err != nil {
		srv.log(ctx).Error("Failed to build OAuth dialog URL", slog.Any("error", err))
		return "", err
	}

	if err := srv.saveEnvelope(ctx, envelope); err != nil {
		srv.log(ctx).Error("Failed to persist hand-off envelope", slog.Any("error", err), slog.Any("user_id", userID))
		return "", errors.Wrap(err, "failed to persist hand-off envelope")
	}

	srv.log(ctx).Info("Widget status handled",
		slog.Any("user_id", userID),
		slog.Any("status", status.Status),
		slog.Any("state", envelope.State))

	return dialogURL, nil
}

// prefetchFromWidget caches profile and pages off the widget's
// short-lived token. Failures are logged and dropped; the callback can
// fetch everything again with the real token.
func (srv *connectionService) prefetchFromWidget(ctx context.Context, envelope *entity.HandoffState, status entity.StatusChange) {
	envelope.ExternalUID = status.FacebookUID

	if status.AccessToken == "" {
		return
	}

	profile, err := srv.graph.UserInfo(ctx, status.FacebookUID, status.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Widget profile prefetch failed", slog.Any("error", err))
	} else if profile.ID != "" {
		envelope.ExternalUID = profile.ID
	}

	pages, err := srv.graph.Pages(ctx, status.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Widget page prefetch failed", slog.Any("error", err))
		return
	}

	sealed, err := srv.sealPages(pages)
	if err != nil {
		srv.log(ctx).Warn("Failed to seal prefetched page tokens", slog.Any("error", err))
		return
	}

	envelope.Pages = sealed
}

// CompleteFacebookCallback finishes a Facebook link after the provider
// redirected back with state and code.
func (srv *connectionService) CompleteFacebookCallback(ctx context.Context, state, code string) (*usecase.CallbackResult, error) {
	return srv.complete(ctx, state, code, entity.PlatformFacebook)
}

// CompleteInstagramCallback finishes an Instagram link. The flow is the
// same dialog and the same Graph calls, only the recorded platform
// differs.
func (srv *connectionService) CompleteInstagramCallback(ctx context.Context, state, code string) (*usecase.CallbackResult, error) {
	return srv.complete(ctx, state, code, entity.PlatformInstagram)
}

// complete walks the callback state machine. The envelope outlives every
// failure except success: only a persisted connection removes it, so any
// aborted attempt can be retried while the envelope is fresh.
func (srv *connectionService) complete(ctx context.Context, state, code string, platform entity.Platform) (*usecase.CallbackResult, error) {
	result := &usecase.CallbackResult{Steps: []usecase.CallbackStep{usecase.StepProcessing}}

	// 1. Recover the envelope written before the redirect.
	result.Steps = append(result.Steps, usecase.StepAuthRestore)

	envelope, err := srv.restoreEnvelope(ctx, result, state)
	if err != nil {
		return result, err
	}

	// 2. An authorization code is not optional in the code flow.
	if code == "" {
		result.Steps = append(result.Steps, usecase.StepError)
		srv.log(ctx).Warn("Callback arrived without a code", slog.Any("state", state))

		return result, domainerrors.ErrOAuthCodeMissing
	}

	// 3. Exchange the code and stretch the token.
	result.Steps = append(result.Steps, usecase.StepExchangingCode)

	userToken, tokenExpiry, err := srv.exchangeAndStretch(ctx, code)
	if err != nil {
		result.Steps = append(result.Steps, usecase.StepError)
		srv.log(ctx).Error("Code exchange failed", slog.Any("error", err), slog.Any("state", state))

		return result, err
	}

	srv.fillExternalUID(ctx, envelope, userToken)

	// 4. Fetch pages unless the widget already cached them.
	pages := envelope.Pages
	if len(pages) == 0 {
		result.Steps = append(result.Steps, usecase.StepGettingPages)

		fetched, err := srv.graph.Pages(ctx, userToken)
		if err != nil {
			result.Steps = append(result.Steps, usecase.StepError)
			srv.log(ctx).Error("Page listing failed", slog.Any("error", err), slog.Any("state", state))

			return result, errors.Wrap(domainerrors.ErrPageFetchFailed, err.Error())
		}

		pages, err = srv.sealPages(fetched)
		if err != nil {
			result.Steps = append(result.Steps, usecase.StepError)
			return result, errors.Wrap(err, "failed to seal page tokens")
		}
	}

	// 5. Branch on how many pages the user administers.
	switch len(pages) {
	case 0:
		sealedUser, err := srv.cipher.Seal(userToken)
		if err != nil {
			result.Steps = append(result.Steps, usecase.StepError)
			return result, errors.Wrap(err, "failed to seal user token")
		}

		conn := &entity.SocialConnection{
			UserID:      envelope.UserID,
			Platform:    platform,
			AccessToken: sealedUser,
			TokenExpiry: tokenExpiry,
			ExternalUID: envelope.ExternalUID,
		}

		return srv.persistConnection(ctx, result, envelope, conn)

	case 1:
		page := pages[0]
		conn := &entity.SocialConnection{
			UserID:      envelope.UserID,
			Platform:    platform,
			PageID:      page.ID,
			PageName:    page.Name,
			AccessToken: page.AccessToken,
			ExternalUID: envelope.ExternalUID,
		}

		return srv.persistConnection(ctx, result, envelope, conn)

	default:
		// Cache the page list on the envelope so the selection round
		// trip does not need another Graph call.
		envelope.Pages = pages
		if err := srv.saveEnvelope(ctx, envelope); err != nil {
			result.Steps = append(result.Steps, usecase.StepError)
			return result, errors.Wrap(err, "failed to cache page list")
		}

		result.NeedsSelection = true
		result.Pages = redactPages(pages)

		srv.log(ctx).Info("Link needs page selection",
			slog.Any("user_id", envelope.UserID),
			slog.Int("pages", len(pages)))

		return result, nil
	}
}

// SelectPage resumes a link that paused for page selection. The chosen
// page must be one the envelope cached; anything else is rejected.
func (srv *connectionService) SelectPage(ctx context.Context, state, pageID string) (*usecase.CallbackResult, error) {
	result := &usecase.CallbackResult{Steps: []usecase.CallbackStep{usecase.StepProcessing}}

	envelope, err := srv.restoreEnvelope(ctx, result, state)
	if err != nil {
		return result, err
	}

	var chosen *entity.FacebookPage
	for i := range envelope.Pages {
		if envelope.Pages[i].ID == pageID {
			chosen = &envelope.Pages[i]
			break
		}
	}

	if chosen == nil {
		result.Steps = append(result.Steps, usecase.StepError)
		srv.log(ctx).Warn("Selected page not in cached list",
			slog.Any("state", state),
			slog.Any("page_id", pageID))

		return result, domainerrors.ErrPageNotCached
	}

	conn := &entity.SocialConnection{
		UserID:      envelope.UserID,
		Platform:    envelope.Platform,
		PageID:      chosen.ID,
		PageName:    chosen.Name,
		AccessToken: chosen.AccessToken,
		ExternalUID: envelope.ExternalUID,
	}

	return srv.persistConnection(ctx, result, envelope, conn)
}

// ListConnections returns the user's connections with tokens redacted.
// Plaintext never leaves the usecase layer and sealed values have no
// business reaching the browser either.
func (srv *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error) {
	var conns []*entity.SocialConnection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		conns, err = repoFactory.NewConnectionRepository().ListByUser(ctx, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list connections", slog.Any("error", err), slog.Any("user_id", userID))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list connections")
	}

	for _, conn := range conns {
		conn.AccessToken = ""
	}

	return conns, nil
}

// MessengerQR renders the m.me QR code for one of the caller's
// page-level connections.
func (srv *connectionService) MessengerQR(ctx context.Context, userID, connectionID uuid.UUID) ([]byte, error) {
	var conn *entity.SocialConnection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		conn, err = repoFactory.NewConnectionRepository().FindByID(ctx, connectionID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "connection not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if conn.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "connection belongs to another user")
	}

	if conn.UserLevel() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user-level connection has no messenger link")
	}

	png, err := srv.qrSvc.GenerateMessengerQR(conn.MessengerLink())
	if err != nil {
		srv.log(ctx).Error("QR generation failed", slog.Any("error", err), slog.Any("connection_id", connectionID))
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// HandleDeletionCallback processes a Facebook data-deletion request. The
// signed request only carries Facebook's own user ID, so the owner is
// found through the stored connections. A request for an unknown user
// completes immediately; there is nothing to delete.
func (srv *connectionService) HandleDeletionCallback(ctx context.Context, signedRequest string) (*entity.DeletionRequest, error) {
	payload, err := srv.graph.ParseSignedRequest(signedRequest)
	if err != nil {
		srv.log(ctx).Warn("Rejected deletion callback", slog.Any("error", err))
		return nil, err
	}

	now := srv.clock.Now()
	req := &entity.DeletionRequest{
		Code:        uuid.New().String(),
		Status:      entity.DeletionPending,
		RequestedAt: now,
	}

	var removed int64

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.NewConnectionRepository()
		deletionRepo := repoFactory.NewDeletionRequestRepository()

		// 1. Resolve the dashboard user behind Facebook's user ID.
		ownerID, err := connRepo.FindOwnerByExternalUID(ctx, payload.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrConnectionNotFound) {
				return err
			}

			// 2a. Nobody to delete; record the request as done.
			completedAt := now
			req.UserID = uuid.Nil
			req.Status = entity.DeletionCompleted
			req.CompletedAt = &completedAt

			return deletionRepo.Create(ctx, req)
		}

		// 2b. Record the request, then drop the user's connections.
		req.UserID = ownerID
		if err := deletionRepo.Create(ctx, req); err != nil {
			return err
		}

		removed, err = connRepo.DeleteByUser(ctx, ownerID)
		if err != nil {
			return err
		}

		if err := deletionRepo.MarkCompleted(ctx, req.Code, now); err != nil {
			return err
		}

		completedAt := now
		req.Status = entity.DeletionCompleted
		req.CompletedAt = &completedAt

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Deletion callback failed", slog.Any("error", err), slog.Any("external_uid", payload.UserID))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to process deletion request")
	}

	if removed > 0 {
		srv.publishEvent(ctx, &service.ConnectionEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			EventID:    uuid.New().String(),
			Kind:       service.ConnectionRemoved,
			UserID:     req.UserID.String(),
			Platform:   entity.PlatformFacebook.String(),
			OccurredAt: now,
		})
	}

	srv.log(ctx).Info("Deletion request processed",
		slog.Any("code", req.Code),
		slog.Any("user_id", req.UserID),
		slog.Int64("connections_removed", removed))

	return req, nil
}

// DeletionStatus answers for a confirmation code previously handed back
// to Facebook.
func (srv *connectionService) DeletionStatus(ctx context.Context, code string) (*entity.DeletionRequest, error) {
	var req *entity.DeletionRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		req, err = repoFactory.NewDeletionRequestRepository().FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrDeletionRequestNotFound) {
				return errors.Wrap(domainerrors.ErrDeletionRequestNotFound, "no request for code")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

// SweepExpiredHandoffs removes hand-off envelopes past their deadline.
// The worker calls this on a fixed interval.
func (srv *connectionService) SweepExpiredHandoffs(ctx context.Context) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		removed, err = repoFactory.NewHandoffRepository().DeleteExpired(ctx, srv.clock.Now())

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Hand-off sweep failed", slog.Any("error", err))
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sweep hand-offs")
	}

	if removed > 0 {
		srv.log(ctx).Info("Swept expired hand-offs", slog.Int64("count", removed))
	}

	return removed, nil
}

// newEnvelope mints a hand-off envelope with a fresh state parameter.
func (srv *connectionService) newEnvelope(userID uuid.UUID, sessionID string, platform entity.Platform) *entity.HandoffState {
	now := srv.clock.Now()

	return &entity.HandoffState{
		State:     uuid.New().String(),
		Version:   entity.HandoffVersion,
		UserID:    userID,
		SessionID: sessionID,
		Platform:  platform,
		IssuedAt:  now,
		ExpiresAt: now.Add(entity.HandoffTTL),
	}
}

func (srv *connectionService) saveEnvelope(ctx context.Context, envelope *entity.HandoffState) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewHandoffRepository().Save(ctx, envelope)
	})
}

// restoreEnvelope loads and vets the hand-off envelope for a callback.
// A missing, stale or foreign-layout envelope fails open: the result
// carries a login redirect and the browser starts over. A stale envelope
// is the common case after an abandoned dialog tab, so it is logged but
// not treated as an attack.
func (srv *connectionService) restoreEnvelope(ctx context.Context, result *usecase.CallbackResult, state string) (*entity.HandoffState, error) {
	if state == "" {
		result.Steps = append(result.Steps, usecase.StepError)
		result.RedirectTo = redirectLogin

		return nil, domainerrors.ErrOAuthStateMissing
	}

	var envelope *entity.HandoffState

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		envelope, err = repoFactory.NewHandoffRepository().Find(ctx, state)

		return err
	})
	if err != nil {
		result.Steps = append(result.Steps, usecase.StepError)
		result.RedirectTo = redirectLogin

		if errors.Is(err, repository.ErrHandoffNotFound) {
			srv.log(ctx).Warn("No hand-off for state", slog.Any("state", state))
			return nil, errors.Wrap(domainerrors.ErrOAuthStateMissing, "unknown state parameter")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load hand-off envelope")
	}

	now := srv.clock.Now()
	if envelope.Stale(now) {
		result.Steps = append(result.Steps, usecase.StepError)
		result.RedirectTo = redirectLogin
		srv.log(ctx).Warn("Hand-off rejected, too old",
			slog.Any("state", state),
			slog.Duration("age", envelope.Age(now)))

		return nil, domainerrors.ErrOAuthStateStale
	}

	if !envelope.VersionOK() {
		result.Steps = append(result.Steps, usecase.StepError)
		result.RedirectTo = redirectLogin
		srv.log(ctx).Warn("Hand-off envelope from another layout version",
			slog.Any("state", state),
			slog.Int("version", envelope.Version))

		return nil, errors.Wrap(domainerrors.ErrOAuthStateStale, "envelope version mismatch")
	}

	// The gateway session the user left with must still exist; the
	// envelope alone does not authenticate anyone. A vanished session
	// gets one refresh attempt before the user is sent back to login.
	if srv.backend.GetSession(ctx, envelope.SessionID) == nil {
		if _, err := srv.backend.RefreshSession(ctx, envelope.SessionID); err != nil {
			result.Steps = append(result.Steps, usecase.StepError)
			result.RedirectTo = redirectLogin
			srv.log(ctx).Warn("Session behind hand-off is gone",
				slog.Any("state", state),
				slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrNoSession, "session expired during link")
		}
	}

	return envelope, nil
}

// exchangeAndStretch turns the authorization code into a long-lived user
// token. A failed stretch falls back to the short-lived token; a link
// that works for an hour beats no link.
func (srv *connectionService) exchangeAndStretch(ctx context.Context, code string) (string, time.Time, error) {
	shortToken, shortExpiry, err := srv.graph.ExchangeCode(ctx, code)
	if err != nil {
		return "", time.Time{}, err
	}

	longToken, longExpiry, err := srv.graph.LongLivedToken(ctx, shortToken)
	if err != nil {
		srv.log(ctx).Warn("Long-lived token exchange failed, keeping short token", slog.Any("error", err))
		return shortToken, shortExpiry, nil
	}

	return longToken, longExpiry, nil
}

// fillExternalUID resolves the provider-side user ID when the widget did
// not already supply it. Best-effort; deletion callbacks degrade without
// it but links still work.
func (srv *connectionService) fillExternalUID(ctx context.Context, envelope *entity.HandoffState, userToken string) {
	if envelope.ExternalUID != "" {
		return
	}

	profile, err := srv.graph.UserInfo(ctx, "", userToken)
	if err != nil {
		srv.log(ctx).Warn("Profile fetch failed, connection stored without external UID", slog.Any("error", err))
		return
	}

	envelope.ExternalUID = profile.ID
}

// persistConnection is the saving step shared by every branch: one
// upsert and, in the same transaction, removal of the envelope. On
// failure the envelope stays put so the attempt can be retried.
func (srv *connectionService) persistConnection(ctx context.Context, result *usecase.CallbackResult, envelope *entity.HandoffState, conn *entity.SocialConnection) (*usecase.CallbackResult, error) {
	result.Steps = append(result.Steps, usecase.StepSaving)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. One upsert per completed link, whatever the page count.
		if err := repoFactory.NewConnectionRepository().Upsert(ctx, conn); err != nil {
			return err
		}

		// 2. The envelope is spent only once the row is in.
		return repoFactory.NewHandoffRepository().Delete(ctx, envelope.State)
	})
	if err != nil {
		result.Steps = append(result.Steps, usecase.StepError)
		srv.log(ctx).Error("Failed to persist connection",
			slog.Any("error", err),
			slog.Any("user_id", conn.UserID),
			slog.Any("page_id", conn.PageID))

		return result, errors.Wrap(domainerrors.ErrConnectionSaveFailed, err.Error())
	}

	result.Steps = append(result.Steps, usecase.StepSuccess)
	result.RedirectTo = redirectSettings

	redacted := *conn
	redacted.AccessToken = ""
	result.Connection = &redacted

	srv.publishEvent(ctx, &service.ConnectionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Kind:       service.ConnectionLinked,
		UserID:     conn.UserID.String(),
		Platform:   conn.Platform.String(),
		PageID:     conn.PageID,
		PageName:   conn.PageName,
		OccurredAt: srv.clock.Now(),
	})

	srv.log(ctx).Info("Connection linked",
		slog.Any("user_id", conn.UserID),
		slog.Any("platform", conn.Platform),
		slog.Any("page_id", conn.PageID))

	return result, nil
}

// publishEvent fires a connection event without letting publish trouble
// disturb the caller's flow.
func (srv *connectionService) publishEvent(ctx context.Context, event *service.ConnectionEvent) {
	if err := srv.publisher.PublishConnectionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish connection event",
			slog.Any("error", err),
			slog.Any("kind", event.Kind))
	}
}

// sealPages seals every page token in the list, returning fresh copies.
// Envelope rows live in the database; plaintext tokens do not.
func (srv *connectionService) sealPages(pages []entity.FacebookPage) ([]entity.FacebookPage, error) {
	sealed := make([]entity.FacebookPage, len(pages))
	for i, page := range pages {
		sealedToken, err := srv.cipher.Seal(page.AccessToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to seal page token")
		}

		page.AccessToken = sealedToken
		sealed[i] = page
	}

	return sealed, nil
}

// redactPages strips tokens before a page list goes to the browser for
// selection.
func redactPages(pages []entity.FacebookPage) []entity.FacebookPage {
	redacted := make([]entity.FacebookPage, len(pages))
	for i, page := range pages {
		page.AccessToken = ""
		redacted[i] = page
	}

	return redacted
}
