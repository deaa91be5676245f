package handler

import (
	"net/http"
	"testing"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	mockUC "roost/internal/mocks/usecase"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConnectionHandler(connectionUC usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: connectionUC,
		logger:       testLogger(),
	}
}

const testDialogURL = "https://www.facebook.com/v21.0/dialog/oauth?response_type=code&state=state-1"

func TestConnectionHandler_BeginLink(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		BeginLink(mock.Anything, testUser().ID, "sid-1", entity.PlatformFacebook).
		Return(testDialogURL, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/connect/facebook")
	c.SetParamNames("platform")
	c.SetParamValues("facebook")
	authenticate(c, "sid-1")

	require.NoError(t, h.BeginLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "dialog_url")
	assert.Contains(t, body, "facebook.com")
	assert.Contains(t, body, "response_type")
}

func TestConnectionHandler_BeginLink_RedirectMode(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		BeginLink(mock.Anything, testUser().ID, "sid-1", entity.PlatformInstagram).
		Return(testDialogURL, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/connect/instagram?redirect=true")
	c.SetParamNames("platform")
	c.SetParamValues("instagram")
	authenticate(c, "sid-1")

	require.NoError(t, h.BeginLink(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, testDialogURL, rec.Header().Get(echo.HeaderLocation))
}

func TestConnectionHandler_BeginLink_UnknownPlatform(t *testing.T) {
	h := newConnectionHandler(mockUC.NewMockConnectionUsecase(t))
	c, rec := getRequest(newTestEcho(), "/connect/myspace")
	c.SetParamNames("platform")
	c.SetParamValues("myspace")
	authenticate(c, "sid-1")

	require.NoError(t, h.BeginLink(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PLATFORM")
}

func TestConnectionHandler_WidgetStatus(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		HandleWidgetStatus(mock.Anything, testUser().ID, "sid-1", entity.StatusChange{
			Status:      entity.LoginStatusConnected,
			FacebookUID: "fb-100",
			AccessToken: "widget-token",
		}).
		Return(testDialogURL, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := postJSON(newTestEcho(), "/connect/facebook",
		`{"status":"connected","facebook_uid":"fb-100","access_token":"widget-token"}`)
	authenticate(c, "sid-1")

	require.NoError(t, h.WidgetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dialog_url")
}

func TestConnectionHandler_WidgetStatus_UnknownStatusStillConverges(t *testing.T) {
	// Statuses the widget may grow later are not rejected at the edge;
	// the flow converges on the dialog URL regardless.
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		HandleWidgetStatus(mock.Anything, testUser().ID, "sid-1", entity.StatusChange{
			Status: entity.LoginStatus("some_future_status"),
		}).
		Return(testDialogURL, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := postJSON(newTestEcho(), "/connect/facebook", `{"status":"some_future_status"}`)
	authenticate(c, "sid-1")

	require.NoError(t, h.WidgetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConnectionHandler_FacebookCallback_RedirectsOnSuccess(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		CompleteFacebookCallback(mock.Anything, "state-1", "code-1").
		Return(&usecase.CallbackResult{
			Steps: []usecase.CallbackStep{
				usecase.StepProcessing,
				usecase.StepAuthRestore,
				usecase.StepExchangingCode,
				usecase.StepSaving,
				usecase.StepSuccess,
			},
			RedirectTo: "/settings",
		}, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/oauth/facebook/callback?state=state-1&code=code-1")

	require.NoError(t, h.FacebookCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/settings", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectionHandler_FacebookCallback_StaleHandoffFailsOpen(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		CompleteFacebookCallback(mock.Anything, "state-old", "code-1").
		Return(&usecase.CallbackResult{
			Steps:      []usecase.CallbackStep{usecase.StepProcessing, usecase.StepAuthRestore, usecase.StepError},
			RedirectTo: "/auth",
		}, domainerrors.ErrOAuthStateStale)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/oauth/facebook/callback?state=state-old&code=code-1")

	require.NoError(t, h.FacebookCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectionHandler_FacebookCallback_OffersSelection(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		CompleteFacebookCallback(mock.Anything, "state-1", "code-1").
		Return(&usecase.CallbackResult{
			Steps: []usecase.CallbackStep{
				usecase.StepProcessing,
				usecase.StepAuthRestore,
				usecase.StepExchangingCode,
				usecase.StepGettingPages,
			},
			NeedsSelection: true,
			Pages: []entity.FacebookPage{
				{ID: "p1", Name: "First Page", AccessToken: "sealed-page-token-1", Category: "Shop"},
				{ID: "p2", Name: "Second Page", AccessToken: "sealed-page-token-2"},
			},
		}, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/oauth/facebook/callback?state=state-1&code=code-1")

	require.NoError(t, h.FacebookCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "select_page")
	assert.Contains(t, body, "First Page")
	assert.Contains(t, body, "Second Page")
	assert.Contains(t, body, "state-1")
	// Page tokens never reach the browser, sealed or not.
	assert.NotContains(t, body, "sealed-page-token")
}

func TestConnectionHandler_FacebookCallback_ErrorCarriesStepTrail(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		CompleteFacebookCallback(mock.Anything, "state-1", "code-bad").
		Return(&usecase.CallbackResult{
			Steps: []usecase.CallbackStep{
				usecase.StepProcessing,
				usecase.StepAuthRestore,
				usecase.StepExchangingCode,
				usecase.StepError,
			},
		}, domainerrors.ErrOAuthExchangeFailed)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/oauth/facebook/callback?state=state-1&code=code-bad")

	require.NoError(t, h.FacebookCallback(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "OAUTH_EXCHANGE_FAILED")
	assert.Contains(t, body, "exchanging_code")
	assert.Contains(t, body, `"steps"`)
}

func TestConnectionHandler_InstagramCallback(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		CompleteInstagramCallback(mock.Anything, "state-1", "code-1").
		Return(&usecase.CallbackResult{
			Steps:      []usecase.CallbackStep{usecase.StepProcessing, usecase.StepAuthRestore, usecase.StepExchangingCode, usecase.StepSaving, usecase.StepSuccess},
			RedirectTo: "/settings",
		}, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/oauth/instagram/callback?state=state-1&code=code-1")

	require.NoError(t, h.InstagramCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/settings", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectionHandler_SelectPage(t *testing.T) {
	conn := &entity.SocialConnection{
		ID:       uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-555555555555"),
		UserID:   testUser().ID,
		Platform: entity.PlatformFacebook,
		PageID:   "p2",
		PageName: "Second Page",
	}

	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		SelectPage(mock.Anything, "state-1", "p2").
		Return(&usecase.CallbackResult{
			Steps:      []usecase.CallbackStep{usecase.StepSaving, usecase.StepSuccess},
			Connection: conn,
			RedirectTo: "/settings",
		}, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := postJSON(newTestEcho(), "/connect/facebook/select", `{"state":"state-1","page_id":"p2"}`)
	authenticate(c, "sid-1")

	require.NoError(t, h.SelectPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Second Page")
	assert.Contains(t, body, "/settings")
	assert.Contains(t, body, "https://m.me/p2")
}

func TestConnectionHandler_SelectPage_MissingFields(t *testing.T) {
	h := newConnectionHandler(mockUC.NewMockConnectionUsecase(t))
	c, _ := postJSON(newTestEcho(), "/connect/facebook/select", `{"state":"state-1"}`)
	authenticate(c, "sid-1")

	err := h.SelectPage(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestConnectionHandler_SelectPage_SaveFailureKeepsEnvelope(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		SelectPage(mock.Anything, "state-1", "p2").
		Return(&usecase.CallbackResult{
			Steps: []usecase.CallbackStep{usecase.StepSaving, usecase.StepError},
		}, domainerrors.ErrConnectionSaveFailed)

	h := newConnectionHandler(connectionUC)
	c, rec := postJSON(newTestEcho(), "/connect/facebook/select", `{"state":"state-1","page_id":"p2"}`)
	authenticate(c, "sid-1")

	require.NoError(t, h.SelectPage(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "CONNECTION_SAVE_FAILED")
	assert.Contains(t, body, "saving")
}

func TestConnectionHandler_Settings(t *testing.T) {
	expiry := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	connections := []*entity.SocialConnection{
		{
			ID:          uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-666666666666"),
			UserID:      testUser().ID,
			Platform:    entity.PlatformFacebook,
			PageID:      "p1",
			PageName:    "First Page",
			TokenExpiry: expiry,
		},
		{
			ID:       uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-777777777777"),
			UserID:   testUser().ID,
			Platform: entity.PlatformFacebook,
		},
	}

	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		ListConnections(mock.Anything, testUser().ID).
		Return(connections, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/settings")
	authenticate(c, "sid-1")

	require.NoError(t, h.Settings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"page":"settings"`)
	assert.Contains(t, body, "First Page")
	assert.Contains(t, body, "https://m.me/p1")
	assert.NotContains(t, body, "access_token")
}

func TestConnectionHandler_MessengerQR(t *testing.T) {
	connectionID := uuid.MustParse("5a41d6a5-1c42-4b43-9a2c-888888888888")
	png := []byte{0x89, 'P', 'N', 'G'}

	connectionUC := mockUC.NewMockConnectionUsecase(t)
	connectionUC.EXPECT().
		MessengerQR(mock.Anything, testUser().ID, connectionID).
		Return(png, nil)

	h := newConnectionHandler(connectionUC)
	c, rec := getRequest(newTestEcho(), "/settings/connections/"+connectionID.String()+"/qr")
	c.SetParamNames("id")
	c.SetParamValues(connectionID.String())
	authenticate(c, "sid-1")

	require.NoError(t, h.MessengerQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestConnectionHandler_MessengerQR_InvalidID(t *testing.T) {
	h := newConnectionHandler(mockUC.NewMockConnectionUsecase(t))
	c, rec := getRequest(newTestEcho(), "/settings/connections/not-a-uuid/qr")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	authenticate(c, "sid-1")

	require.NoError(t, h.MessengerQR(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
