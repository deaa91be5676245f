// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"
	"roost/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PageHandler       *handler.PageHandler
	ConnectionHandler *handler.ConnectionHandler
	DeletionHandler   *handler.DeletionHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	pageHandler       *handler.PageHandler
	connectionHandler *handler.ConnectionHandler
	deletionHandler   *handler.DeletionHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		pageHandler:       params.PageHandler,
		connectionHandler: params.ConnectionHandler,
		deletionHandler:   params.DeletionHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login page; signed-in browsers are bounced to the dashboard.
	e.GET("/auth", r.authHandler.LoginPage, r.authMiddleware.RedirectAuthenticated)

	// Auth API routes. All public: they act on the session cookie
	// itself, so there is nothing to guard them with yet.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/retry", r.authHandler.Retry)
		authGroup.POST("/force-reset", r.authHandler.ForceReset)
	}

	// OAuth callbacks arrive as bare provider redirects; the hand-off
	// envelope, not the middleware, carries the session.
	e.GET("/oauth/facebook/callback", r.connectionHandler.FacebookCallback)
	e.GET("/oauth/instagram/callback", r.connectionHandler.InstagramCallback)
	e.POST("/oauth/facebook/deletion", r.deletionHandler.DeletionCallback)
	e.GET("/deletion-status", r.deletionHandler.DeletionStatus)

	// Authenticated pages
	e.GET("/dashboard", r.pageHandler.Dashboard, r.authMiddleware.Authenticate)

	messagesGroup := e.Group("/messages")
	messagesGroup.Use(r.authMiddleware.Authenticate)
	{
		messagesGroup.GET("", r.pageHandler.Messages)
		messagesGroup.GET("/:id", r.pageHandler.MessageThread)
	}

	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.connectionHandler.Settings)
		settingsGroup.GET("/connections/:id/qr", r.connectionHandler.MessengerQR)
	}

	connectGroup := e.Group("/connect")
	connectGroup.Use(r.authMiddleware.Authenticate)
	{
		connectGroup.GET("/:platform", r.connectionHandler.BeginLink)
		connectGroup.POST("/facebook", r.connectionHandler.WidgetStatus)
		connectGroup.POST("/facebook/select", r.connectionHandler.SelectPage)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.adminHandler.Overview)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}
