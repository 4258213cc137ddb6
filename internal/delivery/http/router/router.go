// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfarer/internal/delivery/http/middleware"
	"wayfarer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	JourneyHandler    *handler.JourneyHandler
	PublicLinkHandler *handler.PublicLinkHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	journeyHandler    *handler.JourneyHandler
	publicLinkHandler *handler.PublicLinkHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		journeyHandler:    params.JourneyHandler,
		publicLinkHandler: params.PublicLinkHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public link resolution is unauthenticated and single-use.
	e.GET("/api/journeys/public/:token", r.publicLinkHandler.ConsumePublicLink)

	// Journey routes that require authentication
	journeyGroup := e.Group("/api/v1/journeys")
	journeyGroup.Use(r.authMiddleware.Authenticate)
	{
		journeyGroup.POST("", r.journeyHandler.CreateJourney)
		journeyGroup.GET("", r.journeyHandler.ListJourneys)
		journeyGroup.GET("/filter", r.journeyHandler.FilterJourneys)
		journeyGroup.GET("/monthly-distances", r.journeyHandler.MonthlyDistances)
		journeyGroup.GET("/:id", r.journeyHandler.GetJourney)
		journeyGroup.DELETE("/:id", r.journeyHandler.DeleteJourney)
		journeyGroup.POST("/:id/share", r.journeyHandler.ShareJourney)
		journeyGroup.POST("/:id/public-link", r.publicLinkHandler.CreatePublicLink)
		journeyGroup.DELETE("/:id/public-link", r.publicLinkHandler.RevokePublicLink)
		journeyGroup.GET("/:id/public-link/qr", r.publicLinkHandler.PublicLinkQR)
	}
}
