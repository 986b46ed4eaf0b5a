// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/router/handler"
	"usersvc/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AdminHandler   *handler.AdminHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	adminHandler   *handler.AdminHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		adminHandler:   params.AdminHandler,
		uploadHandler:  params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored profile images
	e.GET("/uploads/:key", r.uploadHandler.ServeImage)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PUT("/:id", r.authHandler.UpdateAccount, r.authMiddleware.Authenticate)
	}

	// Self-service profile routes
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/getProfile", r.profileHandler.GetProfile)
		userGroup.PUT("/updateProfile", r.profileHandler.UpdateProfile)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}
