package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	requireAuth := middleware.RequireAuth(s.tokens, s.users)
	withUser := middleware.WithUser(s.tokens, s.users)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.roomHandler.HomeGet, withUser)

	s.E.GET("/login", s.authHandler.LoginGet, withUser)
	s.E.POST("/login", s.authHandler.LoginPost, withUser, rateLimiter)
	s.E.GET("/logout", s.authHandler.Logout)
	s.E.GET("/register", s.authHandler.RegisterGet, withUser)
	s.E.POST("/register", s.authHandler.RegisterPost, withUser, rateLimiter)

	s.E.GET("/rooms/new", s.roomHandler.CreateGet, requireAuth)
	s.E.POST("/rooms/new", s.roomHandler.CreatePost, requireAuth)
	s.E.GET("/rooms/:id", s.roomHandler.RoomGet, withUser)
	s.E.POST("/rooms/:id", s.roomHandler.RoomPost, requireAuth)
	s.E.GET("/rooms/:id/edit", s.roomHandler.EditGet, requireAuth)
	s.E.POST("/rooms/:id/edit", s.roomHandler.EditPost, requireAuth)
	s.E.GET("/rooms/:id/delete", s.roomHandler.DeleteGet, requireAuth)
	s.E.POST("/rooms/:id/delete", s.roomHandler.DeletePost, requireAuth)

	s.E.GET("/messages/:id/delete", s.messageHandler.DeleteGet, requireAuth)
	s.E.POST("/messages/:id/delete", s.messageHandler.DeletePost, requireAuth)

	s.E.GET("/users/:id", s.userHandler.ProfileGet, withUser)
	s.E.GET("/account", s.userHandler.AccountGet, requireAuth)
	s.E.POST("/account", s.userHandler.AccountPost, requireAuth)

	s.E.GET("/topics", s.topicHandler.TopicsGet, withUser)
	s.E.GET("/activity", s.messageHandler.ActivityGet, withUser)

	s.E.GET("/api/rooms", s.apiHandler.RoomsGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
