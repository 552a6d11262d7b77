package server

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/mchadwick/parley/internal/auth"
	"github.com/mchadwick/parley/internal/config"
	"github.com/mchadwick/parley/internal/database"
	"github.com/mchadwick/parley/internal/handlers"
	"github.com/mchadwick/parley/internal/middleware"
	"github.com/mchadwick/parley/internal/pubsub"
	"github.com/mchadwick/parley/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *gorm.DB
	Cfg *config.Config
	Bus *pubsub.WatermillBridge

	tokens *auth.TokenManager
	users  *database.UserStore

	authHandler    *handlers.AuthHandler
	roomHandler    *handlers.RoomHandler
	messageHandler *handlers.MessageHandler
	userHandler    *handlers.UserHandler
	topicHandler   *handlers.TopicHandler
	apiHandler     *handlers.APIHandler
}

// New creates a Server with all dependencies wired.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bus := pubsub.NewWatermillBridge()

	users := database.NewUserStore(db)
	topics := database.NewTopicStore(db)
	rooms := database.NewRoomStore(db)
	messages := database.NewMessageStore(db)

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager(cfg.TokenSecret)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewComponentRenderer()

	return &Server{
		E:      e,
		DB:     db,
		Cfg:    cfg,
		Bus:    bus,
		tokens: tokens,
		users:  users,

		authHandler:    handlers.NewAuthHandler(users, hasher, tokens),
		roomHandler:    handlers.NewRoomHandler(rooms, topics, messages, bus),
		messageHandler: handlers.NewMessageHandler(messages, bus),
		userHandler:    handlers.NewUserHandler(users, rooms, messages, topics),
		topicHandler:   handlers.NewTopicHandler(topics),
		apiHandler:     handlers.NewAPIHandler(rooms),
	}, nil
}
