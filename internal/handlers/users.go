package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/middleware"
	"github.com/mchadwick/parley/internal/view"
	"github.com/mchadwick/parley/web/src/templates/pages"
)

// UserHandler handles public profiles and the profile edit form.
type UserHandler struct {
	users    domain.UserRepository
	rooms    domain.RoomRepository
	messages domain.MessageRepository
	topics   domain.TopicRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users domain.UserRepository, rooms domain.RoomRepository, messages domain.MessageRepository, topics domain.TopicRepository) *UserHandler {
	return &UserHandler{
		users:    users,
		rooms:    rooms,
		messages: messages,
		topics:   topics,
	}
}

// ProfileGet renders a user's public profile: their hosted rooms, their
// messages and all topics. Any visitor can view any profile.
func (h *UserHandler) ProfileGet(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.users.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	rooms, err := h.rooms.ByHost(ctx, profile.ID)
	if err != nil {
		return err
	}
	messages, err := h.messages.ByUser(ctx, profile.ID)
	if err != nil {
		return err
	}
	topics, err := h.topics.Search(ctx, "")
	if err != nil {
		return err
	}

	data := pages.ProfileData{
		Profile:     profile,
		Rooms:       rooms,
		Messages:    messages,
		Topics:      topics,
		CurrentUser: middleware.CurrentUser(c),
	}
	return renderPage(c, http.StatusOK, "@"+profile.Username, pages.Profile(data))
}

// AccountGet renders the profile edit form pre-filled with the current
// user's fields.
func (h *UserHandler) AccountGet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	data := pages.AccountData{
		Username: user.Username,
		Email:    user.Email,
	}
	return renderPage(c, http.StatusOK, "Edit profile", pages.Account(data))
}

// AccountPost binds the submitted fields to the current user's own
// record and redirects to their profile.
func (h *UserHandler) AccountPost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid profile form.")
		return c.Redirect(http.StatusSeeOther, "/account")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Please check the submitted fields.")
		return c.Redirect(http.StatusSeeOther, "/account")
	}

	username := strings.ToLower(req.Username)
	if username != user.Username {
		_, err := h.users.GetByUsername(ctx, username)
		if err == nil {
			view.SetFlashError(c, "That username is taken.")
			return c.Redirect(http.StatusSeeOther, "/account")
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	user.Username = username
	user.Email = req.Email
	if err := h.users.Update(ctx, user); err != nil {
		return err
	}

	view.SetFlashSuccess(c, "Profile updated.")
	return c.Redirect(http.StatusSeeOther, "/users/"+user.ID)
}
