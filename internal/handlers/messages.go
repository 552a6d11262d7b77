package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/events"
	"github.com/mchadwick/parley/internal/middleware"
	"github.com/mchadwick/parley/internal/pubsub"
	"github.com/mchadwick/parley/internal/view"
	"github.com/mchadwick/parley/web/src/templates/pages"
)

// MessageHandler handles message deletion and the activity feed.
type MessageHandler struct {
	messages  domain.MessageRepository
	publisher pubsub.Publisher
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages domain.MessageRepository, publisher pubsub.Publisher) *MessageHandler {
	return &MessageHandler{
		messages:  messages,
		publisher: publisher,
	}
}

// DeleteGet renders the delete confirmation page. Only the author may
// delete.
func (h *MessageHandler) DeleteGet(c echo.Context) error {
	msg, err := h.messages.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if middleware.CurrentUser(c).ID != msg.UserID {
		return c.String(http.StatusForbidden, "You can only delete your message.")
	}
	return renderPage(c, http.StatusOK, "Delete message", pages.DeleteConfirm(msg.Body))
}

// DeletePost deletes the message. Only the author may delete.
func (h *MessageHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	msg, err := h.messages.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if user.ID != msg.UserID {
		return c.String(http.StatusForbidden, "You can only delete your message.")
	}

	if err := h.messages.Delete(ctx, msg.ID); err != nil {
		return err
	}

	events.Publish(ctx, h.publisher, events.TopicMessageDeleted, user.ID, events.MessageEvent{
		MessageID: msg.ID,
		RoomID:    msg.RoomID,
		UserID:    msg.UserID,
	})

	view.SetFlashSuccess(c, "Message deleted.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// ActivityGet renders the global activity feed: every message, newest
// first.
func (h *MessageHandler) ActivityGet(c echo.Context) error {
	messages, err := h.messages.All(c.Request().Context())
	if err != nil {
		return err
	}
	data := pages.ActivityData{
		Messages:    messages,
		CurrentUser: middleware.CurrentUser(c),
	}
	return renderPage(c, http.StatusOK, "Activity", pages.Activity(data))
}
