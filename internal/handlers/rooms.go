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

// RoomHandler handles the home page and all room operations.
type RoomHandler struct {
	rooms     domain.RoomRepository
	topics    domain.TopicRepository
	messages  domain.MessageRepository
	publisher pubsub.Publisher
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rooms domain.RoomRepository, topics domain.TopicRepository, messages domain.MessageRepository, publisher pubsub.Publisher) *RoomHandler {
	return &RoomHandler{
		rooms:     rooms,
		topics:    topics,
		messages:  messages,
		publisher: publisher,
	}
}

// HomeGet renders the home page: rooms matching the q query over topic
// name, room name or description, the five most recent topics, and the
// messages of rooms whose topic matches q.
func (h *RoomHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.QueryParam("q")

	rooms, err := h.rooms.Search(ctx, q)
	if err != nil {
		return err
	}
	topics, err := h.topics.Recent(ctx, 5)
	if err != nil {
		return err
	}
	roomMessages, err := h.messages.ByTopicQuery(ctx, q)
	if err != nil {
		return err
	}

	data := pages.HomeData{
		Query:        q,
		Rooms:        rooms,
		Topics:       topics,
		RoomCount:    len(rooms),
		RoomMessages: roomMessages,
	}
	return renderPage(c, http.StatusOK, "Home", pages.Home(data))
}

// RoomGet renders the room detail page: message history newest first and
// the participant set.
func (h *RoomHandler) RoomGet(c echo.Context) error {
	ctx := c.Request().Context()

	room, err := h.rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	messages, err := h.messages.ByRoom(ctx, room.ID)
	if err != nil {
		return err
	}

	data := pages.RoomData{
		Room:         room,
		Messages:     messages,
		Participants: room.Participants,
		CurrentUser:  middleware.CurrentUser(c),
	}
	return renderPage(c, http.StatusOK, room.Name, pages.Room(data))
}

// RoomPost creates a message in the room, attributed to the current
// user, and adds them to the room's participant set.
func (h *RoomHandler) RoomPost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	room, err := h.rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}

	body := c.FormValue("body")
	if body == "" {
		view.SetFlashError(c, "A message cannot be empty.")
		return c.Redirect(http.StatusSeeOther, "/rooms/"+room.ID)
	}

	msg := &domain.Message{
		RoomID: room.ID,
		UserID: user.ID,
		Body:   body,
	}
	if err := h.messages.Create(ctx, msg); err != nil {
		return err
	}
	if err := h.rooms.AddParticipant(ctx, room.ID, user.ID); err != nil {
		return err
	}

	events.Publish(ctx, h.publisher, events.TopicMessagePosted, user.ID, events.MessageEvent{
		MessageID: msg.ID,
		RoomID:    room.ID,
		UserID:    user.ID,
	})

	return c.Redirect(http.StatusSeeOther, "/rooms/"+room.ID)
}

// CreateGet renders the empty room form.
func (h *RoomHandler) CreateGet(c echo.Context) error {
	topics, err := h.topics.Search(c.Request().Context(), "")
	if err != nil {
		return err
	}
	data := pages.RoomFormData{Topics: topics}
	return renderPage(c, http.StatusOK, "Create room", pages.RoomForm(data))
}

// CreatePost creates a room hosted by the current user. The submitted
// topic name is get-or-created.
func (h *RoomHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req RoomRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid room form.")
		return c.Redirect(http.StatusSeeOther, "/rooms/new")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Topic and room name are required.")
		return c.Redirect(http.StatusSeeOther, "/rooms/new")
	}

	topic, err := h.topics.GetOrCreate(ctx, req.Topic)
	if err != nil {
		return err
	}

	room := &domain.Room{
		HostID:      user.ID,
		TopicID:     topic.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.rooms.Create(ctx, room); err != nil {
		return err
	}

	events.Publish(ctx, h.publisher, events.TopicRoomCreated, user.ID, events.RoomEvent{
		RoomID:   room.ID,
		HostID:   user.ID,
		RoomName: room.Name,
		Topic:    topic.Name,
	})

	view.SetFlashSuccess(c, "Room created.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditGet renders the room form pre-filled. Only the host may edit.
func (h *RoomHandler) EditGet(c echo.Context) error {
	ctx := c.Request().Context()

	room, err := h.rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if middleware.CurrentUser(c).ID != room.HostID {
		return c.String(http.StatusForbidden, "You can only update your room.")
	}

	topics, err := h.topics.Search(ctx, "")
	if err != nil {
		return err
	}
	data := pages.RoomFormData{Room: room, Topics: topics}
	return renderPage(c, http.StatusOK, "Edit room", pages.RoomForm(data))
}

// EditPost updates the room's topic, name and description. Only the host
// may update.
func (h *RoomHandler) EditPost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	room, err := h.rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if user.ID != room.HostID {
		return c.String(http.StatusForbidden, "You can only update your room.")
	}

	var req RoomRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid room form.")
		return c.Redirect(http.StatusSeeOther, "/rooms/"+room.ID+"/edit")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Topic and room name are required.")
		return c.Redirect(http.StatusSeeOther, "/rooms/"+room.ID+"/edit")
	}

	topic, err := h.topics.GetOrCreate(ctx, req.Topic)
	if err != nil {
		return err
	}

	room.Name = req.Name
	room.Description = req.Description
	room.TopicID = topic.ID
	if err := h.rooms.Update(ctx, room); err != nil {
		return err
	}

	events.Publish(ctx, h.publisher, events.TopicRoomUpdated, user.ID, events.RoomEvent{
		RoomID:   room.ID,
		HostID:   room.HostID,
		RoomName: room.Name,
		Topic:    topic.Name,
	})

	view.SetFlashSuccess(c, "Room updated.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// DeleteGet renders the delete confirmation page. Only the host may
// delete.
func (h *RoomHandler) DeleteGet(c echo.Context) error {
	room, err := h.rooms.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if middleware.CurrentUser(c).ID != room.HostID {
		return c.String(http.StatusForbidden, "You can only delete your room.")
	}
	return renderPage(c, http.StatusOK, "Delete room", pages.DeleteConfirm(room.Name))
}

// DeletePost deletes the room and everything in it. Only the host may
// delete.
func (h *RoomHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	room, err := h.rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		return lookupError(err)
	}
	if user.ID != room.HostID {
		return c.String(http.StatusForbidden, "You can only delete your room.")
	}

	if err := h.rooms.Delete(ctx, room.ID); err != nil {
		return err
	}

	events.Publish(ctx, h.publisher, events.TopicRoomDeleted, user.ID, events.RoomEvent{
		RoomID:   room.ID,
		HostID:   room.HostID,
		RoomName: room.Name,
		Topic:    room.Topic.Name,
	})

	view.SetFlashSuccess(c, "Room deleted.")
	return c.Redirect(http.StatusSeeOther, "/")
}
