package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
)

// RoomData is the context for the room detail page.
type RoomData struct {
	Room         *domain.Room
	Messages     []domain.Message
	Participants []domain.User
	// CurrentUser is nil for anonymous visitors.
	CurrentUser *domain.User
}

// Room renders the room detail page: description, message history newest
// first, the participant list and, for logged-in users, the post form.
func Room(data RoomData) g.Node {
	room := data.Room
	return h.Div(
		h.Class("room"),
		h.Section(
			h.H1(g.Text(room.Name)),
			h.P(
				g.Text("hosted by "),
				h.A(h.Href("/users/"+room.HostID), g.Text("@"+room.Host.Username)),
				g.Textf(" in %s", room.Topic.Name),
			),
			h.P(g.Text(room.Description)),
			hostActions(data),
			h.H2(g.Text("Conversation")),
			messageForm(data),
			MessageList(data.Messages, data.CurrentUser),
		),
		participantList(data.Participants),
	)
}

func hostActions(data RoomData) g.Node {
	if data.CurrentUser == nil || data.CurrentUser.ID != data.Room.HostID {
		return nil
	}
	return h.P(
		h.A(h.Href("/rooms/"+data.Room.ID+"/edit"), g.Text("Edit")),
		g.Text(" "),
		h.A(h.Href("/rooms/"+data.Room.ID+"/delete"), g.Text("Delete")),
	)
}

func messageForm(data RoomData) g.Node {
	if data.CurrentUser == nil {
		return h.P(
			h.A(h.Href("/login"), g.Text("Login")),
			g.Text(" to join the conversation."),
		)
	}
	return h.Form(
		h.Method("post"),
		h.Action("/rooms/"+data.Room.ID),
		h.Input(h.Type("text"), h.Name("body"), h.Placeholder("Write your message here…"), h.Required()),
		h.Button(h.Type("submit"), g.Text("Send")),
	)
}

func participantList(participants []domain.User) g.Node {
	return h.Aside(
		h.H3(g.Text("Participants")),
		h.Ul(
			g.Group(g.Map(participants, func(u domain.User) g.Node {
				return h.Li(h.A(h.Href("/users/"+u.ID), g.Text("@"+u.Username)))
			})),
		),
	)
}

// MessageList renders messages newest first, with a delete link on each
// message the current user authored.
func MessageList(messages []domain.Message, currentUser *domain.User) g.Node {
	if len(messages) == 0 {
		return h.P(g.Text("No messages yet."))
	}
	return h.Ul(
		h.Class("message-list"),
		g.Group(g.Map(messages, func(m domain.Message) g.Node {
			var deleteLink g.Node
			if currentUser != nil && currentUser.ID == m.UserID {
				deleteLink = h.A(h.Href("/messages/"+m.ID+"/delete"), g.Text("delete"))
			}
			return h.Li(
				h.P(
					h.A(h.Href("/users/"+m.UserID), g.Text("@"+m.User.Username)),
					g.Text(" "),
					h.Small(g.Text(m.CreatedAt.Format("Jan 2, 2006 15:04"))),
					g.Text(" "),
					deleteLink,
				),
				h.P(g.Text(m.Body)),
			)
		})),
	)
}
