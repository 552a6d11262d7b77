package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
)

// HomeData is the context for the home (room search) page.
type HomeData struct {
	Query        string
	Rooms        []domain.Room
	Topics       []domain.Topic
	RoomCount    int
	RoomMessages []domain.Message
}

// Home renders the room listing with topic sidebar and activity column.
func Home(data HomeData) g.Node {
	return h.Div(
		h.Class("home"),
		topicSidebar(data.Topics),
		h.Section(
			searchForm(data.Query),
			h.H2(g.Textf("%d rooms available", data.RoomCount)),
			roomList(data.Rooms),
		),
		activityColumn(data.RoomMessages),
	)
}

func searchForm(query string) g.Node {
	return h.Form(
		h.Method("get"),
		h.Action("/"),
		hx.Get("/"),
		hx.Target("body"),
		h.Input(
			h.Type("search"),
			h.Name("q"),
			h.Value(query),
			h.Placeholder("Search rooms…"),
		),
		h.Button(h.Type("submit"), g.Text("Search")),
	)
}

func topicSidebar(topics []domain.Topic) g.Node {
	return h.Aside(
		h.H3(g.Text("Browse topics")),
		h.Ul(
			h.Li(h.A(h.Href("/"), g.Text("All"))),
			g.Group(g.Map(topics, func(t domain.Topic) g.Node {
				return h.Li(h.A(h.Href("/?q="+t.Name), g.Text(t.Name)))
			})),
		),
		h.A(h.Href("/topics"), g.Text("More…")),
	)
}

func roomList(rooms []domain.Room) g.Node {
	if len(rooms) == 0 {
		return h.P(g.Text("No rooms found."))
	}
	return h.Ul(
		h.Class("room-list"),
		g.Group(g.Map(rooms, RoomCard)),
	)
}

// RoomCard renders one room summary in a listing.
func RoomCard(room domain.Room) g.Node {
	return h.Li(
		h.H3(h.A(h.Href("/rooms/"+room.ID), g.Text(room.Name))),
		h.P(
			g.Text("hosted by "),
			h.A(h.Href("/users/"+room.HostID), g.Text("@"+room.Host.Username)),
			g.Textf(" in %s", room.Topic.Name),
		),
		h.Small(g.Text(fmt.Sprintf("%d participants · %s", len(room.Participants), room.CreatedAt.Format("Jan 2, 2006")))),
	)
}

func activityColumn(messages []domain.Message) g.Node {
	return h.Aside(
		h.H3(g.Text("Recent activity")),
		MessageList(messages, nil),
	)
}
