package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
)

// TopicsData is the context for the topic listing page.
type TopicsData struct {
	Query  string
	Topics []domain.Topic
}

// Topics renders the searchable topic listing.
func Topics(data TopicsData) g.Node {
	return h.Section(
		h.H1(g.Text("Browse topics")),
		h.Form(
			h.Method("get"),
			h.Action("/topics"),
			hx.Get("/topics"),
			hx.Target("body"),
			h.Input(h.Type("search"), h.Name("q"), h.Value(data.Query), h.Placeholder("Search topics…")),
			h.Button(h.Type("submit"), g.Text("Search")),
		),
		h.Ul(
			h.Li(h.A(h.Href("/"), g.Text("All"))),
			g.Group(g.Map(data.Topics, func(t domain.Topic) g.Node {
				return h.Li(h.A(h.Href("/?q="+t.Name), g.Text(t.Name)))
			})),
		),
	)
}

// ActivityData is the context for the global activity feed.
type ActivityData struct {
	Messages []domain.Message
	// CurrentUser is nil for anonymous visitors.
	CurrentUser *domain.User
}

// Activity renders the global message feed, newest first.
func Activity(data ActivityData) g.Node {
	return h.Section(
		h.H1(g.Text("Recent activity")),
		MessageList(data.Messages, data.CurrentUser),
	)
}
