package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
)

// ProfileData is the context for the public user profile page.
type ProfileData struct {
	Profile  *domain.User
	Rooms    []domain.Room
	Messages []domain.Message
	Topics   []domain.Topic
	// CurrentUser is nil for anonymous visitors.
	CurrentUser *domain.User
}

// Profile renders a user's public profile: their hosted rooms, their
// messages and the topic sidebar.
func Profile(data ProfileData) g.Node {
	return h.Div(
		h.Class("profile"),
		topicSidebar(data.Topics),
		h.Section(
			h.H1(g.Text("@"+data.Profile.Username)),
			h.H2(g.Textf("Rooms hosted by @%s", data.Profile.Username)),
			roomList(data.Rooms),
			h.H2(g.Text("Recent posts")),
			MessageList(data.Messages, data.CurrentUser),
		),
	)
}

// AccountData is the context for the profile edit form.
type AccountData struct {
	Username string
	Email    string
}

// Account renders the authenticated user's profile edit form.
func Account(data AccountData) g.Node {
	return h.Section(
		h.H1(g.Text("Edit your profile")),
		h.Form(
			h.Method("post"),
			h.Action("/account"),
			h.Label(h.For("username"), g.Text("Username")),
			h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Value(data.Username), h.Required()),
			h.Label(h.For("email"), g.Text("Email")),
			h.Input(h.Type("email"), h.ID("email"), h.Name("email"), h.Value(data.Email)),
			h.Button(h.Type("submit"), g.Text("Save")),
		),
	)
}
