package layouts

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/view"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Parley"
	}
	return "Parley"
}

// Base wraps page content in the shared HTML shell: head, nav with the
// login state, and flash messages.
func Base(title string, user *domain.User, flashes view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
				h.Link(h.Rel("stylesheet"), h.Href("https://cdn.jsdelivr.net/npm/water.css@2/out/water.css")),
			),
			h.Body(
				hx.Boost("true"),
				nav(user),
				flashList(flashes),
				h.Main(content),
			),
		),
	)
}

func nav(user *domain.User) g.Node {
	links := anonLinks()
	if user != nil {
		links = userLinks(user)
	}
	return h.Nav(
		h.Class("site-nav"),
		h.A(h.Href("/"), h.Strong(g.Text("Parley"))),
		g.Text(" "),
		h.A(h.Href("/topics"), g.Text("Topics")),
		g.Text(" "),
		h.A(h.Href("/activity"), g.Text("Activity")),
		g.Text(" "),
		links,
	)
}

func userLinks(user *domain.User) g.Node {
	return g.Group([]g.Node{
		h.A(h.Href("/rooms/new"), g.Text("New room")),
		g.Text(" "),
		h.A(h.Href("/users/"+user.ID), g.Text("@"+user.Username)),
		g.Text(" "),
		h.A(h.Href("/account"), g.Text("Settings")),
		g.Text(" "),
		h.A(h.Href("/logout"), g.Text("Logout")),
	})
}

func anonLinks() g.Node {
	return g.Group([]g.Node{
		h.A(h.Href("/login"), g.Text("Login")),
		g.Text(" "),
		h.A(h.Href("/register"), g.Text("Register")),
	})
}

func flashList(flashes view.FlashData) g.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}
	return h.Div(
		h.Class("flashes"),
		g.Group(g.Map(flashes.Success, func(msg string) g.Node {
			return h.P(h.Class("flash flash-success"), g.Text(msg))
		})),
		g.Group(g.Map(flashes.Error, func(msg string) g.Node {
			return h.P(h.Class("flash flash-error"), g.Text(msg))
		})),
	)
}
