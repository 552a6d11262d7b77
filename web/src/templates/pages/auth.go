package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AuthData carries pre-filled form state into the login/register page.
type AuthData struct {
	// Page is "login" or "register", mirroring the two modes of the
	// shared form page.
	Page     string
	Username string
}

// LoginRegister renders the combined login/registration form page.
func LoginRegister(data AuthData) g.Node {
	if data.Page == "login" {
		return loginForm(data)
	}
	return registerForm(data)
}

func loginForm(data AuthData) g.Node {
	return h.Section(
		h.H1(g.Text("Login")),
		h.Form(
			h.Method("post"),
			h.Action("/login"),
			h.Label(h.For("username"), g.Text("Username")),
			h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Value(data.Username), h.Required()),
			h.Label(h.For("password"), g.Text("Password")),
			h.Input(h.Type("password"), h.ID("password"), h.Name("password"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Login")),
		),
		h.P(
			g.Text("No account yet? "),
			h.A(h.Href("/register"), g.Text("Register")),
		),
	)
}

func registerForm(data AuthData) g.Node {
	return h.Section(
		h.H1(g.Text("Register")),
		h.Form(
			h.Method("post"),
			h.Action("/register"),
			h.Label(h.For("username"), g.Text("Username")),
			h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Value(data.Username), h.Required()),
			h.Label(h.For("email"), g.Text("Email (optional)")),
			h.Input(h.Type("email"), h.ID("email"), h.Name("email")),
			h.Label(h.For("password"), g.Text("Password")),
			h.Input(h.Type("password"), h.ID("password"), h.Name("password"), h.Required()),
			h.Label(h.For("password_confirm"), g.Text("Confirm password")),
			h.Input(h.Type("password"), h.ID("password_confirm"), h.Name("password_confirm"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Register")),
		),
		h.P(
			g.Text("Already have an account? "),
			h.A(h.Href("/login"), g.Text("Login")),
		),
	)
}
