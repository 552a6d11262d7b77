package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/middleware"
	"github.com/mchadwick/parley/internal/view"
	"github.com/mchadwick/parley/web/src/templates/layouts"
)

// renderPage wraps content in the base layout with the current login
// state and any pending flash messages, then writes it via the
// component renderer on the echo instance.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	user := middleware.CurrentUser(c)
	flashes := view.GetFlashData(c)
	return c.Render(status, "", layouts.Base(title, user, flashes, content))
}

// lookupError maps a store lookup failure onto the HTTP layer: a missing
// record renders as 404, everything else bubbles up as a server error.
func lookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(404, "not found")
	}
	return err
}
