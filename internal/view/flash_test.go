package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mchadwick/parley/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a no-op handler through the session middleware so the session
	// is properly initialized in the context we hand back.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c
}

func TestFlashMessages(t *testing.T) {
	t.Run("set and get success flash", func(t *testing.T) {
		c := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		assert.NotEmpty(t, flashes.Success)
		assert.Equal(t, "It worked!", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Success, "Flashes should be cleared after being read")
	})

	t.Run("set and get error flash", func(t *testing.T) {
		c := setupTestContext()

		view.SetFlashError(c, "It failed!")

		flashes := view.GetFlashData(c)
		assert.NotEmpty(t, flashes.Error)
		assert.Equal(t, "It failed!", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("no flashes set", func(t *testing.T) {
		c := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.Empty(t, flashes.Success)
		assert.Empty(t, flashes.Error)
	})

	t.Run("form username is consumed on read", func(t *testing.T) {
		c := setupTestContext()

		view.SetFormUsername(c, "alice")
		assert.Equal(t, "alice", view.GetFormUsername(c))
		assert.Empty(t, view.GetFormUsername(c))
	})
}
