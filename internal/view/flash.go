package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyForm     = "form_username"
)

// FlashData carries consumed flash messages into a rendered page.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFormUsername preserves the submitted username across a redirect so
// the login form can be re-displayed pre-filled.
func SetFormUsername(c echo.Context, username string) {
	setFlash(c, flashKeyForm, username)
}

// GetFormUsername consumes a preserved form username, if any.
func GetFormUsername(c echo.Context) string {
	sess, _ := session.Get(flashSessionName, c)
	flashes := sess.Flashes(flashKeyForm)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	if val, ok := flashes[0].(string); ok {
		return val
	}
	return ""
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(flashSessionName, c)

	// Flashes() retrieves and then clears the flashes from the session.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)

	if len(successFlashes) > 0 || len(errorFlashes) > 0 {
		for _, f := range successFlashes {
			if s, ok := f.(string); ok {
				data.Success = append(data.Success, s)
			}
		}
		for _, f := range errorFlashes {
			if s, ok := f.(string); ok {
				data.Error = append(data.Error, s)
			}
		}
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}
