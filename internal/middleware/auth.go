package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/auth"
	"github.com/mchadwick/parley/internal/domain"
)

// UserContextKey is the echo context key the authenticated user is
// stored under.
const UserContextKey = "user"

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth_token"

// RequireAuth protects routes that require authentication. Requests
// without a valid session token are redirected to the login page.
func RequireAuth(tokens *auth.TokenManager, users domain.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := resolveUser(c, tokens, users)
			if user == nil {
				clearAuthCookie(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// WithUser resolves the session token if one is present and stores the
// user in the context, but never rejects the request. Public pages use
// it to show login state.
func WithUser(tokens *auth.TokenManager, users domain.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := resolveUser(c, tokens, users); user != nil {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user from the context, or nil
// for anonymous requests.
func CurrentUser(c echo.Context) *domain.User {
	if user, ok := c.Get(UserContextKey).(*domain.User); ok {
		return user
	}
	return nil
}

func resolveUser(c echo.Context, tokens *auth.TokenManager, users domain.UserRepository) *domain.User {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	userID, err := tokens.Validate(cookie.Value)
	if err != nil {
		return nil
	}

	user, err := users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

func clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:   AuthCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
