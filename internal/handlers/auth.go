package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/auth"
	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/middleware"
	"github.com/mchadwick/parley/internal/view"
	"github.com/mchadwick/parley/web/src/templates/pages"
)

// AuthHandler handles login, logout and registration.
type AuthHandler struct {
	users  domain.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users domain.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// LoginGet renders the login page. Authenticated users are sent home.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	data := pages.AuthData{
		Page:     "login",
		Username: view.GetFormUsername(c),
	}
	return renderPage(c, http.StatusOK, "Login", pages.LoginRegister(data))
}

// LoginPost handles the login form submission. The username is
// lowercased before lookup so registration and login normalize
// identically.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	username := strings.ToLower(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := h.users.GetByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			view.SetFlashError(c, "User does not exist.")
			view.SetFormUsername(c, username)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	if !h.hasher.Verify(password, user.Password) {
		slog.Warn("Failed login attempt", "username", username)
		view.SetFlashError(c, "Username or password does not exist.")
		view.SetFormUsername(c, username)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	setAuthCookie(c, token)

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie and redirects home.
func (h *AuthHandler) Logout(c echo.Context) error {
	setAuthCookie(c, "")
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterGet renders the registration page.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	data := pages.AuthData{
		Page:     "register",
		Username: view.GetFormUsername(c),
	}
	return renderPage(c, http.StatusOK, "Register", pages.LoginRegister(data))
}

// RegisterPost handles the registration form submission. On success the
// new user is logged in immediately.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Registration is not allowed.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Registration is not allowed.")
		view.SetFormUsername(c, req.Username)
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	// Usernames are stored lowercase so that login lookups, which
	// lowercase as well, always round-trip.
	user := &domain.User{
		Username: strings.ToLower(req.Username),
		Email:    req.Email,
		Password: hash,
	}

	if err := h.users.Create(c.Request().Context(), user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			view.SetFlashError(c, "A user with this username already exists.")
		} else {
			slog.Error("Error creating user", "error", err)
			view.SetFlashError(c, "Registration is not allowed.")
		}
		view.SetFormUsername(c, req.Username)
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	setAuthCookie(c, token)

	view.SetFlashSuccess(c, "Welcome to Parley!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// setAuthCookie creates and sets the authentication cookie. An empty
// token expires the cookie immediately, logging the user out.
func setAuthCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = middleware.AuthCookieName
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(auth.SessionDuration)
	}
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
