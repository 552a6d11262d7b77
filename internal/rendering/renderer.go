package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Renderer defines the contract for rendering gomponents views.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes.
	RenderComponent(component g.Node) ([]byte, error)

	// RenderPage handles full-page rendering for an Echo response.
	RenderPage(c echo.Context, status int, component g.Node) error
}

// ComponentRenderer renders gomponents nodes and implements both the
// Renderer contract and echo.Renderer.
type ComponentRenderer struct{}

// NewComponentRenderer creates a new ComponentRenderer instance.
func NewComponentRenderer() *ComponentRenderer {
	return &ComponentRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *ComponentRenderer) RenderComponent(component g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *ComponentRenderer) RenderPage(c echo.Context, status int, component g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Response().Writer)
}

// Render implements the echo.Renderer interface for use with
// c.Render(status, name, component). The name parameter is ignored; the
// component is passed as data.
func (r *ComponentRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(g.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T, expected gomponents.Node", data)
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return component.Render(w)
}
