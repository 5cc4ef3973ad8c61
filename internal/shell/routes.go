package shell

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Page is a view that declares its metadata before it is rendered
type Page interface {
	templ.Component
	Init(doc *Document)
}

// Frame wraps a page body in the host document
type Frame func(body templ.Component) templ.Component

// Route maps a path pattern to the page served under it
type Route struct {
	Pattern string
	Page    Page
}

// Register mounts every route on the echo instance
func Register(e *echo.Echo, frame Frame, routes []Route, m ...echo.MiddlewareFunc) {
	for _, r := range routes {
		e.GET(r.Pattern, Handler(frame, r.Page), m...)
	}
}

// Handler renders the framed page with a fresh document per request.
// Output is buffered so a failing collaborator never leaves a half-written page.
func Handler(frame Frame, page Page) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc := NewDocument()
		page.Init(doc)

		ctx := WithDocument(c.Request().Context(), doc)
		var buf bytes.Buffer
		if err := frame(page).Render(ctx, &buf); err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	}
}
