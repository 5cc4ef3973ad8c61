package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"scibind/internal/shell"
	"scibind/web/templates/layouts"
)

// ErrorPageProps describes the error page
type ErrorPageProps struct {
	Title        string
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// ErrorPage renders a full document for an HTTP error
func ErrorPage(props ErrorPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := shell.NewDocument()
		doc.Declare(shell.Metadata{Title: props.Title + " - " + shell.AppTitle, IconRef: shell.FaviconRef})
		return layouts.Base(errorBody(props)).Render(shell.WithDocument(ctx, doc), w)
	})
}
