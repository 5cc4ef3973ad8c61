package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"scibind/internal/shell"
	"scibind/web/templates/layouts"
)

// LoginPageProps carries the public Firebase web config. Next must already be
// a local path; login.js checks it again before redirecting.
type LoginPageProps struct {
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	Next               string
	Error              string
}

// LoginPage renders the sign-in page. The Firebase web SDK signs the user in and
// login.js exchanges the ID token for a session cookie at /auth/login.
func LoginPage(props LoginPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := shell.NewDocument()
		doc.Declare(shell.Metadata{Title: "Sign in - " + shell.AppTitle, IconRef: shell.FaviconRef})
		return layouts.Base(loginBody(props)).Render(shell.WithDocument(ctx, doc), w)
	})
}
