package pages_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"scibind/internal/htmltest"
	"scibind/internal/middleware"
	"scibind/internal/models"
	"scibind/internal/services"
	"scibind/internal/shell"
	"scibind/web/templates/layouts"
	"scibind/web/templates/pages"
)

type staticFinder map[string]*models.Binder

func (f staticFinder) FindBySlug(ctx context.Context, slug string) (*models.Binder, error) {
	if b, ok := f[slug]; ok {
		return b, nil
	}
	return nil, services.ErrBinderNotFound
}

func newServer(t *testing.T, m ...echo.MiddlewareFunc) *echo.Echo {
	t.Helper()
	page, err := pages.NewBinderPage()
	require.NoError(t, err)

	e := echo.New()
	shell.Register(e, layouts.Base, []shell.Route{{Pattern: pages.BinderPattern, Page: page}}, m...)
	return e
}

func get(t *testing.T, e *echo.Echo, path string) *html.Node {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return htmltest.Parse(t, rec.Body.String())
}

func TestBinderPageStructure(t *testing.T) {
	doc := get(t, newServer(t), "/binder/abc123")

	titles := htmltest.FindAll(doc, htmltest.ByTag("title"))
	require.Len(t, titles, 1)
	assert.Equal(t, "SciBind", htmltest.Text(titles[0]))

	icons := htmltest.FindAll(doc, htmltest.ByAttr("rel", "icon"))
	require.Len(t, icons, 1)
	href, _ := htmltest.Attr(icons[0], "href")
	assert.Equal(t, "/favicon.ico", href)

	overlay := htmltest.FindAll(doc, htmltest.ByAttr("data-region", "overlay"))
	content := htmltest.FindAll(doc, htmltest.ByAttr("data-region", "content"))
	require.Len(t, overlay, 1)
	require.Len(t, content, 1)
	assert.True(t, htmltest.Precedes(doc, overlay[0], content[0]))

	headers := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "header"))
	toolbars := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "toolbar"))
	editors := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "editor"))
	require.Len(t, headers, 1)
	require.Len(t, toolbars, 1)
	require.Len(t, editors, 1)

	assert.True(t, htmltest.Contains(overlay[0], headers[0]))
	assert.True(t, htmltest.Contains(overlay[0], toolbars[0]))
	assert.True(t, htmltest.Precedes(doc, headers[0], toolbars[0]))
	assert.True(t, htmltest.Contains(content[0], editors[0]))

	style, _ := htmltest.Attr(overlay[0], "style")
	assert.Contains(t, style, "position:fixed")
	assert.Contains(t, style, "height:112px")
	style, _ = htmltest.Attr(content[0], "style")
	assert.Contains(t, style, "margin-top:112px")

	scripts := htmltest.FindAll(doc, htmltest.ByAttr("src", "/static/js/editor.js"))
	require.Len(t, scripts, 1)
	assert.True(t, htmltest.Contains(editors[0], scripts[0]))
}

func TestBinderPageRerenderDoesNotDuplicateMetadata(t *testing.T) {
	e := newServer(t)
	for i := 0; i < 3; i++ {
		doc := get(t, e, "/binder/abc123")
		assert.Len(t, htmltest.FindAll(doc, htmltest.ByTag("title")), 1)
		assert.Len(t, htmltest.FindAll(doc, htmltest.ByAttr("rel", "icon")), 1)
	}
}

func TestBinderPageShowsResolvedBinder(t *testing.T) {
	finder := staticFinder{"abc123": {
		Slug:  "abc123",
		Event: models.Event{Name: "Anatomy"},
		Owner: models.User{Username: "alice"},
	}}
	e := newServer(t, middleware.ResolveBinder(finder))

	doc := get(t, e, "/binder/abc123")
	labels := htmltest.FindAll(doc, htmltest.ByAttr("class", "binder-label"))
	require.Len(t, labels, 1)
	assert.Equal(t, "Anatomy Binder - alice", htmltest.Text(labels[0]))

	doc = get(t, e, "/binder/unknown")
	assert.Empty(t, htmltest.FindAll(doc, htmltest.ByAttr("class", "binder-label")))
	assert.Len(t, htmltest.FindAll(doc, htmltest.ByAttr("data-component", "editor")), 1)
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	err := pages.ErrorPage(pages.ErrorPageProps{
		Title:        "Page Not Found",
		ErrorTitle:   "Page Not Found",
		ErrorMessage: "Nothing here.",
		BackLink:     "/",
		BackText:     "Back",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := htmltest.Parse(t, buf.String())
	titles := htmltest.FindAll(doc, htmltest.ByTag("title"))
	require.Len(t, titles, 1)
	assert.Equal(t, "Page Not Found - SciBind", htmltest.Text(titles[0]))
	assert.Contains(t, buf.String(), "Nothing here.")
	assert.NotContains(t, buf.String(), "editor.js")
}

func TestLoginPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pages.LoginPage(pages.LoginPageProps{
		FirebaseProjectID: "scibind-dev",
		Next:              "/binder/abc123?tab=2",
		Error:             "Sign-in is not configured on this server.",
	}).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `data-project-id="scibind-dev"`)
	assert.Contains(t, out, `data-next="/binder/abc123?tab=2"`)
	assert.Contains(t, out, `<p class="login-error">Sign-in is not configured on this server.</p>`)
	assert.Contains(t, out, `data-action="login"`)
	assert.NotContains(t, out, "editor.js")
}
