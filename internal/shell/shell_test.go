package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scibind/internal/htmltest"
)

func stub(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section data-component="`+name+`">`+name+`</section>`)
		return err
	})
}

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	s, err := New(DefaultLayout, stub("header"), stub("toolbar"), stub("editor"))
	require.NoError(t, err)
	return s
}

func TestNewRejectsMissingCollaborators(t *testing.T) {
	_, err := New(DefaultLayout, nil, stub("toolbar"), stub("editor"))
	assert.Error(t, err)
}

func TestNewRejectsOccludingLayout(t *testing.T) {
	_, err := New(Layout{HeaderHeight: 100, ToolbarHeight: 100, ContentOffset: 50}, stub("header"), stub("toolbar"), stub("editor"))
	assert.ErrorIs(t, err, ErrOverlayOccludesContent)
}

func TestRenderStructure(t *testing.T) {
	s := newTestShell(t)

	var buf bytes.Buffer
	require.NoError(t, s.Render(context.Background(), &buf))
	doc := htmltest.Parse(t, buf.String())

	overlays := htmltest.FindAll(doc, htmltest.ByAttr("data-region", "overlay"))
	contents := htmltest.FindAll(doc, htmltest.ByAttr("data-region", "content"))
	require.Len(t, overlays, 1)
	require.Len(t, contents, 1)
	assert.True(t, htmltest.Precedes(doc, overlays[0], contents[0]))

	headers := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "header"))
	toolbars := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "toolbar"))
	editors := htmltest.FindAll(doc, htmltest.ByAttr("data-component", "editor"))
	require.Len(t, headers, 1)
	require.Len(t, toolbars, 1)
	require.Len(t, editors, 1)

	assert.True(t, htmltest.Contains(overlays[0], headers[0]))
	assert.True(t, htmltest.Contains(overlays[0], toolbars[0]))
	assert.True(t, htmltest.Precedes(doc, headers[0], toolbars[0]))
	assert.True(t, htmltest.Contains(contents[0], editors[0]))
	assert.False(t, htmltest.Contains(overlays[0], editors[0]))
}

func TestRenderPropagatesCollaboratorError(t *testing.T) {
	boom := errors.New("editor failed")
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error { return boom })

	s, err := New(DefaultLayout, stub("header"), stub("toolbar"), failing)
	require.NoError(t, err)

	err = s.Render(context.Background(), io.Discard)
	assert.Same(t, boom, err)
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestShell(t)
	doc := NewDocument()

	_, declared := doc.Metadata()
	assert.False(t, declared)

	s.Init(doc)
	s.Init(doc)

	meta, declared := doc.Metadata()
	require.True(t, declared)
	assert.Equal(t, Metadata{Title: "SciBind", IconRef: "/favicon.ico"}, meta)
}

func TestDocumentContext(t *testing.T) {
	assert.Nil(t, DocumentFrom(context.Background()))

	doc := NewDocument()
	ctx := WithDocument(context.Background(), doc)
	assert.Same(t, doc, DocumentFrom(ctx))

	var missing *Document
	_, ok := missing.Metadata()
	assert.False(t, ok)
}
