// Package shell composes the SciBind page frame: a pinned header/toolbar
// overlay above a content region that hosts the editor.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"
)

// Shell renders Header and Toolbar in a fixed overlay and Editor in the content
// region underneath. It passes nothing to its collaborators.
type Shell struct {
	layout  Layout
	meta    Metadata
	header  templ.Component
	toolbar templ.Component
	editor  templ.Component
}

// New builds a shell. The layout must keep the overlay clear of the content.
func New(layout Layout, header, toolbar, editor templ.Component) (*Shell, error) {
	if header == nil || toolbar == nil || editor == nil {
		return nil, errors.New("shell: header, toolbar and editor are required")
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Shell{
		layout:  layout,
		meta:    DefaultMetadata(),
		header:  header,
		toolbar: toolbar,
		editor:  editor,
	}, nil
}

// Init declares the page metadata on the document
func (s *Shell) Init(doc *Document) {
	doc.Declare(s.meta)
}

// Render writes the page body. A collaborator error is returned as is.
func (s *Shell) Render(ctx context.Context, w io.Writer) error {
	return frame(s.layout, s.header, s.toolbar, s.editor).Render(ctx, w)
}
