package components

import (
	"context"

	"scibind/internal/requestctx"
)

// editorState reports the binder slug on the request, if any, and whether the
// surface accepts edits. Old binders are read-only.
func editorState(ctx context.Context) (slug string, editable bool) {
	b, ok := requestctx.Binder(ctx)
	if !ok {
		return "", true
	}
	return b.Slug, !b.Old
}
