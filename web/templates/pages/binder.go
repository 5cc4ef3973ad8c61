// Package pages holds the full pages served by the SciBind server.
package pages

import (
	"scibind/internal/shell"
	"scibind/web/templates/components"
)

// BinderPattern is where the binder page is mounted
const BinderPattern = "/binder/:slug"

// NewBinderPage builds the page shell around the header, toolbar and editor
func NewBinderPage() (*shell.Shell, error) {
	return shell.New(shell.DefaultLayout, components.Header(), components.Toolbar(), components.Editor())
}
