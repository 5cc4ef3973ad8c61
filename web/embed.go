// Package web bundles the static assets served next to the pages.
package web

import "embed"

// Static holds everything under web/static
//
//go:embed static
var Static embed.FS
