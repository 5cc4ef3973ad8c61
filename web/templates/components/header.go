// Package components holds the collaborators of the binder page. Each takes no
// arguments and reads request data from the render context.
package components

import "scibind/internal/requestctx"

func displayName(u requestctx.User) string {
	if u.Email != "" {
		return u.Email
	}
	return u.Name
}
