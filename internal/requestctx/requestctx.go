// Package requestctx carries per-request data to the page collaborators, which
// take no arguments and read what they need from the render context.
package requestctx

import (
	"context"

	"scibind/internal/models"
)

type ctxKey int

const (
	binderKey ctxKey = iota
	userKey
)

// User is the signed-in Firebase user
type User struct {
	UID   string
	Email string
	Name  string
}

// WithBinder stores the binder resolved from the path parameter
func WithBinder(ctx context.Context, b *models.Binder) context.Context {
	return context.WithValue(ctx, binderKey, b)
}

// Binder returns the binder resolved for this request, if any
func Binder(ctx context.Context) (*models.Binder, bool) {
	b, ok := ctx.Value(binderKey).(*models.Binder)
	return b, ok && b != nil
}

// WithUser stores the signed-in user
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the signed-in user, if any
func CurrentUser(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}
