package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"scibind/internal/models"
	"scibind/internal/requestctx"
	"scibind/internal/services"
)

// BinderFinder looks up a binder by its public slug
type BinderFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Binder, error)
}

// ResolveBinder loads the binder named by the :slug path parameter into the
// request context. The page renders whether or not a binder is found.
func ResolveBinder(finder BinderFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			slug := c.Param("slug")
			if slug == "" || finder == nil {
				return next(c)
			}

			binder, err := finder.FindBySlug(c.Request().Context(), slug)
			if err != nil {
				if !errors.Is(err, services.ErrBinderNotFound) {
					c.Logger().Errorf("resolve binder %s: %v", slug, err)
				}
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(requestctx.WithBinder(c.Request().Context(), binder)))
			return next(c)
		}
	}
}
