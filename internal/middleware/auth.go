package middleware

import (
	"net/http"
	"net/url"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"scibind/internal/requestctx"
)

// RequireAuth returns a middleware that verifies Firebase session cookies.
// Without a Firebase client requests are sent to the login page with
// error=auth_not_configured, unless allowAnonymous is set (local development
// with Firebase left unconfigured).
func RequireAuth(authClient *auth.Client, allowAnonymous bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authClient == nil {
				if allowAnonymous {
					return next(c)
				}
				return c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_not_configured")
			}

			loginURL := "/login?next=" + url.QueryEscape(c.Request().URL.RequestURI())

			cookie, err := c.Cookie("session")
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusTemporaryRedirect, loginURL)
			}

			decodedToken, err := authClient.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie and redirect
				c.SetCookie(&http.Cookie{
					Name:     "session",
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				})
				return c.Redirect(http.StatusTemporaryRedirect, loginURL)
			}

			user := requestctx.User{UID: decodedToken.UID}
			if email, ok := decodedToken.Claims["email"].(string); ok {
				user.Email = email
			}
			if name, ok := decodedToken.Claims["name"].(string); ok {
				user.Name = name
			}
			c.SetRequest(c.Request().WithContext(requestctx.WithUser(c.Request().Context(), user)))

			return next(c)
		}
	}
}
