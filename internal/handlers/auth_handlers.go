package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"scibind/internal/config"
	"scibind/internal/models"
	"scibind/internal/services"
	"scibind/web/templates/pages"
)

const sessionDuration = 24 * 5 * time.Hour

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authClient *auth.Client
	db         *gorm.DB
	cfg        config.Config
}

// NewAuthHandler creates a new AuthHandler. authClient and db may be nil.
func NewAuthHandler(authClient *auth.Client, db *gorm.DB, cfg config.Config) *AuthHandler {
	return &AuthHandler{authClient: authClient, db: db, cfg: cfg}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	props := pages.LoginPageProps{
		FirebaseAPIKey:     h.cfg.FirebaseAPIKey,
		FirebaseAuthDomain: h.cfg.FirebaseAuthDomain,
		FirebaseProjectID:  h.cfg.FirebaseProjectID,
		Next:               safeNext(c.QueryParam("next")),
		Error:              loginErrorMessage(c.QueryParam("error")),
	}

	var buf bytes.Buffer
	if err := pages.LoginPage(props).Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.authClient == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), tokenString)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}

	cookieValue, err := h.authClient.SessionCookie(c.Request().Context(), tokenString, sessionDuration)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	if err := h.ensureUser(token); err != nil {
		log.Printf("Failed to record user %s: %v", token.UID, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    cookieValue,
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}

// ensureUser creates the user row on first login
func (h *AuthHandler) ensureUser(token *auth.Token) error {
	if h.db == nil {
		return nil
	}

	var user models.User
	err := h.db.Where("firebase_uid = ?", token.UID).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user = newUserFromClaims(token.UID, token.Claims)
	user.ProfilePicture = services.RandomProfilePicture(h.cfg.MediaRoot)
	return h.db.Create(&user).Error
}

func newUserFromClaims(uid string, claims map[string]interface{}) models.User {
	user := models.User{FirebaseUID: uid}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		user.Username = name
	} else if at := strings.Index(user.Email, "@"); at > 0 {
		user.Username = user.Email[:at]
	} else {
		user.Username = uid
	}
	return user
}

// safeNext keeps next only when it is a path on this site. Anything that could
// leave the origin (scheme, host, "//" or "/\" prefixes) falls back to "/".
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

var loginErrors = map[string]string{
	"auth_not_configured": "Sign-in is not configured on this server.",
}

func loginErrorMessage(code string) string {
	if code == "" {
		return ""
	}
	if msg, ok := loginErrors[code]; ok {
		return msg
	}
	return "Sign-in failed, please try again."
}
