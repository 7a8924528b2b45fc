package auth

import (
	"net/http"

	"github.com/monocle-dev/notebook/internal/types"
)

// Cookies reads and writes the session and flash cookies.
type Cookies struct {
	sessions *SessionManager
	domain   string
	secure   bool
}

func NewCookies(sessions *SessionManager, domain string, secure bool) *Cookies {
	return &Cookies{sessions: sessions, domain: domain, secure: secure}
}

func (c *Cookies) Sessions() *SessionManager {
	return c.sessions
}

// SetSession logs userID in for the session TTL.
func (c *Cookies) SetSession(w http.ResponseWriter, userID uint) error {
	token, err := c.sessions.IssueSession(userID)

	if err != nil {
		return err
	}

	http.SetCookie(w, c.cookie(types.SessionCookieName, token, int(c.sessions.TTL().Seconds())))

	return nil
}

func (c *Cookies) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(types.SessionCookieName, "", -1))
}

// SessionUserID returns the user id of a valid session cookie.
func (c *Cookies) SessionUserID(r *http.Request) (uint, bool) {
	cookie, err := r.Cookie(types.SessionCookieName)

	if err != nil || cookie.Value == "" {
		return 0, false
	}

	id, err := c.sessions.ParseSession(cookie.Value)

	if err != nil {
		return 0, false
	}

	return id, true
}

func (c *Cookies) WriteFlashes(w http.ResponseWriter, flashes []types.FlashMessage) error {
	token, err := c.sessions.EncodeFlashes(flashes)

	if err != nil {
		return err
	}

	http.SetCookie(w, c.cookie(types.FlashCookieName, token, int(FlashTTL.Seconds())))

	return nil
}

func (c *Cookies) ReadFlashes(r *http.Request) []types.FlashMessage {
	cookie, err := r.Cookie(types.FlashCookieName)

	if err != nil {
		return nil
	}

	return c.sessions.DecodeFlashes(cookie.Value)
}

func (c *Cookies) ClearFlashes(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(types.FlashCookieName, "", -1))
}

func (c *Cookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   maxAge,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
