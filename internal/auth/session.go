package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/monocle-dev/notebook/internal/types"
)

const (
	purposeSession = "session"
	purposeFlash   = "flash"
	purposeCSRF    = "csrf"

	FlashTTL = 5 * time.Minute
)

var ErrInvalidToken = errors.New("invalid or expired token")

type claims struct {
	Purpose string               `json:"typ"`
	Flashes []types.FlashMessage `json:"msgs,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies every token the app hands to browsers:
// the login session, one-shot flash messages and per-user CSRF tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// IssueSession returns a token identifying userID until the TTL passes.
func (m *SessionManager) IssueSession(userID uint) (string, error) {
	return m.sign(purposeSession, userID, m.ttl, nil)
}

// ParseSession returns the user id carried by a session token.
func (m *SessionManager) ParseSession(token string) (uint, error) {
	c, err := m.parse(token, purposeSession)

	if err != nil {
		return 0, err
	}

	return subjectID(c)
}

// IssueCSRF returns a token that forms posted by userID must echo back.
func (m *SessionManager) IssueCSRF(userID uint) (string, error) {
	return m.sign(purposeCSRF, userID, m.ttl, nil)
}

func (m *SessionManager) VerifyCSRF(token string, userID uint) bool {
	c, err := m.parse(token, purposeCSRF)

	if err != nil {
		return false
	}

	id, err := subjectID(c)

	return err == nil && id == userID
}

func (m *SessionManager) EncodeFlashes(flashes []types.FlashMessage) (string, error) {
	return m.sign(purposeFlash, 0, FlashTTL, flashes)
}

// DecodeFlashes returns nil for anything it cannot verify; a bad flash cookie
// is dropped rather than reported.
func (m *SessionManager) DecodeFlashes(token string) []types.FlashMessage {
	if token == "" {
		return nil
	}

	c, err := m.parse(token, purposeFlash)

	if err != nil {
		return nil
	}

	return c.Flashes
}

func (m *SessionManager) sign(purpose string, userID uint, ttl time.Duration, flashes []types.FlashMessage) (string, error) {
	now := m.now()

	c := claims{
		Purpose: purpose,
		Flashes: flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	if userID != 0 {
		c.Subject = strconv.FormatUint(uint64(userID), 10)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	return token.SignedString(m.secret)
}

func (m *SessionManager) parse(tokenString, purpose string) (*claims, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if c.Purpose != purpose {
		return nil, ErrInvalidToken
	}

	return &c, nil
}

func subjectID(c *claims) (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)

	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
