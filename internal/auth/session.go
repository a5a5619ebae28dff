// Package auth issues and verifies the signed session tokens that gate the
// whole route surface, and resolves them back into an identity.
package auth

import (
	"errors"
	"net/http"
	"time"

	"boardhub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "session_token"

// ErrUnauthenticated is returned by RequireAuth when no valid session is
// presented. The action layer converts it to a typed failure; it never
// reaches the browser as a crash.
var ErrUnauthenticated = errors.New("unauthorized")

// Session is the resolved identity behind a valid session token.
type Session struct {
	UserID   uuid.UUID
	Email    string
	Username string
}

// Sessions signs, verifies and resolves session tokens against a shared
// secret.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secureCookies bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secureCookies}
}

// GenerateToken signs a session token for the given user. The username claim
// may be empty when the account has not been set up yet.
func (s *Sessions) GenerateToken(user *model.User) (string, error) {
	username := ""
	if user.Username != nil {
		username = *user.Username
	}
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"email":    user.Email,
		"username": username,
		"exp":      jwt.NewNumericDate(time.Now().Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies a raw token string and extracts the session identity.
func (s *Sessions) ParseToken(raw string) (*Session, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.New("invalid user_id claim")
	}

	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)
	return &Session{UserID: userID, Email: email, Username: username}, nil
}

// GetSession resolves the current identity from the request's session
// cookie. Returns nil when no valid token is presented. No side effects.
func (s *Sessions) GetSession(c *gin.Context) *Session {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	session, err := s.ParseToken(raw)
	if err != nil {
		return nil
	}
	return session
}

// RequireAuth resolves the session or fails with ErrUnauthenticated. It
// never substitutes a default identity.
func (s *Sessions) RequireAuth(c *gin.Context) (*Session, error) {
	session := s.GetSession(c)
	if session == nil {
		return nil, ErrUnauthenticated
	}
	return session, nil
}

// SetCookie attaches a freshly signed session token to the response.
func (s *Sessions) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
}

// ClearCookie drops the session cookie.
func (s *Sessions) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
