package sessions

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "session"

type sessionClaims struct {
	Data
	jwt.RegisteredClaims
}

// CookieStore keeps the whole session in an HS256-signed token inside the
// session cookie. A missing, expired or tampered cookie yields a fresh session.
type CookieStore struct {
	secret []byte
	maxAge time.Duration
	secure bool
}

func NewCookieStore(secret string, maxAge time.Duration, secure bool) (*CookieStore, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &CookieStore{secret: []byte(secret), maxAge: maxAge, secure: secure}, nil
}

func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New(), nil
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return New(), nil
	}

	return &Session{data: claims.Data}, nil
}

func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Data: s.data,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
