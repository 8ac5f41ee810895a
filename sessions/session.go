// Package sessions holds per-visitor state across requests and the stores
// that persist it between them.
package sessions

import (
	"errors"
	"net/http"

	"github.com/Kariqs/storefront/cart"
	"github.com/Kariqs/storefront/models"
)

// ErrSessionUnavailable is returned when a store cannot read or write session
// state. Requests that hit it cannot continue.
var ErrSessionUnavailable = errors.New("session store unavailable")

// Store loads a session for an incoming request and writes it back with the
// response.
type Store interface {
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
}

// Data is the serialized form of a session.
type Data struct {
	AccountID   uint       `json:"accountId,omitempty"`
	AccountName string     `json:"accountName,omitempty"`
	IsAdmin     bool       `json:"isAdmin,omitempty"`
	Cart        cart.Items `json:"cart"`
	Flashes     []string   `json:"flashes,omitempty"`
}

type Session struct {
	// ID is the opaque store token; empty for cookie sessions.
	ID     string
	data   Data
	// rotate asks the store to issue a new token on the next save.
	rotate bool
}

func New() *Session {
	return &Session{}
}

func (s *Session) CartItems() (cart.Items, bool) {
	if s.data.Cart == nil {
		return nil, false
	}
	return s.data.Cart, true
}

func (s *Session) SetCartItems(items cart.Items) {
	s.data.Cart = items
}

// LogIn records the authenticated account. The cart is left untouched and the
// session token is replaced on the next save.
func (s *Session) LogIn(user models.User) {
	s.rotate = true
	s.data.AccountID = user.ID
	s.data.AccountName = user.Name
	s.data.IsAdmin = user.Admin
}

// LogOut clears all session state. With keepCart the cart survives.
func (s *Session) LogOut(keepCart bool) {
	s.rotate = true
	items := s.data.Cart
	s.data = Data{}
	if keepCart {
		s.data.Cart = items
	}
}

// NeedsRotation reports whether the account changed since the session was
// loaded.
func (s *Session) NeedsRotation() bool {
	return s.rotate
}

func (s *Session) IsLoggedIn() bool {
	return s.data.AccountID != 0
}

func (s *Session) AccountID() uint {
	return s.data.AccountID
}

func (s *Session) AccountName() string {
	return s.data.AccountName
}

func (s *Session) IsAdmin() bool {
	return s.data.IsAdmin
}

func (s *Session) AddFlash(message string) {
	s.data.Flashes = append(s.data.Flashes, message)
}

// Flashes returns the queued messages and empties the queue.
func (s *Session) Flashes() []string {
	flashes := s.data.Flashes
	s.data.Flashes = nil
	if flashes == nil {
		return []string{}
	}
	return flashes
}
