// Package cart keeps the per-session product quantity map and turns it into
// priced line items against the product catalog.
package cart

import (
	"sort"
	"strconv"

	"github.com/Kariqs/storefront/models"
	"github.com/shopspring/decimal"
)

// Items maps a product id, in decimal string form, to its quantity.
type Items map[string]int

// Session is the slice of visitor state the cart reads and writes.
// CartItems reports false until a cart has been stored.
type Session interface {
	CartItems() (Items, bool)
	SetCartItems(items Items)
}

// Lookup resolves a product id against the catalog. A nil product with a nil
// error means the product is not in the catalog.
type Lookup func(id uint) (*models.Product, error)

type LineItem struct {
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type View struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Key returns the cart key for a product id.
func Key(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}

// EnsureInitialized stores an empty cart in the session if it has none.
func EnsureInitialized(s Session) {
	if _, ok := s.CartItems(); !ok {
		s.SetCartItems(Items{})
	}
}

// AddItem adds quantity to the product's entry, creating it when absent.
// Quantity is not range checked; callers validate it.
func AddItem(s Session, productID uint, quantity int) {
	EnsureInitialized(s)
	items, _ := s.CartItems()
	items[Key(productID)] += quantity
	s.SetCartItems(items)
}

// RemoveItem drops the product's entry entirely. It reports whether an entry
// was present.
func RemoveItem(s Session, productID uint) bool {
	EnsureInitialized(s)
	items, _ := s.CartItems()
	key := Key(productID)
	if _, ok := items[key]; !ok {
		return false
	}
	delete(items, key)
	s.SetCartItems(items)
	return true
}

// Count returns the sum of all quantities in the cart.
func Count(s Session) int {
	items, _ := s.CartItems()
	n := 0
	for _, q := range items {
		n += q
	}
	return n
}

// ComputeView prices every cart entry the catalog can resolve. Entries whose
// product is gone are skipped and left in the cart. A lookup error aborts the
// view and is returned as is.
func ComputeView(s Session, lookup Lookup) (View, error) {
	view := View{Items: []LineItem{}, Total: decimal.Zero}

	type entry struct {
		id       uint
		quantity int
	}

	items, _ := s.CartItems()
	entries := make([]entry, 0, len(items))
	for key, quantity := range items {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, entry{id: uint(id), quantity: quantity})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })

	for _, e := range entries {
		product, err := lookup(e.id)
		if err != nil {
			return View{}, err
		}
		if product == nil {
			continue
		}
		quantity := e.quantity
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		view.Total = view.Total.Add(subtotal)
		view.Items = append(view.Items, LineItem{
			Product:  *product,
			Quantity: quantity,
			Subtotal: subtotal,
		})
	}

	return view, nil
}
