// Package cart implements the client-held shopping cart: an ordered list of
// product lines with derived totals, mirrored to the local key-value store
// after every mutation.
//
// Each identity (guest or user) owns a separate persisted slot. On login the
// guest slot is discarded and the user's slot is loaded; carts are never
// merged. Validation failures (quantity, stock) are reported as Result
// values, not errors; backing-store failures are logged and swallowed, the
// cart degrades to empty rather than failing the caller.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/repositories/kv"
	"github.com/hvtran/shopfront/internal/client/session"
	"github.com/hvtran/shopfront/internal/logging"
)

// keyNamespace prefixes every persisted cart slot key.
const keyNamespace = "cart"

// slotKey derives the backing-store key for an identity. Two different
// identities never map to the same key.
func slotKey(id session.Identity) string {
	if uid, ok := id.UserID(); ok {
		return fmt.Sprintf("%s_user_%d", keyNamespace, uid)
	}
	return keyNamespace + "_guest"
}

// Store owns the in-memory cart for the currently active identity slot.
// It is single-goroutine: operations run to completion in call order.
type Store struct {
	kv  kv.Repository
	log logging.Logger

	items      []models.CartItem
	totalItems int
	totalPrice float64
}

// NewStore returns an empty Store. Call SyncWithIdentity (directly or via
// the session manager) to load a persisted slot.
func NewStore(repo kv.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{kv: repo, log: log}
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of quantities over all lines.
func (s *Store) TotalItems() int { return s.totalItems }

// TotalPrice is the sum of quantity*price over all lines.
func (s *Store) TotalPrice() float64 { return s.totalPrice }

// Contains reports whether the cart holds a line for the product.
func (s *Store) Contains(productID int64) bool {
	return s.find(productID) >= 0
}

// Quantity returns the quantity of the product's line, or 0 if absent.
func (s *Store) Quantity(productID int64) int {
	if i := s.find(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

// AddItem puts quantity units of product into the cart, merging with an
// existing line for the same product id. The merged quantity must not exceed
// the product's stock snapshot; otherwise nothing is mutated and the stock
// rejection carries how many units are available. On success the cart is
// persisted to the slot derived from id.
func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int, id session.Identity) Result {
	if quantity < 1 {
		return Result{Outcome: OutcomeRejectedQuantity}
	}

	outcome := OutcomeAdded
	if i := s.find(product.ID); i >= 0 {
		newQuantity := s.items[i].Quantity + quantity
		if newQuantity > product.Stock {
			return Result{Outcome: OutcomeRejectedStock, Remaining: product.Stock}
		}
		s.items[i].Product = product
		s.items[i].Quantity = newQuantity
		outcome = OutcomeQuantityUpdated
	} else {
		if quantity > product.Stock {
			return Result{Outcome: OutcomeRejectedStock, Remaining: product.Stock}
		}
		s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	}

	s.recompute()
	s.persist(ctx, id)
	return Result{Outcome: outcome}
}

// RemoveItem drops the line for productID. A missing line is not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int64, id session.Identity) Result {
	if i := s.find(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.recompute()
	s.persist(ctx, id)
	return Result{Outcome: OutcomeRemoved}
}

// UpdateQuantity sets the line's quantity to exactly quantity. Guards apply
// in order: quantity must be positive, then must not exceed the line's stock
// snapshot. A missing line is silently ignored.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int, id session.Identity) Result {
	i := s.find(productID)
	if i < 0 {
		return Result{Outcome: OutcomeNoop}
	}

	if quantity < 1 {
		return Result{Outcome: OutcomeRejectedQuantity}
	}
	if stock := s.items[i].Product.Stock; quantity > stock {
		return Result{Outcome: OutcomeRejectedStock, Remaining: stock}
	}

	s.items[i].Quantity = quantity
	s.recompute()
	s.persist(ctx, id)
	return Result{Outcome: OutcomeQuantityUpdated}
}

// Clear empties the cart and removes the identity's slot key from the
// backing store entirely.
func (s *Store) Clear(ctx context.Context, id session.Identity) Result {
	s.items = nil
	s.recompute()

	key := slotKey(id)
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "failed to delete cart slot", "key", key, "error", err)
	}
	return Result{Outcome: OutcomeCleared}
}

// SyncWithIdentity swaps the in-memory cart for whatever is persisted under
// the identity's slot. This is not a merge: on a transition to an
// authenticated identity the guest slot is deleted outright before the
// user's slot is loaded; on a transition back to guest the user's slot is
// left untouched. Safe to call repeatedly with the same identity.
func (s *Store) SyncWithIdentity(ctx context.Context, id session.Identity) {
	if id.Authenticated() {
		guestKey := slotKey(session.Guest())
		if err := s.kv.Delete(ctx, guestKey); err != nil {
			s.log.Warn(ctx, "failed to delete guest cart slot", "key", guestKey, "error", err)
		}
	}

	s.items = s.load(ctx, slotKey(id))
	s.recompute()
}

// find returns the index of the line for productID, or -1.
func (s *Store) find(productID int64) int {
	for i, item := range s.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// recompute refreshes the derived totals from the item list. Every mutation
// must call it before the new snapshot becomes observable.
func (s *Store) recompute() {
	total := 0
	price := 0.0
	for _, item := range s.items {
		total += item.Quantity
		price += item.Subtotal()
	}
	s.totalItems = total
	s.totalPrice = price
}

// load reads and decodes a slot. A missing key, a read failure or corrupt
// data all degrade to an empty cart; failures are logged, never propagated.
func (s *Store) load(ctx context.Context, key string) []models.CartItem {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to load cart slot", "key", key, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "corrupt cart slot, starting empty", "key", key, "error", err)
		return nil
	}
	return items
}

// persist mirrors the item list to the identity's slot, fail-soft.
func (s *Store) persist(ctx context.Context, id session.Identity) {
	key := slotKey(id)

	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warn(ctx, "failed to encode cart", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Warn(ctx, "failed to save cart slot", "key", key, "error", err)
	}
}
