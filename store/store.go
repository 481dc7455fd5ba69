// Package store owns the live cart. It applies the pure transitions from
// package logic, persists every change through a KV and tells subscribers
// about the new state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"menucart/catalog"
	"menucart/kv"
	"menucart/logic"
)

// DefaultKey is the KV key the cart is saved under.
const DefaultKey = "cart_items"

// KV is the persistence the Store writes through. Get returns
// kv.ErrNotFound for a key that was never set.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Snapshot is an immutable view of the cart handed to readers and
// subscribers.
type Snapshot struct {
	Items     logic.Cart      `json:"items"`
	Totals    logic.Totals    `json:"totals"`
	ItemCount int             `json:"itemCount"`
	TaxRate   decimal.Decimal `json:"taxRate"`
}

type Option func(*Store)

func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Store) { s.taxRate = rate }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store holds the current cart. Mutations are serialized; each one runs the
// reducer, recomputes totals and persists before the next starts.
type Store struct {
	mu      sync.Mutex
	kv      KV
	key     string
	taxRate decimal.Decimal
	logic   logic.CartLogic
	log     *zap.Logger

	cart   logic.Cart
	totals logic.Totals

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// New builds a Store and restores the saved cart from backend. Any load
// failure leaves the cart empty.
func New(ctx context.Context, backend KV, opts ...Option) *Store {
	s := &Store{
		kv:      backend,
		key:     DefaultKey,
		taxRate: logic.DefaultTaxRate,
		logic:   logic.NewCartLogic(),
		log:     zap.NewNop(),
		subs:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cart = s.load(ctx)
	s.totals = s.logic.Totals(s.cart, s.taxRate)
	return s
}

func (s *Store) load(ctx context.Context) logic.Cart {
	if s.kv == nil {
		s.log.Warn("no cart storage configured, starting empty")
		return logic.EmptyCart()
	}

	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.log.Debug("no saved cart", zap.String("key", s.key))
		return logic.EmptyCart()
	}
	if err != nil {
		s.log.Warn("failed to load cart, starting empty", zap.String("key", s.key), zap.Error(err))
		return logic.EmptyCart()
	}

	var saved logic.Cart
	if err := json.Unmarshal(data, &saved); err != nil {
		s.log.Warn("saved cart is malformed, starting empty", zap.String("key", s.key), zap.Error(err))
		return logic.EmptyCart()
	}

	cart, dropped := sanitize(saved)
	if dropped > 0 {
		s.log.Warn("dropped invalid saved line items", zap.Int("dropped", dropped))
	}
	s.log.Info("restored cart", zap.Int("line_items", len(cart)), zap.Int("item_count", cart.ItemCount()))
	return cart
}

// sanitize keeps the first entry per id, drops entries that cannot be
// valid line items and recomputes each line total from its unit price.
func sanitize(saved logic.Cart) (logic.Cart, int) {
	out := make(logic.Cart, 0, len(saved))
	seen := make(map[string]bool, len(saved))
	for _, li := range saved {
		if li.ID == "" || li.Quantity <= 0 || li.Quantity > logic.MaxQuantity || seen[li.ID] {
			continue
		}
		seen[li.ID] = true
		out = append(out, li.WithQuantity(li.Quantity))
	}
	return out, len(saved) - len(out)
}

// AddItem adds quantity of item with sel, merging with an identical line.
// It returns the resulting line item.
func (s *Store) AddItem(ctx context.Context, item catalog.MenuItem, sel logic.Selections, quantity int) (logic.LineItem, error) {
	s.mu.Lock()
	next, err := s.logic.Add(s.cart, item, sel, quantity)
	if err != nil {
		s.mu.Unlock()
		return logic.LineItem{}, err
	}
	id := logic.LineItemID(item.ID, sel)
	li, _ := next.Find(id)
	li.Selections = li.Selections.Clone()
	snap := s.commit(ctx, next)
	s.mu.Unlock()

	s.log.Debug("added to cart",
		zap.String("cart_item_id", id),
		zap.Int("quantity", quantity),
		zap.Int("line_quantity", li.Quantity))
	s.notify(snap)
	return li, nil
}

// RemoveItem drops a line item. Unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	snap := s.commit(ctx, s.logic.Remove(s.cart, id))
	s.mu.Unlock()

	s.log.Debug("removed from cart", zap.String("cart_item_id", id))
	s.notify(snap)
}

// UpdateQuantity replaces a line item's quantity; zero or less removes it.
// A quantity above logic.MaxQuantity is rejected and the cart is unchanged.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	next, err := s.logic.SetQuantity(s.cart, id, quantity)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.commit(ctx, next)
	s.mu.Unlock()

	s.log.Debug("updated quantity", zap.String("cart_item_id", id), zap.Int("quantity", quantity))
	s.notify(snap)
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	snap := s.commit(ctx, logic.EmptyCart())
	s.mu.Unlock()

	s.log.Debug("cleared cart")
	s.notify(snap)
}

// commit installs next, recomputes totals and persists. Must hold s.mu.
func (s *Store) commit(ctx context.Context, next logic.Cart) Snapshot {
	s.cart = next
	s.totals = s.logic.Totals(next, s.taxRate)
	s.persist(ctx)
	return s.snapshotLocked()
}

func (s *Store) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}

	data, err := json.Marshal(s.cart)
	if err != nil {
		s.log.Warn("failed to encode cart", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.log.Warn("failed to persist cart", zap.String("key", s.key), zap.Error(err))
	}
}

// Items returns a copy of the current line items in cart order.
func (s *Store) Items() logic.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Copy()
}

func (s *Store) Totals() logic.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// ItemCount sums the quantities of all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Store) TaxRate() decimal.Decimal {
	return s.taxRate
}

// Find returns the line item with the given id.
func (s *Store) Find(id string) (logic.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	li, ok := s.cart.Find(id)
	li.Selections = li.Selections.Clone()
	return li, ok
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:     s.cart.Copy(),
		Totals:    s.totals,
		ItemCount: s.cart.ItemCount(),
		TaxRate:   s.taxRate,
	}
}
