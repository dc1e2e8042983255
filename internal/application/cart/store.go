// Package cart holds the session-scoped cart: a store object with an
// explicit save/load/clear cookie contract and a single idle-timeout task
// owned by the session. Cart state is never persisted server-side.
package cart

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// payload is the serialized cookie shape.
type payload struct {
	Items       []entity.LineItem  `json:"items"`
	PaymentInfo entity.PaymentInfo `json:"payment_info"`
	SavedAt     time.Time          `json:"saved_at"`
}

// Store is one browser session's cart and payment info. A session has a
// single writer; the mutex only guards against the idle-timeout callback.
type Store struct {
	mu          sync.Mutex
	items       []entity.LineItem
	paymentInfo entity.PaymentInfo
	savedAt     time.Time

	idle       time.Duration
	warnLead   time.Duration
	warnTimer  *time.Timer
	clearTimer *time.Timer
	onWarn     func()
	onExpire   func()
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIdleTimeout sets the inactivity window and the warning lead time
// (how long before expiry the warning fires).
func WithIdleTimeout(idle, warnLead time.Duration) Option {
	return func(s *Store) {
		s.idle = idle
		s.warnLead = warnLead
	}
}

// WithCallbacks registers the warning and expiry notifications.
func WithCallbacks(onWarn, onExpire func()) Option {
	return func(s *Store) {
		s.onWarn = onWarn
		s.onExpire = onExpire
	}
}

// withClock overrides the clock; test hook.
func withClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds an empty cart store. Default idle timeout is 60 minutes
// with the warning 15 seconds before expiry.
func NewStore(opts ...Option) *Store {
	s := &Store{
		idle:     60 * time.Minute,
		warnLead: 15 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items returns a copy of the line items.
func (s *Store) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// PaymentInfo returns the captured shipping/payment selection.
func (s *Store) PaymentInfo() entity.PaymentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentInfo
}

// SetPaymentInfo replaces the shipping address and payment method.
func (s *Store) SetPaymentInfo(info entity.PaymentInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentInfo = info
}

// setItem replaces the line item with the same product id, or appends when
// none matches. Replace, not append: the incoming snapshot carries the new
// quantity.
func (s *Store) setItem(item entity.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ProductID == item.ProductID {
			s.items[i] = item
			return
		}
	}
	s.items = append(s.items, item)
}

// find returns the line item for a product id, if present.
func (s *Store) find(productID string) (entity.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return entity.LineItem{}, false
}

// Remove drops the line item for a product id. Unknown ids are a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// ResetItems clears the line items but keeps payment info intact, for the
// checkout path where another order may follow with the same address.
func (s *Store) ResetItems() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Clear wipes both line items and payment info (logout, idle expiry).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.items = nil
	s.paymentInfo = entity.PaymentInfo{}
	s.savedAt = time.Time{}
}

// Save serializes the cart to a cookie value (base64 of the JSON payload)
// and stamps the save time so expiry survives process restarts.
func (s *Store) Save() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedAt = s.now()
	raw, err := json.Marshal(payload{
		Items:       s.items,
		PaymentInfo: s.paymentInfo,
		SavedAt:     s.savedAt,
	})
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Load restores the cart from a cookie value. A stale payload (saved longer
// ago than the idle window) loads as an empty cart. A malformed payload is
// discarded the same way rather than failing the request.
func (s *Store) Load(cookie string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	if cookie == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(cookie)
	if err != nil {
		return nil
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if !p.SavedAt.IsZero() && s.now().Sub(p.SavedAt) >= s.idle {
		return nil
	}
	s.items = p.Items
	s.paymentInfo = p.PaymentInfo
	s.savedAt = p.SavedAt
	return nil
}

// Touch restarts the idle-timeout task. Call on every qualifying user
// interaction. The timers only arm while there is something to lose.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimersLocked()
	if len(s.items) == 0 && s.paymentInfo.IsZero() {
		return
	}

	if s.onWarn != nil && s.idle > s.warnLead {
		s.warnTimer = time.AfterFunc(s.idle-s.warnLead, s.onWarn)
	}
	s.clearTimer = time.AfterFunc(s.idle, func() {
		s.Clear()
		if s.onExpire != nil {
			s.onExpire()
		}
	})
}

// Stop cancels the idle-timeout task (session teardown).
func (s *Store) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
}

func (s *Store) stopTimersLocked() {
	if s.warnTimer != nil {
		s.warnTimer.Stop()
		s.warnTimer = nil
	}
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}
