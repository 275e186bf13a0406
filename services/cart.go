package services

import "sync"

// The cart lives in memory, owned by the customer's session. It never touches
// the store; checkout re-prices everything server-side anyway.

// CartEntry is the add payload: one menu item, quantity implied (+1 per add).
type CartEntry struct {
	MenuItemID   uint    `json:"menuItemId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	RestaurantID uint    `json:"restaurantId"`
}

type CartLine struct {
	MenuItemID   uint    `json:"menuItemId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	RestaurantID uint    `json:"restaurantId"`
	Quantity     int     `json:"quantity"`
}

// CartConflict records an attempted cross-restaurant add. It exists only
// between the conflicting add and ResolveConflict.
type CartConflict struct {
	PendingItem         CartEntry `json:"pendingItem"`
	CurrentRestaurantID uint      `json:"currentRestaurantId"`
}

type Cart struct {
	Lines    []CartLine    `json:"lines"`
	Conflict *CartConflict `json:"conflict,omitempty"`
}

// AddItem inserts or increments the matching line. If the cart already holds
// another restaurant's items the cart is left untouched and the conflict is
// parked for ResolveConflict.
func (c *Cart) AddItem(item CartEntry) {
	if len(c.Lines) > 0 && c.Lines[0].RestaurantID != item.RestaurantID {
		c.Conflict = &CartConflict{PendingItem: item, CurrentRestaurantID: c.Lines[0].RestaurantID}
		return
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.MenuItemID && c.Lines[i].RestaurantID == item.RestaurantID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID:   item.MenuItemID,
		Name:         item.Name,
		UnitPrice:    item.UnitPrice,
		RestaurantID: item.RestaurantID,
		Quantity:     1,
	})
}

// ResolveConflict settles a pending cross-restaurant add. accept clears the
// cart and adds the pending item; either way the conflict is discarded.
func (c *Cart) ResolveConflict(accept bool) {
	if c.Conflict == nil {
		return
	}
	pending := c.Conflict.PendingItem
	c.Conflict = nil
	if accept {
		c.Lines = nil
		c.AddItem(pending)
	}
}

// DecrementItem lowers the quantity by one, dropping the line at zero.
// No-op when the line is absent.
func (c *Cart) DecrementItem(menuItemID, restaurantID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID && c.Lines[i].RestaurantID == restaurantID {
			if c.Lines[i].Quantity > 1 {
				c.Lines[i].Quantity--
			} else {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

// RemoveItem drops the line regardless of quantity.
func (c *Cart) RemoveItem(menuItemID, restaurantID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID && c.Lines[i].RestaurantID == restaurantID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return round2(sum)
}

func (c *Cart) RestaurantID() uint {
	if len(c.Lines) == 0 {
		return 0
	}
	return c.Lines[0].RestaurantID
}

// CartStore keeps one cart per logged-in customer.
type CartStore struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]*Cart)}
}

// With runs fn against the user's cart under the store lock.
func (s *CartStore) With(userID uint, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	fn(c)
}

// Snapshot returns a copy safe to read outside the lock.
func (s *CartStore) Snapshot(userID uint) Cart {
	var out Cart
	s.With(userID, func(c *Cart) {
		out.Lines = append([]CartLine(nil), c.Lines...)
		if c.Conflict != nil {
			cf := *c.Conflict
			out.Conflict = &cf
		}
	})
	return out
}

// Drop destroys the cart, e.g. after a successful order.
func (s *CartStore) Drop(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
