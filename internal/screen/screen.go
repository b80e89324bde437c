// Package screen holds the state of one mounted food details screen.
//
// A Screen owns the displayed food, its extras with the user's quantities, the
// favorite flag and the order quantity. Every mutation is serialized and
// published to subscribers as a Snapshot; the order total is derived on each
// snapshot and never stored.
package screen

import (
	"sync"

	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/guttosm/food-details-service/internal/pricing"
	"github.com/shopspring/decimal"
)

// MinQuantity is the floor of the order quantity.
const MinQuantity = 1

// Status is the load state of a screen.
type Status int

const (
	// StatusIdle means nothing has been requested yet.
	StatusIdle Status = iota
	// StatusLoading means the food and favorites reads are in flight.
	StatusLoading
	// StatusReady means the food is displayed.
	StatusReady
	// StatusFailed means a read failed; Err on the snapshot says why.
	StatusFailed
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of a screen's state plus its derived total.
type Snapshot struct {
	SessionID      string
	FoodID         int64
	Status         Status
	Food           model.Food
	FormattedPrice string
	Extras         []model.Extra
	Quantity       int
	Favorite       bool
	Total          decimal.Decimal
	FormattedTotal string
	Err            error
	Version        uint64
}

// Screen is safe for concurrent use.
type Screen struct {
	mu sync.Mutex

	id        string
	formatter *pricing.Formatter

	foodID         int64
	generation     uint64
	status         Status
	food           model.Food
	formattedPrice string
	extras         []model.Extra
	quantity       int
	favorite       bool
	err            error
	version        uint64

	subscribers map[int]chan Snapshot
	nextSub     int
	closed      bool
}

// New creates an idle screen for foodID.
func New(id string, foodID int64, formatter *pricing.Formatter) *Screen {
	return &Screen{
		id:          id,
		formatter:   formatter,
		foodID:      foodID,
		quantity:    MinQuantity,
		extras:      []model.Extra{},
		subscribers: make(map[int]chan Snapshot),
	}
}

// ID returns the session identifier.
func (s *Screen) ID() string {
	return s.id
}

// FoodID returns the identifier of the food the screen shows.
func (s *Screen) FoodID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foodID
}

// BeginLoad moves an idle or failed screen to loading and returns a token that
// CompleteLoad and FailLoad must present. ok is false when a load is already in
// flight or the food is displayed.
func (s *Screen) BeginLoad() (token uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusLoading || s.status == StatusReady {
		return 0, false
	}
	s.generation++
	s.status = StatusLoading
	s.err = nil
	s.publish()
	return s.generation, true
}

// Retarget points the screen at another food and resets it to idle.
// Returns false when foodID is the one already shown.
func (s *Screen) Retarget(foodID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if foodID == s.foodID {
		return false
	}
	s.generation++
	s.foodID = foodID
	s.status = StatusIdle
	s.food = model.Food{}
	s.formattedPrice = ""
	s.extras = []model.Extra{}
	s.favorite = false
	s.err = nil
	s.publish()
	return true
}

// CompleteLoad seeds the screen from the gateway reads. Extras quantities
// start at zero whatever the API sent. Stale tokens are ignored.
func (s *Screen) CompleteLoad(token uint64, food model.Food, favorite bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.status != StatusLoading {
		return false
	}
	s.food = food
	s.food.Extras = nil
	s.extras = food.ExtrasReset()
	s.formattedPrice = s.format(food.Price)
	s.favorite = favorite
	s.status = StatusReady
	s.publish()
	return true
}

// FailLoad records a failed load. Stale tokens are ignored.
func (s *Screen) FailLoad(token uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.status != StatusLoading {
		return false
	}
	s.status = StatusFailed
	s.err = err
	s.publish()
	return true
}

// IncrementExtra adds one unit of the extra; unknown ids are ignored.
func (s *Screen) IncrementExtra(id int64) bool {
	return s.updateExtra(id, func(e *model.Extra) bool {
		e.Quantity++
		return true
	})
}

// DecrementExtra removes one unit of the extra unless it is already at zero.
func (s *Screen) DecrementExtra(id int64) bool {
	return s.updateExtra(id, func(e *model.Extra) bool {
		if e.Quantity == 0 {
			return false
		}
		e.Quantity--
		return true
	})
}

func (s *Screen) updateExtra(id int64, fn func(*model.Extra) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.extras {
		if s.extras[i].ID != id {
			continue
		}
		if !fn(&s.extras[i]) {
			return false
		}
		s.publish()
		return true
	}
	return false
}

// IncrementQuantity adds one unit of the composed item.
func (s *Screen) IncrementQuantity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quantity++
	s.publish()
}

// DecrementQuantity removes one unit unless the quantity is at MinQuantity.
func (s *Screen) DecrementQuantity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quantity <= MinQuantity {
		return false
	}
	s.quantity--
	s.publish()
	return true
}

// Favorite returns the current favorite flag.
func (s *Screen) Favorite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorite
}

// SetFavorite sets the favorite flag.
func (s *Screen) SetFavorite(favorite bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.favorite == favorite {
		return
	}
	s.favorite = favorite
	s.publish()
}

// Snapshot returns the current state.
func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe returns a channel that receives a snapshot after every change,
// starting with the current one. When the subscriber lags, older snapshots are
// dropped so the newest always gets through. cancel is idempotent.
func (s *Screen) Subscribe(buffer int) (updates <-chan Snapshot, cancel func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}
	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = ch
	ch <- s.snapshot()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subscribers[key]; ok {
				delete(s.subscribers, key)
				close(sub)
			}
		})
	}
}

// Close unmounts the screen: subscribers are closed and later changes are not published.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for key, ch := range s.subscribers {
		delete(s.subscribers, key)
		close(ch)
	}
}

// Closed reports whether the screen has been unmounted.
func (s *Screen) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// snapshot must be called with mu held.
func (s *Screen) snapshot() Snapshot {
	extras := make([]model.Extra, len(s.extras))
	copy(extras, s.extras)

	total := pricing.Total(s.food.Price, extras, s.quantity)

	return Snapshot{
		SessionID:      s.id,
		FoodID:         s.foodID,
		Status:         s.status,
		Food:           s.food,
		FormattedPrice: s.formattedPrice,
		Extras:         extras,
		Quantity:       s.quantity,
		Favorite:       s.favorite,
		Total:          total,
		FormattedTotal: s.format(total),
		Err:            s.err,
		Version:        s.version,
	}
}

// publish must be called with mu held.
func (s *Screen) publish() {
	s.version++
	if s.closed || len(s.subscribers) == 0 {
		return
	}
	snap := s.snapshot()
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (s *Screen) format(amount decimal.Decimal) string {
	if s.formatter == nil {
		return amount.StringFixed(2)
	}
	return s.formatter.Format(amount)
}
