// Package service contains the business logic of the food details screen.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/logger"
	"github.com/guttosm/food-details-service/internal/metrics"
	"github.com/guttosm/food-details-service/internal/pricing"
	"github.com/guttosm/food-details-service/internal/screen"
	"github.com/guttosm/food-details-service/internal/service/cache"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSessionNotFound is returned for unknown, closed or expired sessions.
	ErrSessionNotFound = errors.New("screen session not found")
	// ErrNotReady is returned when an action needs the food to be displayed.
	ErrNotReady = errors.New("screen is not ready")
	// ErrInvalidFoodID is returned for non-positive food identifiers.
	ErrInvalidFoodID = errors.New("food id must be positive")
)

// Default values used when no option overrides them.
const (
	DefaultLandingRoute    = "Dashboard"
	DefaultSessionCapacity = 10000
	DefaultSessionTTL      = 30 * time.Minute
)

// Navigation tells the client where to go next.
type Navigation struct {
	Route  string
	Params map[string]string
}

// FoodDetails defines the operations of mounted food details screens.
type FoodDetails interface {
	Open(ctx context.Context, foodID int64) (screen.Snapshot, error)
	Get(sessionID string) (screen.Snapshot, error)
	Reload(ctx context.Context, sessionID string) (screen.Snapshot, error)
	Navigate(ctx context.Context, sessionID string, foodID int64) (screen.Snapshot, error)
	IncrementExtra(sessionID string, extraID int64) (screen.Snapshot, error)
	DecrementExtra(sessionID string, extraID int64) (screen.Snapshot, error)
	IncrementQuantity(sessionID string) (screen.Snapshot, error)
	DecrementQuantity(sessionID string) (screen.Snapshot, error)
	ToggleFavorite(ctx context.Context, sessionID string) (screen.Snapshot, error)
	SubmitOrder(ctx context.Context, sessionID string) (Navigation, error)
	Subscribe(sessionID string, buffer int) (<-chan screen.Snapshot, func(), error)
	Close(sessionID string) error
	ActiveSessions() int
}

// Option configures a FoodDetailsService.
type Option func(*FoodDetailsService)

// session pairs a screen with a lock that serializes its gateway writes and retargets.
type session struct {
	screen  *screen.Screen
	writeMu sync.Mutex
}

// FoodDetailsService implements FoodDetails on top of the food API gateway.
type FoodDetailsService struct {
	gateway            gateway.Gateway
	formatter          *pricing.Formatter
	sessions           cache.Cache[*session]
	sessionCapacity    int
	sessionTTL         time.Duration
	optimisticFavorite bool
	landingRoute       string
	newID              func() string
}

// NewFoodDetailsService creates a FoodDetailsService with the given options.
func NewFoodDetailsService(gw gateway.Gateway, opts ...Option) *FoodDetailsService {
	s := &FoodDetailsService{
		gateway:            gw,
		sessionCapacity:    DefaultSessionCapacity,
		sessionTTL:         DefaultSessionTTL,
		optimisticFavorite: true,
		landingRoute:       DefaultLandingRoute,
		newID:              uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.sessions = cache.NewShardedCache("sessions", s.sessionCapacity, s.sessionTTL, 16, s.onEvict)
	return s
}

// WithFormatter sets the currency formatter used for prices and totals.
func WithFormatter(f *pricing.Formatter) Option {
	return func(s *FoodDetailsService) {
		s.formatter = f
	}
}

// WithSessions sets how many screens may be mounted and how long an idle one lives.
func WithSessions(capacity int, ttl time.Duration) Option {
	return func(s *FoodDetailsService) {
		if capacity > 0 {
			s.sessionCapacity = capacity
		}
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithOptimisticFavorite controls whether the favorite flag flips before the
// gateway confirms the write.
func WithOptimisticFavorite(enabled bool) Option {
	return func(s *FoodDetailsService) {
		s.optimisticFavorite = enabled
	}
}

// WithLandingRoute sets the destination returned after an order is submitted.
func WithLandingRoute(route string) Option {
	return func(s *FoodDetailsService) {
		if route != "" {
			s.landingRoute = route
		}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *FoodDetailsService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Open mounts a screen for foodID and runs its load sequence. A failed load
// still leaves the session mounted in the failed state so it can be reloaded;
// the snapshot is returned together with the load error.
func (s *FoodDetailsService) Open(ctx context.Context, foodID int64) (screen.Snapshot, error) {
	if foodID <= 0 {
		return screen.Snapshot{}, ErrInvalidFoodID
	}

	sess := &session{screen: screen.New(s.newID(), foodID, s.formatter)}
	s.sessions.Set(sess.screen.ID(), sess)
	metrics.SetActiveSessions(s.sessions.Len())

	log := logger.WithSession(sess.screen.ID(), foodID)
	log.Debug().Msg("Screen mounted")

	err := s.load(ctx, sess.screen)
	return sess.screen.Snapshot(), err
}

// Get returns the current state of a session.
func (s *FoodDetailsService) Get(sessionID string) (screen.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return screen.Snapshot{}, err
	}
	return sess.screen.Snapshot(), nil
}

// Reload retries the load sequence of an idle or failed screen. A ready screen
// is returned unchanged.
func (s *FoodDetailsService) Reload(ctx context.Context, sessionID string) (screen.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return screen.Snapshot{}, err
	}
	err = s.load(ctx, sess.screen)
	return sess.screen.Snapshot(), err
}

// Navigate points a mounted screen at another food. Loading runs once per
// distinct food id; navigating to the food already shown does nothing.
func (s *FoodDetailsService) Navigate(ctx context.Context, sessionID string, foodID int64) (screen.Snapshot, error) {
	if foodID <= 0 {
		return screen.Snapshot{}, ErrInvalidFoodID
	}
	sess, err := s.acquire(sessionID)
	if err != nil {
		return screen.Snapshot{}, err
	}
	defer sess.writeMu.Unlock()

	if !sess.screen.Retarget(foodID) {
		return sess.screen.Snapshot(), nil
	}
	err = s.load(ctx, sess.screen)
	return sess.screen.Snapshot(), err
}

// IncrementExtra adds one unit of an extra.
func (s *FoodDetailsService) IncrementExtra(sessionID string, extraID int64) (screen.Snapshot, error) {
	return s.mutate(sessionID, func(scr *screen.Screen) { scr.IncrementExtra(extraID) })
}

// DecrementExtra removes one unit of an extra, never below zero.
func (s *FoodDetailsService) DecrementExtra(sessionID string, extraID int64) (screen.Snapshot, error) {
	return s.mutate(sessionID, func(scr *screen.Screen) { scr.DecrementExtra(extraID) })
}

// IncrementQuantity adds one unit of the composed item.
func (s *FoodDetailsService) IncrementQuantity(sessionID string) (screen.Snapshot, error) {
	return s.mutate(sessionID, func(scr *screen.Screen) { scr.IncrementQuantity() })
}

// DecrementQuantity removes one unit, never below one.
func (s *FoodDetailsService) DecrementQuantity(sessionID string) (screen.Snapshot, error) {
	return s.mutate(sessionID, func(scr *screen.Screen) { scr.DecrementQuantity() })
}

// ToggleFavorite adds the displayed food to the favorites or removes it.
//
// In optimistic mode the flag flips before the write and is reverted if the
// write fails; otherwise it flips only once the gateway has confirmed.
func (s *FoodDetailsService) ToggleFavorite(ctx context.Context, sessionID string) (screen.Snapshot, error) {
	sess, err := s.acquire(sessionID)
	if err != nil {
		return screen.Snapshot{}, err
	}
	defer sess.writeMu.Unlock()

	scr := sess.screen
	snap := scr.Snapshot()
	if snap.Status != screen.StatusReady {
		return snap, ErrNotReady
	}

	wasFavorite := snap.Favorite
	action := "add"
	if wasFavorite {
		action = "remove"
	}

	if s.optimisticFavorite {
		scr.SetFavorite(!wasFavorite)
	}

	if wasFavorite {
		err = s.gateway.RemoveFavorite(ctx, snap.Food.ID)
	} else {
		err = s.gateway.AddFavorite(ctx, model.FavoriteFromFood(snap.Food))
	}

	log := logger.WithSession(sessionID, snap.Food.ID)
	if err != nil {
		if s.optimisticFavorite {
			scr.SetFavorite(wasFavorite)
		}
		metrics.RecordFavoriteToggle(action, "failure")
		log.Warn().Err(err).Str("action", action).Msg("Favorite toggle failed")
		return scr.Snapshot(), err
	}

	if !s.optimisticFavorite {
		scr.SetFavorite(!wasFavorite)
	}
	metrics.RecordFavoriteToggle(action, "success")
	log.Debug().Str("action", action).Msg("Favorite toggled")
	return scr.Snapshot(), nil
}

// SubmitOrder sends the composed order and, once the gateway accepts it,
// unmounts the screen and returns the landing navigation. On failure the
// session stays mounted with its state intact.
func (s *FoodDetailsService) SubmitOrder(ctx context.Context, sessionID string) (Navigation, error) {
	sess, err := s.acquire(sessionID)
	if err != nil {
		return Navigation{}, err
	}
	defer sess.writeMu.Unlock()

	snap := sess.screen.Snapshot()
	if snap.Status != screen.StatusReady {
		return Navigation{}, ErrNotReady
	}

	order := model.Order{
		ProductID:    snap.Food.ID,
		Name:         snap.Food.Name,
		Description:  snap.Food.Description,
		Category:     snap.Food.Category,
		ThumbnailURL: snap.Food.ImageURL,
		Price:        snap.Total,
		Extras:       snap.Extras,
	}

	log := logger.WithSession(sessionID, snap.Food.ID)
	if err := s.gateway.CreateOrder(ctx, order); err != nil {
		metrics.RecordOrderSubmitted("failure")
		log.Warn().Err(err).Msg("Order submission failed")
		return Navigation{}, err
	}

	metrics.RecordOrderSubmitted("success")
	log.Info().
		Str("total", order.Price.String()).
		Int("quantity", snap.Quantity).
		Msg("Order submitted")

	s.sessions.Invalidate(sessionID)
	return Navigation{Route: s.landingRoute}, nil
}

// Subscribe streams the session's snapshots until cancel is called or the
// session is closed.
func (s *FoodDetailsService) Subscribe(sessionID string, buffer int) (<-chan screen.Snapshot, func(), error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}
	updates, cancel := sess.screen.Subscribe(buffer)
	return updates, cancel, nil
}

// Close unmounts a session and discards its state.
func (s *FoodDetailsService) Close(sessionID string) error {
	if !s.sessions.Invalidate(sessionID) {
		return ErrSessionNotFound
	}
	return nil
}

// ActiveSessions returns the number of mounted screens.
func (s *FoodDetailsService) ActiveSessions() int {
	return s.sessions.Len()
}

// Shutdown unmounts every session and stops the session sweeper.
func (s *FoodDetailsService) Shutdown() {
	s.sessions.Clear()
	s.sessions.Stop()
}

func (s *FoodDetailsService) lookup(sessionID string) (*session, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// acquire looks up a session and takes its write lock. A screen unmounted while
// the caller waited for the lock is reported as not found.
func (s *FoodDetailsService) acquire(sessionID string) (*session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.writeMu.Lock()
	if sess.screen.Closed() {
		sess.writeMu.Unlock()
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *FoodDetailsService) mutate(sessionID string, fn func(*screen.Screen)) (screen.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return screen.Snapshot{}, err
	}
	fn(sess.screen)
	return sess.screen.Snapshot(), nil
}

// load fetches the food and the favorites concurrently and seeds the screen.
// It does nothing when the screen is already loading or ready.
func (s *FoodDetailsService) load(ctx context.Context, scr *screen.Screen) error {
	token, ok := scr.BeginLoad()
	if !ok {
		return nil
	}
	foodID := scr.FoodID()
	log := logger.WithSession(scr.ID(), foodID)

	var (
		food      model.Food
		favorites []model.Food
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		food, err = s.gateway.GetFood(gctx, foodID)
		return err
	})
	g.Go(func() error {
		var err error
		favorites, err = s.gateway.ListFavorites(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		scr.FailLoad(token, err)
		metrics.RecordScreenLoad("failure")
		log.Warn().Err(err).Msg("Screen load failed")
		return err
	}

	if scr.CompleteLoad(token, food, model.ContainsFood(favorites, foodID)) {
		metrics.RecordScreenLoad("success")
		log.Debug().Int("extras", len(food.Extras)).Msg("Screen loaded")
	}
	return nil
}

func (s *FoodDetailsService) onEvict(sessionID string, sess *session, reason string) {
	sess.screen.Close()
	if s.sessions != nil {
		metrics.SetActiveSessions(s.sessions.Len())
	}
	log := logger.WithSession(sessionID, sess.screen.FoodID())
	log.Debug().
		Str("reason", reason).
		Msg("Screen unmounted")
}

var _ FoodDetails = (*FoodDetailsService)(nil)

