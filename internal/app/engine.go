package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fransfilastap/draw-lot-app/internal/domain"
	"github.com/fransfilastap/draw-lot-app/internal/ports"
)

const (
	DefaultMaxReelItems = 30
	DefaultItemDuration = 100 * time.Millisecond
)

// Config holds the engine tunables.
type Config struct {
	// MaxReelItems is the number of items one spin displays. Must be
	// at least 1.
	MaxReelItems int
	// RemoveWinner removes the drawn name from the list after each
	// spin.
	RemoveWinner bool
	// ItemDuration paces the animation: total spin time is
	// ItemDuration times the number of rendered items.
	ItemDuration time.Duration
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxReelItems: DefaultMaxReelItems,
		RemoveWinner: true,
		ItemDuration: DefaultItemDuration,
	}
}

// Engine owns the name list, prize queue, winner log, and the spin
// lifecycle. All shared state sits behind one mutex; external callers
// read via accessors and write via the wholesale replace operations.
type Engine struct {
	surface ports.Surface
	hooks   ports.Hooks
	rng     domain.RNG
	logger  *slog.Logger

	mu             sync.Mutex
	names          []string
	prizes         []string
	winners        []domain.WinnerRecord
	state          domain.SpinState
	havePrevWinner bool
	removeWinner   bool
	maxReelItems   int
	itemDuration   time.Duration
	cancelSpin     context.CancelFunc
	forced         bool
}

// NewEngine builds an engine. A MaxReelItems below 1 is rejected
// immediately rather than surfacing on the first spin.
func NewEngine(cfg Config, surface ports.Surface, hooks ports.Hooks, rng domain.RNG, logger *slog.Logger) (*Engine, error) {
	if cfg.MaxReelItems < 1 {
		return nil, domain.ErrInvalidConfig
	}
	if cfg.ItemDuration <= 0 {
		cfg.ItemDuration = DefaultItemDuration
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		surface:      surface,
		hooks:        hooks,
		rng:          rng,
		logger:       logger,
		state:        domain.Idle,
		removeWinner: cfg.RemoveWinner,
		maxReelItems: cfg.MaxReelItems,
		itemDuration: cfg.ItemDuration,
	}, nil
}

// SetNames replaces the name list wholesale, clears the reel surface,
// and drops the previous-winner carry-over.
func (e *Engine) SetNames(names []string) {
	e.mu.Lock()
	e.names = slices.Clone(names)
	e.havePrevWinner = false
	e.mu.Unlock()

	e.surface.Clear()
	if h := e.hooks.OnNameListChanged; h != nil {
		h()
	}
}

// SetPrizes replaces the prize queue wholesale.
func (e *Engine) SetPrizes(prizes []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prizes = slices.Clone(prizes)
}

// Names returns a copy of the current name list.
func (e *Engine) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.names)
}

// Prizes returns a copy of the remaining prize queue.
func (e *Engine) Prizes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.prizes)
}

// Winners returns a copy of the winner log in draw order.
func (e *Engine) Winners() []domain.WinnerRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.winners)
}

// ActivePrize returns the prize queue head, or domain.NoPrize when
// the queue is empty.
func (e *Engine) ActivePrize() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activePrizeLocked()
}

func (e *Engine) activePrizeLocked() string {
	if len(e.prizes) == 0 {
		return domain.NoPrize
	}
	return e.prizes[0]
}

// State reports the current spin lifecycle state.
func (e *Engine) State() domain.SpinState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// RemoveWinner reports whether winners are removed from the name list
// after each draw.
func (e *Engine) RemoveWinner() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeWinner
}

// SetRemoveWinner toggles winner removal for subsequent spins.
func (e *Engine) SetRemoveWinner(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeWinner = v
}

// ForceStop finalizes an in-flight animation at its end position. The
// winner was selected at spin start and is not redone. Reports
// whether a spin was actually stopped; calling it outside Spinning is
// a no-op.
func (e *Engine) ForceStop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.Spinning || e.cancelSpin == nil {
		return false
	}
	e.forced = true
	e.cancelSpin()
	return true
}
