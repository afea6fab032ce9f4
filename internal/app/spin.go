package app

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/fransfilastap/draw-lot-app/internal/domain"
	"github.com/fransfilastap/draw-lot-app/internal/ports"
)

// SpinResult describes one completed spin.
type SpinResult struct {
	ID     string
	Prize  string
	Winner string
	Items  []string
	Forced bool
}

// Spin runs one draw end to end: claim the spin slot, fire the start
// hook, build the reel, record the winner, drive the animation, and
// settle. It blocks for the animation's duration; ForceStop cancels
// the wait. Natural completion and forced stop converge on the same
// settle path, which runs exactly once per attempt.
func (e *Engine) Spin(ctx context.Context) (SpinResult, error) {
	e.mu.Lock()
	if e.state == domain.Spinning {
		e.mu.Unlock()
		return SpinResult{}, domain.ErrSpinInProgress
	}
	if len(e.names) == 0 {
		e.mu.Unlock()
		return SpinResult{}, domain.ErrEmptyNameList
	}

	spinCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := uuid.NewString()
	prize := e.activePrizeLocked()
	carried := e.havePrevWinner
	// The winner is always drawn from the list as it exists right
	// now, even if SetNames replaces it before the animation ends.
	namesAtStart := slices.Clone(e.names)
	e.state = domain.Spinning
	e.forced = false
	e.cancelSpin = cancel
	e.mu.Unlock()

	if h := e.hooks.OnSpinStart; h != nil {
		h(ports.SpinInfo{ID: id, Prize: prize})
	}

	reel, err := domain.BuildReel(namesAtStart, e.maxReelItems, carried, e.rng)
	if err != nil {
		e.mu.Lock()
		e.state = domain.Settled
		e.cancelSpin = nil
		e.mu.Unlock()
		return SpinResult{}, err
	}

	e.mu.Lock()
	e.winners = append(e.winners, domain.WinnerRecord{Prize: prize, Winner: reel.Winner})
	if e.removeWinner {
		if i := slices.Index(e.names, reel.Winner); i >= 0 {
			e.names = slices.Delete(e.names, i, i+1)
		}
	}
	// The active prize is consumed once per spin, independent of the
	// removal setting.
	if len(e.prizes) > 0 {
		e.prizes = e.prizes[1:]
	}
	e.mu.Unlock()

	// When a previous winner is still on display it stays as the
	// first slot; otherwise start from a blank surface.
	if !carried {
		e.surface.Clear()
	}
	e.surface.Append(reel.Items)

	animErr := e.surface.Spin(spinCtx, e.itemDuration*time.Duration(len(reel.Items)))

	e.mu.Lock()
	forced := e.forced || errors.Is(animErr, context.Canceled)
	e.state = domain.Settled
	e.havePrevWinner = true
	e.cancelSpin = nil
	e.mu.Unlock()

	if animErr != nil && !errors.Is(animErr, context.Canceled) {
		e.logger.Warn("reel animation failed, settling anyway", "spin_id", id, "error", animErr)
	}

	e.surface.CollapseToWinner()

	info := ports.SpinInfo{ID: id, Prize: prize, Winner: reel.Winner, Forced: forced}
	if h := e.hooks.OnSpinEnd; h != nil {
		h(info)
	}

	e.logger.Info("spin settled",
		"spin_id", id,
		"winner", reel.Winner,
		"prize", prize,
		"forced", forced,
	)

	return SpinResult{
		ID:     id,
		Prize:  prize,
		Winner: reel.Winner,
		Items:  reel.Items,
		Forced: forced,
	}, nil
}
