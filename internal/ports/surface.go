package ports

import (
	"context"
	"time"
)

// Surface is the rendering boundary the engine drives. The concrete
// mechanism (websocket hub, terminal, test fake) is irrelevant to the
// core as long as these four operations hold.
type Surface interface {
	// Clear removes every rendered reel item.
	Clear()
	// Append renders a batch of new items in order after any
	// existing ones.
	Append(items []string)
	// Spin runs the reel animation for d and blocks until it
	// finishes or ctx is canceled. A canceled ctx is the forced-stop
	// path, not a failure. Spin must return on both paths; the
	// engine settles exactly once either way.
	Spin(ctx context.Context, d time.Duration) error
	// CollapseToWinner removes all but the last rendered item.
	CollapseToWinner()
}
