package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// SpinState is the lifecycle state of the reel.
type SpinState string

const (
	Idle     SpinState = "idle"
	Spinning SpinState = "spinning"
	Settled  SpinState = "settled"
)

// NoPrize is the label reported when the prize queue is empty.
const NoPrize = "No Prize"

// WinnerRecord pairs a drawn winner with the prize that was active at
// draw time. Records are append-only for the lifetime of a session.
type WinnerRecord struct {
	Prize  string `json:"prize"`
	Winner string `json:"winner"`
}

// String renders the record the way it appears in the winner log.
func (r WinnerRecord) String() string {
	return r.Prize + " - " + r.Winner
}

// Reel is the derived sequence of items a single spin displays.
// It is transient: rebuilt at spin start and discarded at settle.
type Reel struct {
	// Items in display order. The last item is the winner.
	Items []string
	// Winner duplicates the last item for convenience.
	Winner string
}
