package domain_test

import (
	"errors"
	"testing"

	"github.com/fransfilastap/draw-lot-app/internal/domain"
)

func TestBuildReel_PadsShortLists(t *testing.T) {
	reel, err := domain.BuildReel([]string{"Alice", "Bob"}, 5, false, newPCG(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reel.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(reel.Items))
	}
	for i, it := range reel.Items {
		if it != "Alice" && it != "Bob" {
			t.Errorf("item %d: unexpected value %q", i, it)
		}
	}
	if reel.Winner != reel.Items[len(reel.Items)-1] {
		t.Errorf("winner %q is not the last item %q", reel.Winner, reel.Items[len(reel.Items)-1])
	}
}

func TestBuildReel_TruncatesLongLists(t *testing.T) {
	names := make([]string, 50)
	for i := range names {
		names[i] = string(rune('a' + i%26))
	}

	reel, err := domain.BuildReel(names, 30, false, newPCG(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reel.Items) != 30 {
		t.Fatalf("expected 30 items, got %d", len(reel.Items))
	}
}

func TestBuildReel_ReservesCarrySlot(t *testing.T) {
	reel, err := domain.BuildReel([]string{"Alice", "Bob", "Carol"}, 5, true, newPCG(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reel.Items) != 4 {
		t.Fatalf("expected maxItems-1 = 4 items, got %d", len(reel.Items))
	}
	if reel.Winner != reel.Items[3] {
		t.Errorf("winner %q is not the last item", reel.Winner)
	}
}

func TestBuildReel_CarrySlotSingleItemReel(t *testing.T) {
	// A one-slot reel cannot reserve space for a carried item.
	reel, err := domain.BuildReel([]string{"Alice"}, 1, true, newPCG(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reel.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(reel.Items))
	}
}

func TestBuildReel_WinnerIsLastShuffledName(t *testing.T) {
	// All-zero draws give a known shuffled order; the reel winner
	// must be the last element of the truncated sequence, not a
	// separate draw.
	rng := &deterministicRNG{values: []int{0, 0, 0}}
	reel, err := domain.BuildReel([]string{"Alice", "Bob", "Carol"}, 3, false, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Shuffle of [Alice Bob Carol] with zero draws: [Bob Carol Alice].
	want := []string{"Bob", "Carol", "Alice"}
	for i := range want {
		if reel.Items[i] != want[i] {
			t.Fatalf("expected items %v, got %v", want, reel.Items)
		}
	}
	if reel.Winner != "Alice" {
		t.Errorf("expected winner Alice, got %q", reel.Winner)
	}
}

func TestBuildReel_EmptyNames(t *testing.T) {
	_, err := domain.BuildReel(nil, 5, false, newPCG(1))
	if !errors.Is(err, domain.ErrEmptyNameList) {
		t.Fatalf("expected ErrEmptyNameList, got %v", err)
	}
}

func TestBuildReel_InvalidMaxItems(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := domain.BuildReel([]string{"Alice"}, n, false, newPCG(1))
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("maxItems=%d: expected ErrInvalidConfig, got %v", n, err)
		}
	}
}
