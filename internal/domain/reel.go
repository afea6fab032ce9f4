package domain

// BuildReel produces the item sequence for one spin. The shuffled
// name list is concatenated with itself until it can fill the reel,
// then truncated to maxItems. When reserveCarrySlot is set, one slot
// is left for the previous winner still on display, so only
// maxItems-1 new items are produced.
//
// The winner is the last item of the truncated sequence. The landing
// position and the logical winner are the same element by
// construction; there is no second draw.
func BuildReel(names []string, maxItems int, reserveCarrySlot bool, rng RNG) (Reel, error) {
	if maxItems < 1 {
		return Reel{}, ErrInvalidConfig
	}
	if len(names) == 0 {
		return Reel{}, ErrEmptyNameList
	}

	want := maxItems
	if reserveCarrySlot && maxItems > 1 {
		want = maxItems - 1
	}

	base := Shuffle(names, rng)
	// Repeat the shuffled list so short name lists still fill the
	// reel. Only the final item is semantically meaningful.
	items := base
	for len(items) < want {
		items = append(items, base...)
	}
	items = items[:want:want]

	return Reel{
		Items:  items,
		Winner: items[len(items)-1],
	}, nil
}
