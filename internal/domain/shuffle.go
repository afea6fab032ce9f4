package domain

// Shuffle returns a uniformly random permutation of items without
// mutating the input. Fisher-Yates over a copy: walk from the last
// index down, swapping each element with one at a uniform index in
// [0, i]. Empty or nil input yields an empty slice.
func Shuffle(items []string, rng RNG) []string {
	out := make([]string, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
