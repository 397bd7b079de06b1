package word

// RevealOrder returns the deterministic letter-reveal schedule for a word
// of the given length: offsets 2, 6, 10, ...; then 3, 7, 11, ...; then
// 1, 5, 9, ...; then 0, 4, 8, ... (spec.md §4.4). Only indices within
// [0, length) are included. Nothing in the server calls this: the timer
// wiring in internal/router schedules no hint ticks, and settings.hints is
// not read — see DESIGN.md "Open-question decisions" §4.
func RevealOrder(length int) []int {
	starts := []int{2, 3, 1, 0}
	order := make([]int, 0, length)
	seen := make([]bool, length)
	for _, start := range starts {
		for idx := start; idx < length; idx += 4 {
			if idx >= 0 && idx < length && !seen[idx] {
				seen[idx] = true
				order = append(order, idx)
			}
		}
	}
	return order
}

// NextHintIndex returns the index that should be revealed next, given how
// many hints have already been revealed for a word of the given length.
// ok is false once every index has been revealed.
func NextHintIndex(length, alreadyRevealed int) (idx int, ok bool) {
	order := RevealOrder(length)
	if alreadyRevealed < 0 || alreadyRevealed >= len(order) {
		return 0, false
	}
	return order[alreadyRevealed], true
}
