package game

// DetectCycle returns the smallest cycle of length in [minSize, maxSize]
// that generates history from offset onward. The cycle must account for the
// entire examined window, which in particular means it repeats at least
// twice, so short histories report no cycle.
func DetectCycle(history []Action, minSize, maxSize, offset int) ([]Action, bool) {
	if offset < 0 || offset > len(history) {
		return nil, false
	}
	if minSize < 1 {
		minSize = 1
	}
	tail := history[offset:]
	limit := len(tail) / 2
	if maxSize < limit {
		limit = maxSize
	}
	for size := minSize; size <= limit; size++ {
		cycle := tail[:size]
		matched := true
		for i, move := range tail {
			if move != cycle[i%size] {
				matched = false
				break
			}
		}
		if matched {
			detected := make([]Action, size)
			copy(detected, cycle)
			return detected, true
		}
	}
	return nil, false
}

// ThueMorse returns the nth element (0 or 1) of the Thue-Morse sequence,
// which is the parity of set bits in n.
func ThueMorse(n int) int {
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits += int(v & 1)
	}
	return bits & 1
}
