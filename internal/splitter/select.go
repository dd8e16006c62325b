package splitter

// selectBest picks the highest-priority candidate. Ties go to the point
// closest to the middle of the sentence, then to the leftmost one.
func selectBest(candidates []SplitPoint, length int) (SplitPoint, bool) {
	if len(candidates) == 0 {
		return SplitPoint{}, false
	}
	mid := length / 2
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best, mid) {
			best = c
		}
	}
	return best, true
}

func better(a, b SplitPoint, mid int) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	da, db := distance(a.Position, mid), distance(b.Position, mid)
	if da != db {
		return da < db
	}
	return a.Position < b.Position
}

func distance(pos, mid int) int {
	if pos < mid {
		return mid - pos
	}
	return pos - mid
}
