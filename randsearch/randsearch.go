package randsearch

import "fmt"

// FindAvailable returns the index of one available item. Every available item
// has an equal chance of being picked.
//
// The pool starts as every index; on each step one pool slot is drawn
// uniformly, returned if available, otherwise removed (swap-with-last).
// Returns ErrNoneAvailable when the pool empties.
func FindAvailable(available []bool, opts ...Option) (int, error) {
	o := buildOptions(opts)
	return find(available, o)
}

func find(available []bool, o Options) (int, error) {
	pool := make([]int, len(available))
	for i := range pool {
		pool[i] = i
	}
	for len(pool) > 0 {
		slot := o.Rand.Intn(len(pool))
		idx := pool[slot]
		o.OnProbe(idx, available[idx])
		if available[idx] {
			return idx, nil
		}
		last := len(pool) - 1
		pool[slot] = pool[last]
		pool = pool[:last]
	}
	return -1, ErrNoneAvailable
}

// Distribution runs FindAvailable rounds times and returns the pick count of
// every index. Rounds that find nothing are not counted, so an all-false
// input yields all zeros and no error.
func Distribution(available []bool, rounds int, opts ...Option) ([]int, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRounds, rounds)
	}
	o := buildOptions(opts)
	counts := make([]int, len(available))
	for i := 0; i < rounds; i++ {
		idx, err := find(available, o)
		if err != nil {
			continue
		}
		counts[idx]++
	}
	return counts, nil
}
