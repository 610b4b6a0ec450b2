package searcher

import "sync"

type flag uint8

const (
	flagExact flag = iota
	flagLower
	flagUpper
)

type entry struct {
	depth int
	score int
	flag  flag
}

// table is a bounded transposition table keyed by position fingerprint.
// It is a pure memoization layer: a cached entry is usable only when it
// was searched at least as deep as the current request, so search results
// are identical with the table present or absent.
//
// One table lives for one FindMove invocation; the lock only matters when
// root parallelism shares it across workers, and it guarantees a probe
// never observes a partially written entry.
type table struct {
	mu       sync.RWMutex
	entries  map[uint64]entry
	capacity int
}

func newTable(capacity int) *table {
	if capacity < 1 {
		capacity = 1
	}
	return &table{
		entries:  make(map[uint64]entry, min(capacity, 1<<16)),
		capacity: capacity,
	}
}

func (t *table) probe(key uint64, depth int) (entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[key]
	if !ok || e.depth < depth {
		return entry{}, false
	}
	return e, true
}

func (t *table) store(key uint64, depth, score int, f flag) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.entries[key]; ok {
		// Depth-preferred replacement; exact beats bounds at equal depth.
		if old.depth > depth {
			return
		}
		if old.depth == depth && old.flag == flagExact && f != flagExact {
			return
		}
	} else if len(t.entries) >= t.capacity {
		// Capacity overflow drops the whole generation. Eviction is a
		// performance choice, not a correctness one.
		t.entries = make(map[uint64]entry, min(t.capacity, 1<<16))
	}
	t.entries[key] = entry{depth: depth, score: score, flag: f}
}

func (t *table) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
