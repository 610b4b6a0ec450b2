package searcher

import "sync/atomic"

// Stats counts work done by one search invocation. Atomic because root
// parallelism shares one collector across workers.
type Stats struct {
	Nodes       atomic.Int64
	Leaves      atomic.Int64
	TableHits   atomic.Int64
	TableStores atomic.Int64
}
