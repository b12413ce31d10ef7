package cluster

import "golang.org/x/sync/errgroup"

// Fork invokes body(coreID) for every coreID in [0, nPE) on fresh goroutines
// and blocks until all invocations return. It is the pool-less counterpart of
// Pool.Run for callers that fork rarely and do not want a resident pool.
func Fork(nPE int, body func(coreID int)) {
	if nPE <= 0 {
		return
	}
	if nPE == 1 {
		body(0)
		return
	}

	var g errgroup.Group
	for coreID := range nPE {
		g.Go(func() error {
			body(coreID)
			return nil
		})
	}
	// Bodies never fail; the join is the point.
	_ = g.Wait()
}
