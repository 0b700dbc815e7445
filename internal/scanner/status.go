package scanner

// Status is a snapshot of scan progress. It is emitted once for the
// directory being entered and once per child directory discovered.
type Status struct {
	CurrentDir string
	Found      int
}

// ProgressFunc receives progress snapshots during a scan. It may be
// called from the scan's goroutine and must not block for long.
type ProgressFunc func(Status)
