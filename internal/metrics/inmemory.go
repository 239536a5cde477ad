package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups         uint64
	Logins          uint64
	LoginFailures   uint64
	CommentsCreated uint64
	CommentsDropped uint64
}

// InMemoryRecorder stores counters in memory for tests.
type InMemoryRecorder struct {
	signups         uint64
	logins          uint64
	loginFailures   uint64
	commentsCreated uint64
	commentsDropped uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Signups:         atomic.LoadUint64(&m.signups),
		Logins:          atomic.LoadUint64(&m.logins),
		LoginFailures:   atomic.LoadUint64(&m.loginFailures),
		CommentsCreated: atomic.LoadUint64(&m.commentsCreated),
		CommentsDropped: atomic.LoadUint64(&m.commentsDropped),
	}
}

func (m *InMemoryRecorder) IncSignup()         { atomic.AddUint64(&m.signups, 1) }
func (m *InMemoryRecorder) IncLogin()          { atomic.AddUint64(&m.logins, 1) }
func (m *InMemoryRecorder) IncLoginFailure()   { atomic.AddUint64(&m.loginFailures, 1) }
func (m *InMemoryRecorder) IncCommentCreated() { atomic.AddUint64(&m.commentsCreated, 1) }
func (m *InMemoryRecorder) IncCommentDropped() { atomic.AddUint64(&m.commentsDropped, 1) }
