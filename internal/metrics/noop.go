package metrics

// NoopRecorder discards all events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (*NoopRecorder) IncSignup()         {}
func (*NoopRecorder) IncLogin()          {}
func (*NoopRecorder) IncLoginFailure()   {}
func (*NoopRecorder) IncCommentCreated() {}
func (*NoopRecorder) IncCommentDropped() {}
