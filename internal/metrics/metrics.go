// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder receives counter events from the service layer.
type Recorder interface {
	IncSignup()
	IncLogin()
	IncLoginFailure()
	IncCommentCreated()
	IncCommentDropped()
}
