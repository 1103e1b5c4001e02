package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrIllegalState = fmt.Errorf("illegal state")
	ErrPauseFailed  = fmt.Errorf("failed to pause")
	ErrIO           = fmt.Errorf("send failed")
	ErrInit         = fmt.Errorf("initialization failed")
	ErrChannelSend  = fmt.Errorf("channel send failed")
	ErrSendAborted  = fmt.Errorf("send aborted, object disposed")

	ErrCreate            = fmt.Errorf("create shared object failed")
	ErrAdd               = fmt.Errorf("add shared object failed")
	ErrConnect           = fmt.Errorf("connect shared objects failed")
	ErrDisconnect        = fmt.Errorf("disconnect shared objects failed")
	ErrConnectorClosed   = fmt.Errorf("connector closed")
	ErrTransactionClosed = fmt.Errorf("transaction already resolved")

	ErrNotConnected   = fmt.Errorf("container not connected to a group")
	ErrUnknownMember  = fmt.Errorf("unknown group member")
	ErrMemberExists   = fmt.Errorf("member already attached")
	ErrBackpressure   = fmt.Errorf("member inbox full")
	ErrMalformedFrame = fmt.Errorf("malformed frame")
)

// InvariantError reports internal bookkeeping that can never be consistent again.
// It is raised with panic and must not be recovered as an ordinary worker failure.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

func Invariant(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
