package domain

// Trace is one observable transition of a replicated object.
type Trace struct {
	Event  string
	Object ObjectID
	Member MemberID
	From   State
	To     State
}
