// Package event holds the closed set of events a replicated object can receive.
// Adding a variant means extending the union here and the dispatch switches that match on it.
package event

import "datashare/domain"

// Event is delivered by the container runtime to a replicated object.
type Event interface {
	isEvent()
}

// Activated is raised once the object has been added to its container.
type Activated struct {
	ID domain.ObjectID
}

// Deactivated is raised when the object is removed from its container.
type Deactivated struct {
	ID domain.ObjectID
}

// MemberDeparted is raised when a member leaves the group.
type MemberDeparted struct {
	Member domain.MemberID
}

// Connected is raised when a member joins the group.
type Connected struct {
	Member domain.MemberID
}

// Disconnected is raised when a member's connection to the group is lost.
type Disconnected struct {
	Member domain.MemberID
}

// Message carries a payload sent by a peer's copy of the same object.
type Message struct {
	From    domain.MemberID
	Payload Payload
}

func (Activated) isEvent()      {}
func (Deactivated) isEvent()    {}
func (MemberDeparted) isEvent() {}
func (Connected) isEvent()      {}
func (Disconnected) isEvent()   {}
func (Message) isEvent()        {}
