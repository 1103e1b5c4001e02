// Package domain contains the core concepts of the shared object substrate.
// Identities, versions and lifecycle states live here.
// No runtime, transport or storage logic should be added here.
package domain

import "github.com/google/uuid"

// MemberID identifies a container taking part in a group.
type MemberID string

// ObjectID identifies a replicated object. It is stable for the object's lifetime
// and is the routing key used by the registry.
type ObjectID string

// GroupID identifies a communication group. The empty value means "no group".
type GroupID string

func NewObjectID() ObjectID {
	return ObjectID(uuid.NewString())
}

func NewMemberID() MemberID {
	return MemberID(uuid.NewString())
}
