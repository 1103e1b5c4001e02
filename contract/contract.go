//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"datashare/domain"
	"datashare/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// GroupContext is everything a replicated object knows about the group it lives in.
// Sends are asynchronous and best-effort, ordered only per sender and destination.
// Implementations must never call back into the object from these methods.
type GroupContext interface {
	LocalMemberID() domain.MemberID
	// GroupID returns the empty GroupID when the container is not part of a group.
	GroupID() domain.GroupID
	GroupMemberIDs() []domain.MemberID
	SendToOne(target domain.MemberID, payload event.Payload) error
	SendToGroup(payload event.Payload) error
	RequestSelfDispose(member domain.MemberID)
	Registry() ObjectRegistry
}

// SharedObject is an object hosted by a container and addressed by its ObjectID.
type SharedObject interface {
	ID() domain.ObjectID
	// Initialize must run before any Activated event is handled.
	Initialize() error
	HandleEvent(e event.Event)
}

// Replicable is implemented by host objects that want copies on remote containers.
type Replicable interface {
	IsPrimary() bool
	// ReplicaDescription returns nil to skip replica creation on target.
	ReplicaDescription(target domain.MemberID) *domain.Descriptor
}

// Factory builds a SharedObject from a descriptor.
type Factory func(d domain.Descriptor, gc GroupContext) (SharedObject, error)

// Transaction makes registry additions provisional until it resolves.
type Transaction interface {
	Enlist(onCommit, onAbort func()) error
}

// Connector is a directed wiring between objects of the same container.
type Connector interface {
	ID() string
	From() domain.ObjectID
	To() []domain.ObjectID
	Enqueue(e event.Event) error
}

type ObjectRegistry interface {
	ListObjectIDs() []domain.ObjectID
	Create(d domain.Descriptor, tx Transaction) (domain.ObjectID, error)
	Add(id domain.ObjectID, obj SharedObject, props map[string]string, tx Transaction) (domain.ObjectID, error)
	Get(id domain.ObjectID) (SharedObject, bool)
	Remove(id domain.ObjectID) (SharedObject, bool)
	Connect(from domain.ObjectID, to []domain.ObjectID) (Connector, error)
	Disconnect(c Connector) error
	ListConnectors(from domain.ObjectID) []Connector
}

// ChannelListener receives the notifications of a channel.
// Callbacks run on the container's dispatch goroutine and must not block.
type ChannelListener interface {
	OnInitialize(channelID domain.ObjectID, members []domain.MemberID)
	OnGroupJoin(channelID domain.ObjectID, member domain.MemberID)
	OnGroupDepart(channelID domain.ObjectID, member domain.MemberID)
	OnMessage(channelID domain.ObjectID, from domain.MemberID, data []byte)
}

// Tracer observes object transitions.
type Tracer interface {
	Trace(t domain.Trace)
}

// Network is the transport a container joins. Frames are opaque encoded envelopes.
type Network interface {
	GroupID() domain.GroupID
	Members() []domain.MemberID
	Attach(member domain.MemberID, inbox chan<- []byte) error
	Detach(member domain.MemberID) error
	Send(from, to domain.MemberID, frame []byte) error
	Broadcast(from domain.MemberID, frame []byte) error
}
