package runtime

import (
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"datashare/mocks"
	stderrors "errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingObject remembers every event it handled.
type recordingObject struct {
	id      domain.ObjectID
	initErr error
	onEvent func(e event.Event)

	mu     sync.Mutex
	events []event.Event
}

func (o *recordingObject) ID() domain.ObjectID { return o.id }

func (o *recordingObject) Initialize() error { return o.initErr }

func (o *recordingObject) HandleEvent(e event.Event) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
	if o.onEvent != nil {
		o.onEvent(e)
	}
}

func (o *recordingObject) Events() []event.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]event.Event(nil), o.events...)
}

func newTestRegistry() *Registry {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRegistry(log, func(domain.ObjectID) contract.GroupContext { return nil })
}

func TestRegistry_Add_Activates_Immediately_Without_Transaction(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	obj := &recordingObject{id: "o1"}

	// When an object is added outside of a transaction
	id, err := registry.Add("o1", obj, map[string]string{"k": "v"}, nil)

	// Then it is visible and activated
	req.NoError(err)
	req.Equal(domain.ObjectID("o1"), id)
	req.Equal([]domain.ObjectID{"o1"}, registry.ListObjectIDs())
	req.Equal([]event.Event{event.Activated{ID: "o1"}}, obj.Events())
	props, ok := registry.Properties("o1")
	req.True(ok)
	req.Equal(map[string]string{"k": "v"}, props)
}

func TestRegistry_Add_Rejects_Duplicates_And_Mismatches(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	_, err := registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.NoError(err)

	_, err = registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.ErrorIs(err, errors.ErrAdd)

	_, err = registry.Add("o2", &recordingObject{id: "other"}, nil, nil)
	req.ErrorIs(err, errors.ErrAdd)

	_, err = registry.Add("", nil, nil, nil)
	req.ErrorIs(err, errors.ErrAdd)
}

func TestRegistry_Add_Initialize_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := newTestRegistry()
	obj := mocks.NewMockSharedObject(ctrl)

	// Given an object failing to initialize, which must never be activated
	obj.EXPECT().ID().Return(domain.ObjectID("o1")).AnyTimes()
	obj.EXPECT().Initialize().Return(stderrors.New("boom"))
	obj.EXPECT().HandleEvent(gomock.Any()).Times(0)

	// When adding it
	_, err := registry.Add("o1", obj, nil, nil)

	// Then the add fails and the id stays free
	req.ErrorIs(err, errors.ErrAdd)
	req.Empty(registry.ListObjectIDs())
	_, err = registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.NoError(err)
}

func TestRegistry_Add_Waits_For_Commit(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	tx := NewTransaction()
	obj := &recordingObject{id: "o1"}

	// When the object is added inside an open transaction
	_, err := registry.Add("o1", obj, nil, tx)
	req.NoError(err)

	// Then it is neither visible nor activated
	req.Empty(registry.ListObjectIDs())
	req.Empty(obj.Events())
	_, err = registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.ErrorIs(err, errors.ErrAdd)

	// When the transaction commits
	req.NoError(tx.Commit())

	// Then the object is visible and activated
	req.Equal([]domain.ObjectID{"o1"}, registry.ListObjectIDs())
	req.Equal([]event.Event{event.Activated{ID: "o1"}}, obj.Events())
}

func TestRegistry_Add_Aborted_Leaves_No_Trace(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	tx := NewTransaction()
	obj := &recordingObject{id: "o1"}

	_, err := registry.Add("o1", obj, nil, tx)
	req.NoError(err)

	// When the transaction aborts
	req.NoError(tx.Abort())

	// Then the object never became visible nor activated, and its id is free
	req.Empty(registry.ListObjectIDs())
	req.Empty(obj.Events())
	_, err = registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.NoError(err)
}

func TestRegistry_Add_To_Resolved_Transaction(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	tx := NewTransaction()
	req.NoError(tx.Commit())

	_, err := registry.Add("o1", &recordingObject{id: "o1"}, nil, tx)

	req.ErrorIs(err, errors.ErrAdd)
	req.ErrorIs(err, errors.ErrTransactionClosed)
	req.Empty(registry.ListObjectIDs())
}

func TestRegistry_Create(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	var built domain.Descriptor
	registry.RegisterFactory("kind", func(d domain.Descriptor, _ contract.GroupContext) (contract.SharedObject, error) {
		built = d
		return &recordingObject{id: d.ID}, nil
	})
	d := domain.Descriptor{Kind: "kind", ID: "o1", Home: "a", Properties: map[string]string{"k": "v"}}

	// When creating from a descriptor
	id, err := registry.Create(d, nil)

	// Then the factory builds it and it is active
	req.NoError(err)
	req.Equal(domain.ObjectID("o1"), id)
	req.Equal(d, built)
	_, ok := registry.Get("o1")
	req.True(ok)
}

func TestRegistry_Create_Failures(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	registry.RegisterFactory("broken", func(domain.Descriptor, contract.GroupContext) (contract.SharedObject, error) {
		return nil, stderrors.New("cannot build")
	})

	// Invalid descriptor
	_, err := registry.Create(domain.Descriptor{Kind: "broken"}, nil)
	req.ErrorIs(err, errors.ErrCreate)

	// Unknown kind
	_, err = registry.Create(domain.Descriptor{Kind: "unknown", ID: "o1", Home: "a"}, nil)
	req.ErrorIs(err, errors.ErrCreate)

	// Factory failure
	_, err = registry.Create(domain.Descriptor{Kind: "broken", ID: "o1", Home: "a"}, nil)
	req.ErrorIs(err, errors.ErrCreate)
	req.Empty(registry.ListObjectIDs())
}

func TestRegistry_Remove_Deactivates(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	obj := &recordingObject{id: "o1"}
	_, err := registry.Add("o1", obj, nil, nil)
	req.NoError(err)

	// When the object is removed
	removed, ok := registry.Remove("o1")

	// Then it is gone and deactivated
	req.True(ok)
	req.Equal(contract.SharedObject(obj), removed)
	req.Empty(registry.ListObjectIDs())
	req.Equal([]event.Event{event.Activated{ID: "o1"}, event.Deactivated{ID: "o1"}}, obj.Events())

	// And removing it again is a no-op
	_, ok = registry.Remove("o1")
	req.False(ok)
}

func TestRegistry_OnActivated_Skips_Self_Disposed_Objects(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	var hooked []domain.ObjectID
	registry.OnActivated(func(obj contract.SharedObject) { hooked = append(hooked, obj.ID()) })

	// Given an object removing itself while handling its activation
	orphan := &recordingObject{id: "orphan"}
	orphan.onEvent = func(e event.Event) {
		if _, ok := e.(event.Activated); ok {
			registry.Remove("orphan")
		}
	}
	_, err := registry.Add("orphan", orphan, nil, nil)
	req.NoError(err)
	_, err = registry.Add("o1", &recordingObject{id: "o1"}, nil, nil)
	req.NoError(err)

	// Then only the surviving object reaches the hook
	req.Equal([]domain.ObjectID{"o1"}, hooked)
	req.Equal([]event.Event{event.Activated{ID: "orphan"}, event.Deactivated{ID: "orphan"}}, orphan.Events())
}

func TestRegistry_Connect_And_Enqueue(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	from := &recordingObject{id: "from"}
	to1 := &recordingObject{id: "to1"}
	to2 := &recordingObject{id: "to2"}
	for _, obj := range []*recordingObject{from, to1, to2} {
		_, err := registry.Add(obj.id, obj, nil, nil)
		req.NoError(err)
	}

	// When the sender is wired to both receivers
	connector, err := registry.Connect("from", []domain.ObjectID{"to1", "to2", "to1"})
	req.NoError(err)
	req.Equal([]domain.ObjectID{"to1", "to2"}, connector.To())
	req.Len(registry.ListConnectors("from"), 1)

	// Then an enqueued event reaches every receiver once
	msg := event.Message{From: "a", Payload: event.Resume{}}
	req.NoError(connector.Enqueue(msg))
	req.Equal(msg, to1.Events()[1])
	req.Equal(msg, to2.Events()[1])
	req.Len(to1.Events(), 2)
	req.Len(from.Events(), 1)
}

func TestRegistry_Connect_Failures(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	_, err := registry.Add("from", &recordingObject{id: "from"}, nil, nil)
	req.NoError(err)

	_, err = registry.Connect("from", nil)
	req.ErrorIs(err, errors.ErrConnect)

	_, err = registry.Connect("missing", []domain.ObjectID{"from"})
	req.ErrorIs(err, errors.ErrConnect)

	_, err = registry.Connect("from", []domain.ObjectID{"missing"})
	req.ErrorIs(err, errors.ErrConnect)
}

func TestRegistry_Disconnect(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	for _, id := range []domain.ObjectID{"from", "to"} {
		_, err := registry.Add(id, &recordingObject{id: id}, nil, nil)
		req.NoError(err)
	}
	connector, err := registry.Connect("from", []domain.ObjectID{"to"})
	req.NoError(err)

	// When disconnecting
	req.NoError(registry.Disconnect(connector))

	// Then the connector is closed and forgotten
	req.Empty(registry.ListConnectors("from"))
	req.ErrorIs(connector.Enqueue(event.Message{From: "a", Payload: event.Pause{}}), errors.ErrConnectorClosed)
	req.ErrorIs(registry.Disconnect(connector), errors.ErrDisconnect)
	req.ErrorIs(registry.Disconnect(nil), errors.ErrDisconnect)
}

func TestRegistry_Remove_Closes_Outgoing_Connectors(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	to := &recordingObject{id: "to"}
	_, err := registry.Add("from", &recordingObject{id: "from"}, nil, nil)
	req.NoError(err)
	_, err = registry.Add("to", to, nil, nil)
	req.NoError(err)
	connector, err := registry.Connect("from", []domain.ObjectID{"to"})
	req.NoError(err)

	registry.Remove("from")

	req.ErrorIs(connector.Enqueue(event.Message{From: "a", Payload: event.Pause{}}), errors.ErrConnectorClosed)
	req.Len(to.Events(), 1)
}

func TestRegistry_Deliver_Drops_Unknown(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	obj := &recordingObject{id: "o1"}
	_, err := registry.Add("o1", obj, nil, nil)
	req.NoError(err)

	req.False(registry.Deliver("unknown", event.Message{From: "a", Payload: event.Pause{}}))
	req.True(registry.Deliver("o1", event.Message{From: "a", Payload: event.Pause{}}))
	req.Len(obj.Events(), 2)

	registry.Broadcast(event.Connected{Member: "b"})
	req.Equal(event.Connected{Member: "b"}, obj.Events()[2])
	req.Len(registry.Objects(), 1)
}
