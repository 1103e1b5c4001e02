package runtime

import (
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// ContextProvider returns the GroupContext handed to the object with the given id.
type ContextProvider func(id domain.ObjectID) contract.GroupContext

type entry struct {
	obj   contract.SharedObject
	props map[string]string
}

// Registry is the table of active shared objects of one container.
// It also owns the connectors wiring those objects together.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	validate    *validator.Validate
	contexts    ContextProvider
	factories   map[string]contract.Factory
	objects     map[domain.ObjectID]entry
	pending     map[domain.ObjectID]struct{}
	connectors  map[domain.ObjectID][]*Connector
	onActivated func(obj contract.SharedObject)
}

func NewRegistry(log *slog.Logger, contexts ContextProvider) *Registry {
	return &Registry{
		log:        log,
		validate:   validator.New(),
		contexts:   contexts,
		factories:  make(map[string]contract.Factory),
		objects:    make(map[domain.ObjectID]entry),
		pending:    make(map[domain.ObjectID]struct{}),
		connectors: make(map[domain.ObjectID][]*Connector),
	}
}

// RegisterFactory makes descriptors of the given kind creatable.
func (r *Registry) RegisterFactory(kind string, f contract.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

// OnActivated installs a hook called after an object has been activated and is still present.
func (r *Registry) OnActivated(fn func(obj contract.SharedObject)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onActivated = fn
}

// ListObjectIDs returns the ids of the visible objects, sorted.
func (r *Registry) ListObjectIDs() []domain.ObjectID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := lo.Keys(r.objects)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Create builds an object from its descriptor and adds it.
func (r *Registry) Create(d domain.Descriptor, tx contract.Transaction) (domain.ObjectID, error) {
	if err := r.validate.Struct(d); err != nil {
		return "", fmt.Errorf("%w: invalid descriptor: %w", errors.ErrCreate, err)
	}
	r.mu.RLock()
	factory, ok := r.factories[d.Kind]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: no factory for kind %q", errors.ErrCreate, d.Kind)
	}

	obj, err := factory(d.Clone(), r.contexts(d.ID))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errors.ErrCreate, d.ID, err)
	}
	id, err := r.Add(d.ID, obj, d.Properties, tx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrCreate, err)
	}
	return id, nil
}

// Add initializes obj and makes it visible, immediately or when tx commits.
// An aborted transaction leaves no trace of the object.
func (r *Registry) Add(id domain.ObjectID, obj contract.SharedObject, props map[string]string, tx contract.Transaction) (domain.ObjectID, error) {
	if id == "" || obj == nil {
		return "", fmt.Errorf("%w: missing id or object", errors.ErrAdd)
	}
	if obj.ID() != id {
		return "", fmt.Errorf("%w: object id %s does not match %s", errors.ErrAdd, obj.ID(), id)
	}

	r.mu.Lock()
	_, exists := r.objects[id]
	_, reserved := r.pending[id]
	if exists || reserved {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s already exists", errors.ErrAdd, id)
	}
	r.pending[id] = struct{}{}
	r.mu.Unlock()

	if err := obj.Initialize(); err != nil {
		r.release(id)
		return "", fmt.Errorf("%w: %s: %w", errors.ErrAdd, id, err)
	}

	props = lo.Assign(map[string]string{}, props)
	if tx == nil {
		r.activate(id, obj, props)
		return id, nil
	}
	err := tx.Enlist(
		func() { r.activate(id, obj, props) },
		func() { r.release(id) },
	)
	if err != nil {
		r.release(id)
		return "", fmt.Errorf("%w: %s: %w", errors.ErrAdd, id, err)
	}
	return id, nil
}

func (r *Registry) activate(id domain.ObjectID, obj contract.SharedObject, props map[string]string) {
	r.mu.Lock()
	delete(r.pending, id)
	r.objects[id] = entry{obj: obj, props: props}
	hook := r.onActivated
	r.mu.Unlock()

	r.log.Debug("Activating shared object", "object", id)
	obj.HandleEvent(event.Activated{ID: id})

	// The object may have disposed itself while handling activation
	if current, ok := r.Get(id); ok && current == obj && hook != nil {
		hook(obj)
	}
}

func (r *Registry) release(id domain.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, id)
}

func (r *Registry) Get(id domain.ObjectID) (contract.SharedObject, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.objects[id]
	return e.obj, ok
}

// Properties returns a copy of the properties the object was added with.
func (r *Registry) Properties(id domain.ObjectID) (map[string]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.objects[id]
	if !ok {
		return nil, false
	}
	return lo.Assign(map[string]string{}, e.props), true
}

// Remove deactivates and forgets the object. Connectors leaving it are closed.
func (r *Registry) Remove(id domain.ObjectID) (contract.SharedObject, bool) {
	r.mu.Lock()
	e, ok := r.objects[id]
	if !ok {
		r.mu.Unlock()
		return nil, false
	}
	delete(r.objects, id)
	connectors := r.connectors[id]
	delete(r.connectors, id)
	r.mu.Unlock()

	for _, c := range connectors {
		c.close()
	}
	r.log.Debug("Deactivating shared object", "object", id)
	e.obj.HandleEvent(event.Deactivated{ID: id})
	return e.obj, true
}

// Connect wires from to every object of to. All of them must be present.
func (r *Registry) Connect(from domain.ObjectID, to []domain.ObjectID) (contract.Connector, error) {
	if len(to) == 0 {
		return nil, fmt.Errorf("%w: %s has no receivers", errors.ErrConnect, from)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.objects[from]; !ok {
		return nil, fmt.Errorf("%w: sender %s not found", errors.ErrConnect, from)
	}
	if missing := lo.Filter(to, func(id domain.ObjectID, _ int) bool {
		_, ok := r.objects[id]
		return !ok
	}); len(missing) > 0 {
		return nil, fmt.Errorf("%w: receivers %v not found", errors.ErrConnect, missing)
	}

	c := newConnector(from, lo.Uniq(to), r.Deliver)
	r.connectors[from] = append(r.connectors[from], c)
	return c, nil
}

func (r *Registry) Disconnect(c contract.Connector) error {
	if c == nil {
		return fmt.Errorf("%w: nil connector", errors.ErrDisconnect)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.connectors[c.From()]
	_, index, found := lo.FindIndexOf(list, func(item *Connector) bool { return item.ID() == c.ID() })
	if !found {
		return fmt.Errorf("%w: connector %s not found", errors.ErrDisconnect, c.ID())
	}
	list[index].close()
	r.connectors[c.From()] = append(list[:index], list[index+1:]...)
	if len(r.connectors[c.From()]) == 0 {
		delete(r.connectors, c.From())
	}
	return nil
}

func (r *Registry) ListConnectors(from domain.ObjectID) []contract.Connector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.connectors[from], func(c *Connector, _ int) contract.Connector { return c })
}

// Deliver hands e to the addressed object. Unknown ids are dropped.
func (r *Registry) Deliver(id domain.ObjectID, e event.Event) bool {
	obj, ok := r.Get(id)
	if !ok {
		r.log.Debug("Dropping event for unknown shared object", "object", id, "event", fmt.Sprintf("%T", e))
		return false
	}
	obj.HandleEvent(e)
	return true
}

// Broadcast hands e to every visible object.
func (r *Registry) Broadcast(e event.Event) {
	r.mu.RLock()
	objects := lo.MapToSlice(r.objects, func(_ domain.ObjectID, en entry) contract.SharedObject { return en.obj })
	r.mu.RUnlock()
	for _, obj := range objects {
		obj.HandleEvent(e)
	}
}

// Objects returns every visible object.
func (r *Registry) Objects() []contract.SharedObject {
	ids := r.ListObjectIDs()
	return lo.FilterMap(ids, func(id domain.ObjectID, _ int) (contract.SharedObject, bool) {
		return r.Get(id)
	})
}

var _ contract.ObjectRegistry = (*Registry)(nil)
