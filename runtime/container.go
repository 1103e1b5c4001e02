package runtime

import (
	"context"
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"datashare/infrastructure/transport"
	"datashare/runtime/workers"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

const DefaultInboxSize = 1024

type ContainerConfig struct {
	Member          domain.MemberID
	InboxSize       int
	RestartInterval time.Duration
	Log             *slog.Logger
}

// Container hosts the shared objects of one member and connects them to a group.
// Inbound frames are handled by a single dispatcher goroutine, so every object
// sees the events of one container in order.
type Container struct {
	log             *slog.Logger
	local           domain.MemberID
	registry        *Registry
	inbox           chan []byte
	restartInterval time.Duration

	mu      sync.RWMutex
	network contract.Network
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewContainer(cfg ContainerConfig) *Container {
	if cfg.Member == "" {
		cfg.Member = domain.NewMemberID()
	}
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = DefaultInboxSize
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	c := &Container{
		log:             cfg.Log.With("member", string(cfg.Member)),
		local:           cfg.Member,
		inbox:           make(chan []byte, cfg.InboxSize),
		restartInterval: cfg.RestartInterval,
	}
	c.registry = NewRegistry(c.log, c.ContextFor)
	c.registry.OnActivated(c.replicate)
	return c
}

func (c *Container) LocalMemberID() domain.MemberID { return c.local }

func (c *Container) Registry() *Registry { return c.registry }

// InboxUsage reports how many frames wait in the inbox and how many it can hold.
func (c *Container) InboxUsage() (length, capacity int) {
	return len(c.inbox), cap(c.inbox)
}

// ContextFor returns the GroupContext of the object with the given id.
func (c *Container) ContextFor(id domain.ObjectID) contract.GroupContext {
	return objectContext{c: c, id: id}
}

// Join attaches the container to network and starts dispatching its frames.
func (c *Container) Join(ctx context.Context, network contract.Network) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.network != nil {
		return fmt.Errorf("%w: %s already joined %s", errors.ErrIllegalState, c.local, c.network.GroupID())
	}
	if err := network.Attach(c.local, c.inbox); err != nil {
		return fmt.Errorf("join %s: %w", network.GroupID(), err)
	}
	c.network = network

	runCtx, cancel := context.WithCancel(ctx)
	supervisor := workers.NewSupervisor(c.log, c.restartInterval)
	supervisor.Add(NewDispatcher(c.log, c.inbox, c.handleFrame))
	done := make(chan struct{})
	c.cancel, c.done = cancel, done
	go func() {
		defer close(done)
		supervisor.Run(runCtx)
	}()
	c.log.Info("Joined group", "group", network.GroupID())
	return nil
}

// Leave tells every object that the local member departed, then detaches from
// the group and stops dispatching.
func (c *Container) Leave() error {
	c.mu.RLock()
	network := c.network
	c.mu.RUnlock()
	if network == nil {
		return fmt.Errorf("%w: %s", errors.ErrNotConnected, c.local)
	}

	c.registry.Broadcast(event.MemberDeparted{Member: c.local})
	err := network.Detach(c.local)

	c.mu.Lock()
	c.network = nil
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()
	cancel()
	<-done
	c.drain()

	c.log.Info("Left group", "group", network.GroupID())
	if err != nil {
		return fmt.Errorf("leave %s: %w", network.GroupID(), err)
	}
	return nil
}

// Close leaves the group if needed and disposes every remaining object.
func (c *Container) Close() {
	if c.joined() {
		if err := c.Leave(); err != nil {
			c.log.Warn("Failed to leave group", "error", err)
		}
	}
	for _, id := range c.registry.ListObjectIDs() {
		c.registry.Remove(id)
	}
}

// drain discards frames queued before the dispatcher stopped.
func (c *Container) drain() {
	for {
		select {
		case <-c.inbox:
		default:
			return
		}
	}
}

func (c *Container) joined() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.network != nil
}

func (c *Container) currentNetwork() (contract.Network, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.network == nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotConnected, c.local)
	}
	return c.network, nil
}

func (c *Container) handleFrame(frame []byte) {
	env, err := transport.Decode(frame)
	if err != nil {
		c.log.Warn("Dropping malformed frame", "error", err)
		return
	}
	switch env.Kind {
	case transport.KindConnected:
		c.registry.Broadcast(event.Connected{Member: env.From})
		for _, obj := range c.registry.Objects() {
			c.replicateTo(obj, env.From)
		}
	case transport.KindDisconnected:
		c.registry.Broadcast(event.Disconnected{Member: env.From})
		c.registry.Broadcast(event.MemberDeparted{Member: env.From})
	case transport.KindCreate:
		c.createReplica(env)
	case transport.KindDispose:
		c.registry.Remove(env.Object)
	default:
		payload, err := env.Payload()
		if err != nil {
			c.log.Warn("Dropping frame", "kind", env.Kind, "error", err)
			return
		}
		c.registry.Deliver(env.Object, event.Message{From: env.From, Payload: payload})
	}
}

func (c *Container) createReplica(env transport.Envelope) {
	if env.Descriptor == nil {
		c.log.Warn("Create request without descriptor", "object", env.Object, "from", env.From)
		return
	}
	if _, ok := c.registry.Get(env.Descriptor.ID); ok {
		return
	}
	if _, err := c.registry.Create(*env.Descriptor, nil); err != nil {
		c.log.Warn("Failed to create replica", "object", env.Descriptor.ID, "from", env.From, "error", err)
	}
}

// replicate asks every other member to build a replica of a freshly activated host object.
func (c *Container) replicate(obj contract.SharedObject) {
	network, err := c.currentNetwork()
	if err != nil {
		return
	}
	for _, member := range lo.Without(network.Members(), c.local) {
		c.replicateTo(obj, member)
	}
}

func (c *Container) replicateTo(obj contract.SharedObject, member domain.MemberID) {
	r, ok := obj.(contract.Replicable)
	if !ok || !r.IsPrimary() || member == c.local {
		return
	}
	d := r.ReplicaDescription(member)
	if d == nil {
		return
	}
	frame := transport.Encode(transport.Envelope{
		Kind:       transport.KindCreate,
		Object:     obj.ID(),
		From:       c.local,
		Descriptor: d,
	})
	if err := c.send(member, frame); err != nil {
		c.log.Warn("Failed to request replica", "object", obj.ID(), "target", member, "error", err)
	}
}

func (c *Container) send(to domain.MemberID, frame []byte) error {
	network, err := c.currentNetwork()
	if err != nil {
		return err
	}
	return network.Send(c.local, to, frame)
}

func (c *Container) broadcast(frame []byte) error {
	network, err := c.currentNetwork()
	if err != nil {
		return err
	}
	return network.Broadcast(c.local, frame)
}

// objectContext is the GroupContext handed to one object.
type objectContext struct {
	c  *Container
	id domain.ObjectID
}

func (o objectContext) LocalMemberID() domain.MemberID { return o.c.local }

func (o objectContext) GroupID() domain.GroupID {
	network, err := o.c.currentNetwork()
	if err != nil {
		return ""
	}
	return network.GroupID()
}

func (o objectContext) GroupMemberIDs() []domain.MemberID {
	network, err := o.c.currentNetwork()
	if err != nil {
		return []domain.MemberID{o.c.local}
	}
	return network.Members()
}

func (o objectContext) SendToOne(target domain.MemberID, payload event.Payload) error {
	return o.c.send(target, transport.Encode(transport.FromPayload(o.id, o.c.local, payload)))
}

func (o objectContext) SendToGroup(payload event.Payload) error {
	return o.c.broadcast(transport.Encode(transport.FromPayload(o.id, o.c.local, payload)))
}

// RequestSelfDispose removes the object locally, or asks member to remove its copy.
func (o objectContext) RequestSelfDispose(member domain.MemberID) {
	if member == o.c.local {
		o.c.registry.Remove(o.id)
		return
	}
	frame := transport.Encode(transport.Envelope{Kind: transport.KindDispose, Object: o.id, From: o.c.local})
	if err := o.c.send(member, frame); err != nil {
		o.c.log.Warn("Failed to request disposal", "object", o.id, "target", member, "error", err)
	}
}

func (o objectContext) Registry() contract.ObjectRegistry { return o.c.registry }
