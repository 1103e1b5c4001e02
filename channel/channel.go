// Package channel delivers opaque byte payloads to one member or to the whole group
// on top of a replicated object, and turns container connectivity into group
// join/depart notifications.
package channel

import (
	"context"
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"datashare/multicast"
	"fmt"
	"sync"
)

// Kind is the descriptor kind used to build channel replicas.
const Kind = "datashare.channel"

type Config struct {
	multicast.Config
	// Home is the member hosting the primary copy.
	Home    domain.MemberID
	Primary bool
	// Listener is required on the host. On a replica it is optional and receives
	// every channel notification after the replica has logged it.
	Listener contract.ChannelListener
	// Describe replaces the default replica description. Returning nil skips the target.
	Describe func(target domain.MemberID) *domain.Descriptor
}

type Channel struct {
	*multicast.Multicaster
	home     domain.MemberID
	primary  bool
	describe func(target domain.MemberID) *domain.Descriptor

	mu          sync.RWMutex
	listener    contract.ChannelListener
	initialized bool
}

// NewHost builds the primary copy of a channel.
func NewHost(cfg Config, listener contract.ChannelListener) *Channel {
	cfg.Primary = true
	cfg.Listener = listener
	return New(cfg)
}

func New(cfg Config) *Channel {
	return &Channel{
		Multicaster: multicast.New(cfg.Config),
		home:        cfg.Home,
		primary:     cfg.Primary,
		describe:    cfg.Describe,
		listener:    cfg.Listener,
	}
}

func (c *Channel) IsPrimary() bool { return c.primary }

// Initialize runs the replicated object initialization first, then wires the
// channel filter and raises the one-time initialize notification.
func (c *Channel) Initialize() error {
	if err := c.Multicaster.Initialize(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return nil
	}
	if !c.primary {
		c.listener = replicaListener{log: c.Logger(), next: c.listener}
	}
	if c.listener == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: channel %s has no listener", errors.ErrInit, c.ID())
	}
	c.initialized = true
	listener := c.listener
	c.mu.Unlock()

	c.AddProcessor(filter{c: c})
	listener.OnInitialize(c.ID(), c.Context().GroupMemberIDs())
	return nil
}

// SendMessage broadcasts payload to every other member of the group.
func (c *Channel) SendMessage(ctx context.Context, payload []byte) error {
	return c.SendTo(ctx, "", payload)
}

// SendTo sends payload to target, or to the group when target is empty.
// It blocks while the channel is paused anywhere in the group.
func (c *Channel) SendTo(ctx context.Context, target domain.MemberID, payload []byte) error {
	sent, err := c.SendData(ctx, target, payload)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrChannelSend, c.ID(), err)
	}
	if !sent {
		return fmt.Errorf("%w: %s", errors.ErrSendAborted, c.ID())
	}
	return nil
}

// ReplicaDescription describes the replica to build on target.
func (c *Channel) ReplicaDescription(target domain.MemberID) *domain.Descriptor {
	if c.describe != nil {
		return c.describe(target)
	}
	return &domain.Descriptor{
		Kind:       Kind,
		ID:         c.ID(),
		Home:       c.home,
		Properties: c.Properties(),
	}
}

func (c *Channel) currentListener() contract.ChannelListener {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listener
}

// filter translates container events into channel notifications.
// Data messages carrying a body are consumed here.
type filter struct {
	c *Channel
}

func (f filter) Accept(e event.Event) bool {
	switch evt := e.(type) {
	case event.Connected, event.Disconnected:
		return true
	case event.Message:
		_, ok := evt.Payload.(event.Data)
		return ok
	default:
		return false
	}
}

func (f filter) Process(e event.Event) event.Event {
	listener := f.c.currentListener()
	switch evt := e.(type) {
	case event.Connected:
		listener.OnGroupJoin(f.c.ID(), evt.Member)
	case event.Disconnected:
		listener.OnGroupDepart(f.c.ID(), evt.Member)
	case event.Message:
		d := evt.Payload.(event.Data)
		if d.Body == nil {
			return e
		}
		f.c.Observe(d)
		listener.OnMessage(f.c.ID(), evt.From, d.Body)
		return nil
	}
	return e
}
