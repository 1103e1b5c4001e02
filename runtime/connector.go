package runtime

import (
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Connector forwards events from one object to a fixed set of receivers hosted
// by the same registry. It is owned by the registry that created it.
type Connector struct {
	id      string
	from    domain.ObjectID
	to      []domain.ObjectID
	deliver func(id domain.ObjectID, e event.Event) bool
	closed  atomic.Bool
}

func newConnector(from domain.ObjectID, to []domain.ObjectID, deliver func(domain.ObjectID, event.Event) bool) *Connector {
	return &Connector{
		id:      uuid.NewString(),
		from:    from,
		to:      append([]domain.ObjectID(nil), to...),
		deliver: deliver,
	}
}

func (c *Connector) ID() string { return c.id }

func (c *Connector) From() domain.ObjectID { return c.from }

func (c *Connector) To() []domain.ObjectID {
	return append([]domain.ObjectID(nil), c.to...)
}

// Enqueue hands e to every receiver still registered. Receivers removed since
// the connection was made are skipped.
func (c *Connector) Enqueue(e event.Event) error {
	if c.closed.Load() {
		return fmt.Errorf("%w: %s", errors.ErrConnectorClosed, c.id)
	}
	for _, id := range c.to {
		c.deliver(id, e)
	}
	return nil
}

func (c *Connector) close() {
	c.closed.Store(true)
}
