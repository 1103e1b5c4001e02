package runtime

import (
	"context"
	"log/slog"
)

// Dispatcher drains a container inbox and hands every frame to handle,
// one at a time, in arrival order.
type Dispatcher struct {
	log    *slog.Logger
	inbox  <-chan []byte
	handle func(frame []byte)
}

func NewDispatcher(log *slog.Logger, inbox <-chan []byte, handle func(frame []byte)) *Dispatcher {
	return &Dispatcher{log: log, inbox: inbox, handle: handle}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case frame := <-d.inbox:
			d.handle(frame)
		case <-ctx.Done():
			d.log.Debug("Context done, stopping dispatch")
			return nil
		}
	}
}
