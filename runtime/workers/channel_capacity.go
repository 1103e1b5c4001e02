package workers

import (
	"context"
	"log/slog"
	"time"
)

// NamedChannel exposes the fill level of a buffered channel without handing it out.
type NamedChannel struct {
	Name  string
	Usage func() (length, capacity int)
}

// ChannelCapacity is one sample of a NamedChannel.
type ChannelCapacity struct {
	Name     string
	Capacity int
	Length   int
	At       time.Time
}

// Saturated reports whether the channel is at least 80% full.
func (c ChannelCapacity) Saturated() bool {
	return c.Capacity > 0 && c.Length*5 >= c.Capacity*4
}

// ChannelCapacityWorker periodically samples channel fill levels.
// Reading len and cap is non-blocking, so sampling never slows the dispatchers.
// A sample is dropped when nobody reads them fast enough.
type ChannelCapacityWorker struct {
	log      *slog.Logger
	channels []NamedChannel
	samples  chan<- ChannelCapacity
	interval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger,
	channels []NamedChannel, samples chan<- ChannelCapacity,
	interval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:      log,
		channels: channels,
		samples:  samples,
		interval: interval,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping capacity sampling")
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				length, capacity := nc.Usage()
				sample := ChannelCapacity{Name: nc.Name, Capacity: capacity, Length: length, At: time.Now().UTC()}
				if sample.Saturated() {
					w.log.Warn("Channel close to saturation", "name", nc.Name, "length", length, "capacity", capacity)
				}
				select {
				case <-ctx.Done():
					w.log.Debug("Context done, stopping capacity sampling")
					return nil
				case w.samples <- sample:
				default:
					w.log.Debug("Capacity sample lost", "name", nc.Name)
				}
			}
		}
	}
}
