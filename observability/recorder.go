// Package observability collects the transitions of replicated objects.
// It is handed to objects by their creator; there is no process-wide instance.
package observability

import (
	"datashare/domain"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
)

// RecentTransition is one entry of the bounded transition history.
type RecentTransition struct {
	Event  string `json:"event"`
	Object string `json:"object"`
	Member string `json:"member"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Stats aggregates everything recorded so far.
type Stats struct {
	Total  uint64             `json:"total"`
	Events map[string]uint64  `json:"events"`
	Recent []RecentTransition `json:"recent"`
}

const maxRecent = 20

// Recorder logs every transition and keeps counters per event name.
type Recorder struct {
	log    *slog.Logger
	total  uint64
	mu     sync.RWMutex
	counts map[string]uint64
	recent []RecentTransition
}

func NewRecorder(log *slog.Logger) *Recorder {
	return &Recorder{log: log, counts: make(map[string]uint64)}
}

func (r *Recorder) Trace(t domain.Trace) {
	atomic.AddUint64(&r.total, 1)
	r.log.Debug("Shared object transition",
		"event", t.Event,
		"object", t.Object,
		"member", t.Member,
		"from", t.From.String(),
		"to", t.To.String())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[t.Event]++

	// Newest first, only the last ones are kept
	r.recent = append([]RecentTransition{{
		Event:  t.Event,
		Object: string(t.Object),
		Member: string(t.Member),
		From:   t.From.String(),
		To:     t.To.String(),
	}}, r.recent...)
	if len(r.recent) > maxRecent {
		r.recent = r.recent[:maxRecent]
	}
}

// Count returns how many times event was traced.
func (r *Recorder) Count(event string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[event]
}

func (r *Recorder) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make(map[string]uint64, len(r.counts))
	for k, v := range r.counts {
		events[k] = v
	}
	return Stats{
		Total:  atomic.LoadUint64(&r.total),
		Events: events,
		Recent: append([]RecentTransition(nil), r.recent...),
	}
}

// EventNames lists the traced event names in alphabetical order.
func (r *Recorder) EventNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.counts))
	for k := range r.counts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NopTracer drops every transition.
type NopTracer struct{}

func (NopTracer) Trace(domain.Trace) {}
