// Package multicast implements the replicated object state machine.
//
// A Multicaster is one member's copy of a replicated object. It moves from NEW to READY
// when activated inside a group, to DISPOSED when deactivated, and carries a paused
// overlay driven by the pause/resume barrier. Data messages are stamped with a Version
// and the most recently received Version wins locally.
package multicast

import (
	"context"
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"datashare/observability"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

// DefaultPauseTimeout bounds the wait for pause acknowledgements.
const DefaultPauseTimeout = 1000 * time.Millisecond

// Receiver is called once per inbound data message, after the cached Version
// has been overwritten with the message's Version.
type Receiver interface {
	ReceiveMessage(from domain.MemberID, body []byte)
}

type ReceiverFunc func(from domain.MemberID, body []byte)

func (f ReceiverFunc) ReceiveMessage(from domain.MemberID, body []byte) { f(from, body) }

// EventProcessor filters events before the object's own dispatch.
// Process returns nil to consume the event.
type EventProcessor interface {
	Accept(e event.Event) bool
	Process(e event.Event) event.Event
}

type Config struct {
	ID         domain.ObjectID
	Context    contract.GroupContext
	Properties map[string]string
	// Version overrides the initial version, otherwise taken from the "version"
	// property or started at sequence 0.
	Version      *domain.Version
	PauseTimeout time.Duration
	Receiver     Receiver
	Tracer       contract.Tracer
	Log          *slog.Logger
}

// Snapshot is a consistent copy of the object's bookkeeping.
type Snapshot struct {
	ID      domain.ObjectID
	Local   domain.MemberID
	Group   domain.GroupID
	State   domain.State
	Version domain.Version
	Pauses  []domain.MemberID
	Quorum  []domain.MemberID
}

type waitTimeout struct{}

func (waitTimeout) Error() string { return "wait timed out" }

type Multicaster struct {
	id       domain.ObjectID
	gc       contract.GroupContext
	props    map[string]string
	initial  *domain.Version
	timeout  time.Duration
	receiver Receiver
	tracer   contract.Tracer
	log      *slog.Logger

	mu          sync.Mutex
	changed     chan struct{}
	initialized bool
	state       domain.State
	local       domain.MemberID
	group       domain.GroupID
	version     domain.Version
	lastSent    uint64
	pauses      map[domain.MemberID]struct{}
	quorum      map[domain.MemberID]struct{}
	pausing     bool
	processors  []EventProcessor
}

func New(cfg Config) *Multicaster {
	m := &Multicaster{
		id:       cfg.ID,
		gc:       cfg.Context,
		props:    lo.Assign(map[string]string{}, cfg.Properties),
		initial:  cfg.Version,
		timeout:  cfg.PauseTimeout,
		receiver: cfg.Receiver,
		tracer:   cfg.Tracer,
		log:      cfg.Log,
		changed:  make(chan struct{}),
		state:    domain.StateNew,
		pauses:   make(map[domain.MemberID]struct{}),
	}
	if m.timeout <= 0 {
		m.timeout = DefaultPauseTimeout
	}
	if m.receiver == nil {
		m.receiver = ReceiverFunc(func(domain.MemberID, []byte) {})
	}
	if m.tracer == nil {
		m.tracer = observability.NopTracer{}
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	m.log = m.log.With("object", string(m.id))
	return m
}

func (m *Multicaster) ID() domain.ObjectID { return m.id }

func (m *Multicaster) Context() contract.GroupContext { return m.gc }

// Properties returns a copy of the configuration properties.
func (m *Multicaster) Properties() map[string]string {
	return lo.Assign(map[string]string{}, m.props)
}

func (m *Multicaster) Logger() *slog.Logger { return m.log }

// Initialize records the initial Version. Calling it again is a no-op so that
// specialisations can run it first from their own Initialize.
func (m *Multicaster) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	switch raw, ok := m.props[domain.PropertyVersion]; {
	case m.initial != nil:
		m.version = *m.initial
	case ok:
		v, err := domain.ParseVersion(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errors.ErrInit, m.id, err)
		}
		m.version = v
	default:
		m.version = domain.InitialVersion(m.id)
	}
	m.initialized = true
	return nil
}

// AddProcessor appends p to the processors run before dispatch.
func (m *Multicaster) AddProcessor(p EventProcessor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processors = append(m.processors, p)
}

// HandleEvent is the single entry point for container events.
func (m *Multicaster) HandleEvent(e event.Event) {
	m.mu.Lock()
	processors := append([]EventProcessor(nil), m.processors...)
	m.mu.Unlock()

	for _, p := range processors {
		if !p.Accept(e) {
			continue
		}
		if e = p.Process(e); e == nil {
			return
		}
	}
	m.dispatch(e)
}

func (m *Multicaster) dispatch(e event.Event) {
	switch evt := e.(type) {
	case event.Activated:
		m.handleActivated(evt)
	case event.Deactivated:
		m.handleDeactivated(evt)
	case event.MemberDeparted:
		m.handleDeparted(evt)
	case event.Connected, event.Disconnected:
		// Group connectivity only matters to specialisations.
	case event.Message:
		m.handleMessage(evt)
	default:
		panic(errors.Invariant("multicast: unhandled event %T", e))
	}
}

func (m *Multicaster) handleMessage(evt event.Message) {
	switch p := evt.Payload.(type) {
	case event.Data:
		m.Observe(p)
		m.receiver.ReceiveMessage(evt.From, p.Body)
	case event.Pause:
		m.handlePause(evt.From)
	case event.Paused:
		m.handlePaused(evt.From)
	case event.Resume:
		m.handleResume(evt.From)
	default:
		panic(errors.Invariant("multicast: unhandled payload %T", evt.Payload))
	}
}

func (m *Multicaster) handleActivated(evt event.Activated) {
	if evt.ID != m.id {
		return
	}
	local, group := m.gc.LocalMemberID(), m.gc.GroupID()

	m.mu.Lock()
	m.local, m.group = local, group
	if group == "" {
		m.mu.Unlock()
		m.log.Debug("Activated outside of a group, requesting disposal", "member", local)
		m.trace("orphaned", domain.StateNew, domain.StateNew)
		m.gc.RequestSelfDispose(local)
		return
	}
	if m.state != domain.StateNew {
		m.mu.Unlock()
		return
	}
	m.state = domain.StateReady
	m.wake()
	m.mu.Unlock()
	m.trace("activated", domain.StateNew, domain.StateReady)
}

func (m *Multicaster) handleDeactivated(evt event.Deactivated) {
	if evt.ID != m.id {
		return
	}
	m.mu.Lock()
	from := m.statusLocked()
	m.state = domain.StateDisposed
	m.wake()
	m.mu.Unlock()
	m.trace("deactivated", from, domain.StateDisposed)
}

func (m *Multicaster) handleDeparted(evt event.MemberDeparted) {
	m.mu.Lock()
	local := m.local
	m.mu.Unlock()
	if local == "" || evt.Member != local {
		return
	}
	m.log.Debug("Local member departed, removing object")
	m.gc.Registry().Remove(m.id)
}

func (m *Multicaster) handlePause(from domain.MemberID) {
	m.mu.Lock()
	if m.state == domain.StateDisposed {
		m.mu.Unlock()
		return
	}
	before := m.statusLocked()
	if len(m.pauses) == 0 {
		m.wake()
	}
	m.pauses[from] = struct{}{}
	after := m.statusLocked()
	m.mu.Unlock()
	m.trace("remote-pause", before, after)

	if err := m.gc.SendToOne(from, event.Paused{}); err != nil {
		m.log.Warn("Failed to acknowledge pause", "from", from, "error", err)
	}
}

func (m *Multicaster) handlePaused(from domain.MemberID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pauses[m.local]; !ok || m.quorum == nil {
		return
	}
	if _, pending := m.quorum[from]; !pending {
		return
	}
	delete(m.quorum, from)
	if len(m.quorum) == 0 {
		m.wake()
	}
}

func (m *Multicaster) handleResume(from domain.MemberID) {
	m.mu.Lock()
	if _, ok := m.pauses[from]; !ok {
		m.mu.Unlock()
		return
	}
	before := m.statusLocked()
	delete(m.pauses, from)
	if len(m.pauses) == 0 {
		m.wake()
	}
	after := m.statusLocked()
	m.mu.Unlock()
	m.trace("remote-resume", before, after)
}

// Observe overwrites the cached Version with the Version of a received message.
func (m *Multicaster) Observe(d event.Data) {
	m.mu.Lock()
	m.version = d.Version
	m.mu.Unlock()
}

// Pause freezes the object across the group. It returns once every member of the
// membership snapshot taken now has acknowledged, or fails after the pause timeout
// leaving the local member unpaused.
func (m *Multicaster) Pause(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pausing || m.pausedLocallyLocked() {
		return fmt.Errorf("%w: %s already paused by local member", errors.ErrIllegalState, m.id)
	}
	m.pausing = true
	defer func() { m.pausing = false }()

	for m.state == domain.StateNew {
		if err := m.wait(ctx, nil); err != nil {
			return fmt.Errorf("pause %s: %w", m.id, err)
		}
	}
	if m.state == domain.StateDisposed {
		return fmt.Errorf("%w: %s is disposed", errors.ErrIllegalState, m.id)
	}

	before := m.statusLocked()
	wasEmpty := len(m.pauses) == 0
	m.pauses[m.local] = struct{}{}
	m.quorum = lo.SliceToMap(lo.Without(m.gc.GroupMemberIDs(), m.local),
		func(id domain.MemberID) (domain.MemberID, struct{}) { return id, struct{}{} })
	if wasEmpty {
		m.wake()
	}
	m.traceLocked("pause", before, domain.StatePaused)

	m.mu.Unlock()
	err := m.gc.SendToGroup(event.Pause{})
	m.mu.Lock()
	if err != nil {
		m.abandonPauseLocked()
		return fmt.Errorf("%w: pause %s: %w", errors.ErrIO, m.id, err)
	}

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()
	for len(m.quorum) > 0 {
		switch {
		case m.state == domain.StateDisposed:
			m.abandonPauseLocked()
			return fmt.Errorf("%w: %s disposed while pausing", errors.ErrIllegalState, m.id)
		case !m.pausedLocallyLocked():
			m.quorum = nil
			return fmt.Errorf("%w: %s resumed while pausing", errors.ErrPauseFailed, m.id)
		}
		if err := m.wait(ctx, timer.C); err != nil {
			missing := len(m.quorum)
			m.abandonPauseLocked()
			if _, ok := err.(waitTimeout); ok {
				return fmt.Errorf("%w: %s: %d acknowledgement(s) missing after %s",
					errors.ErrPauseFailed, m.id, missing, m.timeout)
			}
			return fmt.Errorf("pause %s: %w", m.id, err)
		}
	}
	m.quorum = nil
	return nil
}

// Resume withdraws the local member's pause.
func (m *Multicaster) Resume() error {
	m.mu.Lock()
	if m.state == domain.StateDisposed {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s is disposed", errors.ErrIllegalState, m.id)
	}
	if !m.pausedLocallyLocked() {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s is not paused by local member", errors.ErrIllegalState, m.id)
	}
	m.mu.Unlock()

	if err := m.gc.SendToGroup(event.Resume{}); err != nil {
		return fmt.Errorf("%w: resume %s: %w", errors.ErrIO, m.id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	before := m.statusLocked()
	delete(m.pauses, m.local)
	if len(m.pauses) == 0 {
		m.wake()
	}
	m.traceLocked("resume", before, m.statusLocked())
	return nil
}

// WaitToSend blocks until the object is READY with an empty pause set.
// It returns false when the object is disposed or ctx is done.
func (m *Multicaster) WaitToSend(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.state != domain.StateReady || len(m.pauses) > 0 {
		if m.state == domain.StateDisposed {
			return false
		}
		if err := m.wait(ctx, nil); err != nil {
			return false
		}
	}
	return true
}

// SendData stamps body with the next Version and sends it to target, or to the
// whole group when target is empty. It reports false without error when the
// object was disposed before the message could leave.
func (m *Multicaster) SendData(ctx context.Context, target domain.MemberID, body []byte) (bool, error) {
	if !m.WaitToSend(ctx) {
		return false, nil
	}

	m.mu.Lock()
	m.lastSent = max(m.lastSent, m.version.Seq) + 1
	m.version = domain.Version{Owner: string(m.local), Seq: m.lastSent}
	d := event.Data{Version: m.version, Body: body}
	m.mu.Unlock()

	var err error
	if target == "" {
		err = m.gc.SendToGroup(d)
	} else {
		err = m.gc.SendToOne(target, d)
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrIO, err)
	}
	return true, nil
}

// Status reports the effective state, PAUSED when a READY object has pauses.
func (m *Multicaster) Status() domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

func (m *Multicaster) Version() domain.Version {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

func (m *Multicaster) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		ID:      m.id,
		Local:   m.local,
		Group:   m.group,
		State:   m.statusLocked(),
		Version: m.version,
		Pauses:  sortedMembers(m.pauses),
		Quorum:  sortedMembers(m.quorum),
	}
}

// wait releases the lock until the next state change, the deadline or ctx.
// It must be called with m.mu held and returns with it held.
func (m *Multicaster) wait(ctx context.Context, deadline <-chan time.Time) error {
	changed := m.changed
	m.mu.Unlock()
	defer m.mu.Lock()
	select {
	case <-changed:
		return nil
	case <-deadline:
		return waitTimeout{}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// wake releases every waiter. Called with m.mu held.
func (m *Multicaster) wake() {
	close(m.changed)
	m.changed = make(chan struct{})
}

func (m *Multicaster) abandonPauseLocked() {
	before := m.statusLocked()
	delete(m.pauses, m.local)
	m.quorum = nil
	if len(m.pauses) == 0 {
		m.wake()
	}
	m.traceLocked("pause-abandoned", before, m.statusLocked())
}

func (m *Multicaster) pausedLocallyLocked() bool {
	if m.local == "" {
		return false
	}
	_, ok := m.pauses[m.local]
	return ok
}

func (m *Multicaster) statusLocked() domain.State {
	if m.state == domain.StateReady && len(m.pauses) > 0 {
		return domain.StatePaused
	}
	return m.state
}

func (m *Multicaster) trace(name string, from, to domain.State) {
	m.mu.Lock()
	local := m.local
	m.mu.Unlock()
	m.tracer.Trace(domain.Trace{Event: name, Object: m.id, Member: local, From: from, To: to})
}

func (m *Multicaster) traceLocked(name string, from, to domain.State) {
	m.tracer.Trace(domain.Trace{Event: name, Object: m.id, Member: m.local, From: from, To: to})
}

func sortedMembers(set map[domain.MemberID]struct{}) []domain.MemberID {
	members := lo.Keys(set)
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}
