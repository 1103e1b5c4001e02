// Package transport carries encoded frames between the containers of one group.
//
// The Hub is an in-process group: each attached member owns an inbox channel and
// frames are enqueued without blocking, preserving FIFO order per sender and destination.
package transport

import (
	"datashare/contract"
	"datashare/domain"
	"datashare/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

type Hub struct {
	log   *slog.Logger
	group domain.GroupID

	mu      sync.RWMutex
	inboxes map[domain.MemberID]chan<- []byte
	order   []domain.MemberID
}

func NewHub(log *slog.Logger, group domain.GroupID) *Hub {
	return &Hub{
		log:     log,
		group:   group,
		inboxes: make(map[domain.MemberID]chan<- []byte),
	}
}

func (h *Hub) GroupID() domain.GroupID { return h.group }

// Members returns the attached members in join order.
func (h *Hub) Members() []domain.MemberID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]domain.MemberID(nil), h.order...)
}

// Attach registers inbox for member and tells every other member it connected.
func (h *Hub) Attach(member domain.MemberID, inbox chan<- []byte) error {
	if member == "" || inbox == nil {
		return fmt.Errorf("%w: missing member or inbox", errors.ErrUnknownMember)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.inboxes[member]; ok {
		return fmt.Errorf("%w: %s", errors.ErrMemberExists, member)
	}
	h.notifyLocked(Envelope{Kind: KindConnected, From: member})
	h.inboxes[member] = inbox
	h.order = append(h.order, member)
	h.log.Debug("Member attached", "group", h.group, "member", member, "members", len(h.order))
	return nil
}

// Detach forgets member and tells the remaining members it disconnected.
// Frames already queued for member stay in its inbox.
func (h *Hub) Detach(member domain.MemberID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.inboxes[member]; !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownMember, member)
	}
	delete(h.inboxes, member)
	h.order = lo.Without(h.order, member)
	h.notifyLocked(Envelope{Kind: KindDisconnected, From: member})
	h.log.Debug("Member detached", "group", h.group, "member", member, "members", len(h.order))
	return nil
}

// Send enqueues frame for to.
func (h *Hub) Send(from, to domain.MemberID, frame []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.inboxes[from]; !ok {
		return fmt.Errorf("%w: sender %s", errors.ErrNotConnected, from)
	}
	inbox, ok := h.inboxes[to]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownMember, to)
	}
	return enqueue(inbox, to, frame)
}

// Broadcast enqueues frame for every member except from. Every member is tried
// even when some inboxes are full.
func (h *Hub) Broadcast(from domain.MemberID, frame []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.inboxes[from]; !ok {
		return fmt.Errorf("%w: sender %s", errors.ErrNotConnected, from)
	}
	var errs []error
	for _, member := range h.order {
		if member == from {
			continue
		}
		if err := enqueue(h.inboxes[member], member, frame); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func (h *Hub) notifyLocked(env Envelope) {
	frame := Encode(env)
	for _, member := range h.order {
		if err := enqueue(h.inboxes[member], member, frame); err != nil {
			h.log.Warn("Membership notification lost", "kind", env.Kind, "member", member, "error", err)
		}
	}
}

func enqueue(inbox chan<- []byte, to domain.MemberID, frame []byte) error {
	select {
	case inbox <- frame:
		return nil
	default:
		return fmt.Errorf("%w: %s", errors.ErrBackpressure, to)
	}
}

var _ contract.Network = (*Hub)(nil)
