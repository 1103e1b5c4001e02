// Package projection builds local views of a channel from its notifications.
// Does not emit events or send anything to the group.
package projection

import (
	"datashare/contract"
	"datashare/domain"
	"sort"
	"sync"

	"github.com/samber/lo"
)

type Message struct {
	Channel domain.ObjectID
	From    domain.MemberID
	Body    []byte
}

// Timeline holds the membership and the received messages of the channels it listens to.
type Timeline struct {
	mu       sync.RWMutex
	members  map[domain.ObjectID]map[domain.MemberID]struct{}
	messages []Message
}

func NewTimeline() *Timeline {
	return &Timeline{members: make(map[domain.ObjectID]map[domain.MemberID]struct{})}
}

func (t *Timeline) OnInitialize(channelID domain.ObjectID, members []domain.MemberID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.members[channelID] = lo.SliceToMap(members, func(m domain.MemberID) (domain.MemberID, struct{}) {
		return m, struct{}{}
	})
}

func (t *Timeline) OnGroupJoin(channelID domain.ObjectID, member domain.MemberID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.members[channelID] == nil {
		t.members[channelID] = make(map[domain.MemberID]struct{})
	}
	t.members[channelID][member] = struct{}{}
}

func (t *Timeline) OnGroupDepart(channelID domain.ObjectID, member domain.MemberID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.members[channelID], member)
}

func (t *Timeline) OnMessage(channelID domain.ObjectID, from domain.MemberID, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, Message{Channel: channelID, From: from, Body: append([]byte{}, data...)})
}

// Members returns the members currently known in channelID, sorted.
func (t *Timeline) Members(channelID domain.ObjectID) []domain.MemberID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	members := lo.Keys(t.members[channelID])
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

// Messages returns the messages received so far, in arrival order.
func (t *Timeline) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Message(nil), t.messages...)
}

var _ contract.ChannelListener = (*Timeline)(nil)
