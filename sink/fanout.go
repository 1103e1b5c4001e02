package sink

import (
	"datashare/contract"
	"datashare/domain"
)

// Fanout forwards every channel notification to several listeners, in order.
//
// It provides best-effort fan-out with no retries: a listener that panics stops
// the notification for the listeners after it.
type Fanout struct {
	listeners []contract.ChannelListener
}

func NewFanout(listeners ...contract.ChannelListener) Fanout {
	return Fanout{listeners: listeners}
}

func (f Fanout) Add(listeners ...contract.ChannelListener) Fanout {
	f.listeners = append(append([]contract.ChannelListener(nil), f.listeners...), listeners...)
	return f
}

func (f Fanout) OnInitialize(channelID domain.ObjectID, members []domain.MemberID) {
	for _, l := range f.listeners {
		l.OnInitialize(channelID, members)
	}
}

func (f Fanout) OnGroupJoin(channelID domain.ObjectID, member domain.MemberID) {
	for _, l := range f.listeners {
		l.OnGroupJoin(channelID, member)
	}
}

func (f Fanout) OnGroupDepart(channelID domain.ObjectID, member domain.MemberID) {
	for _, l := range f.listeners {
		l.OnGroupDepart(channelID, member)
	}
}

func (f Fanout) OnMessage(channelID domain.ObjectID, from domain.MemberID, data []byte) {
	for _, l := range f.listeners {
		l.OnMessage(channelID, from, data)
	}
}

var _ contract.ChannelListener = Fanout{}
