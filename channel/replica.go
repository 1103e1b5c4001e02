package channel

import (
	"datashare/contract"
	"datashare/domain"
	"datashare/multicast"
	"log/slog"
	"time"
)

// replicaListener is installed on every replica. It logs what the replica sees and
// hands the notification to the optional override listener.
type replicaListener struct {
	log  *slog.Logger
	next contract.ChannelListener
}

func (r replicaListener) OnInitialize(channelID domain.ObjectID, members []domain.MemberID) {
	r.log.Debug("Replica channel initialized", "channel", channelID, "members", members)
	if r.next != nil {
		r.next.OnInitialize(channelID, members)
	}
}

func (r replicaListener) OnGroupJoin(channelID domain.ObjectID, member domain.MemberID) {
	r.log.Debug("Replica channel group join", "channel", channelID, "member", member)
	if r.next != nil {
		r.next.OnGroupJoin(channelID, member)
	}
}

func (r replicaListener) OnGroupDepart(channelID domain.ObjectID, member domain.MemberID) {
	r.log.Debug("Replica channel group depart", "channel", channelID, "member", member)
	if r.next != nil {
		r.next.OnGroupDepart(channelID, member)
	}
}

func (r replicaListener) OnMessage(channelID domain.ObjectID, from domain.MemberID, data []byte) {
	r.log.Debug("Replica channel message", "channel", channelID, "from", from, "size", len(data))
	if r.next != nil {
		r.next.OnMessage(channelID, from, data)
	}
}

// FactoryConfig is shared by every channel a factory builds.
type FactoryConfig struct {
	Log          *slog.Logger
	Tracer       contract.Tracer
	PauseTimeout time.Duration
	// Listener returns the listener of the channel built for descriptor d.
	// It may be nil, or return nil, for replicas.
	Listener func(d domain.Descriptor) contract.ChannelListener
}

// NewFactory returns a registry factory building channels from descriptors.
// The built channel is primary when the descriptor's home is the local member.
func NewFactory(cfg FactoryConfig) contract.Factory {
	return func(d domain.Descriptor, gc contract.GroupContext) (contract.SharedObject, error) {
		var listener contract.ChannelListener
		if cfg.Listener != nil {
			listener = cfg.Listener(d)
		}
		return New(Config{
			Config: multicast.Config{
				ID:           d.ID,
				Context:      gc,
				Properties:   d.Properties,
				PauseTimeout: cfg.PauseTimeout,
				Tracer:       cfg.Tracer,
				Log:          cfg.Log,
			},
			Home:     d.Home,
			Primary:  d.Home == gc.LocalMemberID(),
			Listener: listener,
		}), nil
	}
}
