package sink

import (
	"datashare/contract"
	"datashare/domain"
	"datashare/infrastructure/storage"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// HistorySink records every channel message in the history repository.
// Membership notifications are only logged.
type HistorySink struct {
	repository storage.IHistoryRepository
	log        *slog.Logger
	// versionOf returns the channel's cached Version, which the channel has
	// already overwritten with the message's Version when OnMessage runs.
	versionOf func(channelID domain.ObjectID) domain.Version
	now       func() time.Time
}

func NewHistorySink(repository storage.IHistoryRepository, log *slog.Logger, versionOf func(domain.ObjectID) domain.Version) HistorySink {
	return HistorySink{repository: repository, log: log, versionOf: versionOf, now: time.Now}
}

func (h HistorySink) OnInitialize(channelID domain.ObjectID, members []domain.MemberID) {
	h.log.Debug("Channel initialized", "channel", channelID, "members", len(members))
}

func (h HistorySink) OnGroupJoin(channelID domain.ObjectID, member domain.MemberID) {
	h.log.Debug("Member joined channel", "channel", channelID, "member", member)
}

func (h HistorySink) OnGroupDepart(channelID domain.ObjectID, member domain.MemberID) {
	h.log.Debug("Member departed channel", "channel", channelID, "member", member)
}

func (h HistorySink) OnMessage(channelID domain.ObjectID, from domain.MemberID, data []byte) {
	message := storage.HistoryMessage{
		ID:      uuid.New(),
		Channel: channelID,
		From:    from,
		Body:    append([]byte{}, data...),
		At:      h.now().UTC(),
	}
	if h.versionOf != nil {
		message.Version = h.versionOf(channelID)
	}
	if err := h.repository.StoreMessage(message); err != nil {
		h.log.Warn("Failed to record channel message", "channel", channelID, "from", from, "error", err)
	}
}

var _ contract.ChannelListener = HistorySink{}
