//go:generate go run go.uber.org/mock/mockgen -source=history_repository.go -destination=../../mocks/mock_history_repository.go -package=mocks
package storage

import (
	"datashare/domain"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IHistoryRepository interface {
	StoreMessage(message HistoryMessage) error
	GetMessages(channel domain.ObjectID, cursor *string) ([]HistoryMessage, *string, error)
}

// HistoryMessage is one channel message as observed by the local member.
type HistoryMessage struct {
	ID      uuid.UUID
	Channel domain.ObjectID
	From    domain.MemberID
	Version domain.Version
	Body    []byte
	At      time.Time
}

type HistoryRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

// OpenInMemory opens a badger store that lives only as long as the process.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger, limit *int) HistoryRepository {
	return HistoryRepository{db: db, log: log, limit: limit}
}

// StoreMessage records a message under "msg:{channel}:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps keys in chronological order and the uuid separates
// messages observed in the same nanosecond.
func (r HistoryRepository) StoreMessage(message HistoryMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.Channel,
		message.At.UnixNano(),
		message.ID,
	)
	value := encodeRecord(message)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// GetMessages returns the messages of channel, newest first, starting after cursor
// when it is set. The returned cursor continues the scan on the next call.
func (r HistoryRepository) GetMessages(channel domain.ObjectID, cursor *string) ([]HistoryMessage, *string, error) {
	var values [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", channel)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Highest possible timestamp, the iterator walks back from there
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(values) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d message reached", *r.limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]HistoryMessage, 0, len(values))
	for _, value := range values {
		message, err := decodeRecord(value)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}
