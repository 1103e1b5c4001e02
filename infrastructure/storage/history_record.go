package storage

import (
	"datashare/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	recordID           protowire.Number = 1
	recordChannel      protowire.Number = 2
	recordFrom         protowire.Number = 3
	recordVersionOwner protowire.Number = 4
	recordVersionSeq   protowire.Number = 5
	recordBody         protowire.Number = 6
	recordAt           protowire.Number = 7
)

func encodeRecord(m HistoryMessage) []byte {
	var b []byte
	b = protowire.AppendTag(b, recordID, protowire.BytesType)
	b = protowire.AppendString(b, m.ID.String())
	b = protowire.AppendTag(b, recordChannel, protowire.BytesType)
	b = protowire.AppendString(b, string(m.Channel))
	b = protowire.AppendTag(b, recordFrom, protowire.BytesType)
	b = protowire.AppendString(b, string(m.From))
	b = protowire.AppendTag(b, recordVersionOwner, protowire.BytesType)
	b = protowire.AppendString(b, m.Version.Owner)
	b = protowire.AppendTag(b, recordVersionSeq, protowire.VarintType)
	b = protowire.AppendVarint(b, m.Version.Seq)
	b = protowire.AppendTag(b, recordBody, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Body)
	b = protowire.AppendTag(b, recordAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.At.UnixNano()))
	return b
}

func decodeRecord(b []byte) (HistoryMessage, error) {
	var m HistoryMessage
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return HistoryMessage{}, fmt.Errorf("history record: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return HistoryMessage{}, fmt.Errorf("history record: %w", protowire.ParseError(n))
			}
			switch num {
			case recordVersionSeq:
				m.Version.Seq = v
			case recordAt:
				m.At = time.Unix(0, int64(v)).UTC()
			}
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return HistoryMessage{}, fmt.Errorf("history record: %w", protowire.ParseError(n))
			}
			switch num {
			case recordID:
				id, err := uuid.ParseBytes(v)
				if err != nil {
					return HistoryMessage{}, fmt.Errorf("history record: %w", err)
				}
				m.ID = id
			case recordChannel:
				m.Channel = domain.ObjectID(v)
			case recordFrom:
				m.From = domain.MemberID(v)
			case recordVersionOwner:
				m.Version.Owner = string(v)
			case recordBody:
				m.Body = append([]byte{}, v...)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return HistoryMessage{}, fmt.Errorf("history record: %w", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return m, nil
}
