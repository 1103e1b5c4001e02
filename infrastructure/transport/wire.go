package transport

import (
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"fmt"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

type Kind uint8

const (
	KindData Kind = iota + 1
	KindPause
	KindPaused
	KindResume
	KindCreate
	KindDispose
	KindConnected
	KindDisconnected
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "DATA"
	case KindPause:
		return "PAUSE"
	case KindPaused:
		return "PAUSED"
	case KindResume:
		return "RESUME"
	case KindCreate:
		return "CREATE"
	case KindDispose:
		return "DISPOSE"
	case KindConnected:
		return "CONNECTED"
	case KindDisconnected:
		return "DISCONNECTED"
	default:
		return fmt.Sprintf("KIND(%d)", uint8(k))
	}
}

// Envelope is one frame exchanged between containers.
// Object is empty for container level frames (connected, disconnected).
type Envelope struct {
	Kind       Kind
	Object     domain.ObjectID
	From       domain.MemberID
	Version    domain.Version
	Body       []byte
	Descriptor *domain.Descriptor
}

const (
	fieldKind         protowire.Number = 1
	fieldObject       protowire.Number = 2
	fieldFrom         protowire.Number = 3
	fieldVersionOwner protowire.Number = 4
	fieldVersionSeq   protowire.Number = 5
	fieldBody         protowire.Number = 6
	fieldDescriptor   protowire.Number = 7
)

const (
	fieldDescKind     protowire.Number = 1
	fieldDescID       protowire.Number = 2
	fieldDescHome     protowire.Number = 3
	fieldDescProperty protowire.Number = 4
	fieldPropKey      protowire.Number = 1
	fieldPropValue    protowire.Number = 2
)

// FromPayload wraps an object payload sent by from.
func FromPayload(object domain.ObjectID, from domain.MemberID, p event.Payload) Envelope {
	env := Envelope{Object: object, From: from}
	switch payload := p.(type) {
	case event.Data:
		env.Kind = KindData
		env.Version = payload.Version
		env.Body = payload.Body
	case event.Pause:
		env.Kind = KindPause
	case event.Paused:
		env.Kind = KindPaused
	case event.Resume:
		env.Kind = KindResume
	default:
		panic(errors.Invariant("transport: unhandled payload %T", p))
	}
	return env
}

// Payload returns the object payload carried by an object frame.
func (e Envelope) Payload() (event.Payload, error) {
	switch e.Kind {
	case KindData:
		return event.Data{Version: e.Version, Body: e.Body}, nil
	case KindPause:
		return event.Pause{}, nil
	case KindPaused:
		return event.Paused{}, nil
	case KindResume:
		return event.Resume{}, nil
	default:
		return nil, fmt.Errorf("%w: %s frame has no object payload", errors.ErrMalformedFrame, e.Kind)
	}
}

// Encode serializes e in protobuf wire format.
func Encode(e Envelope) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(e.Kind))
	b = appendString(b, fieldObject, string(e.Object))
	b = appendString(b, fieldFrom, string(e.From))
	b = appendString(b, fieldVersionOwner, e.Version.Owner)
	if e.Version.Seq != 0 {
		b = protowire.AppendTag(b, fieldVersionSeq, protowire.VarintType)
		b = protowire.AppendVarint(b, e.Version.Seq)
	}
	// An empty body is still written so that it decodes as non-nil
	if e.Body != nil {
		b = protowire.AppendTag(b, fieldBody, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Body)
	}
	if e.Descriptor != nil {
		b = protowire.AppendTag(b, fieldDescriptor, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeDescriptor(*e.Descriptor))
	}
	return b
}

// Decode parses a frame produced by Encode. Unknown fields are skipped.
func Decode(b []byte) (Envelope, error) {
	var e Envelope
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			e.Kind = Kind(v)
			return n, nil
		case num == fieldVersionSeq && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			e.Version.Seq = v
			return n, nil
		case typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			switch num {
			case fieldObject:
				e.Object = domain.ObjectID(v)
			case fieldFrom:
				e.From = domain.MemberID(v)
			case fieldVersionOwner:
				e.Version.Owner = string(v)
			case fieldBody:
				e.Body = append([]byte{}, v...)
			case fieldDescriptor:
				d, err := decodeDescriptor(v)
				if err != nil {
					return 0, err
				}
				e.Descriptor = &d
			}
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
	})
	if err != nil {
		return Envelope{}, err
	}
	if e.Kind < KindData || e.Kind > KindDisconnected {
		return Envelope{}, fmt.Errorf("%w: unknown kind %d", errors.ErrMalformedFrame, e.Kind)
	}
	return e, nil
}

func encodeDescriptor(d domain.Descriptor) []byte {
	var b []byte
	b = appendString(b, fieldDescKind, d.Kind)
	b = appendString(b, fieldDescID, string(d.ID))
	b = appendString(b, fieldDescHome, string(d.Home))

	keys := make([]string, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var entry []byte
		entry = appendString(entry, fieldPropKey, k)
		entry = appendString(entry, fieldPropValue, d.Properties[k])
		b = protowire.AppendTag(b, fieldDescProperty, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

func decodeDescriptor(b []byte) (domain.Descriptor, error) {
	d := domain.Descriptor{Properties: map[string]string{}}
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		switch num {
		case fieldDescKind:
			d.Kind = string(v)
		case fieldDescID:
			d.ID = domain.ObjectID(v)
		case fieldDescHome:
			d.Home = domain.MemberID(v)
		case fieldDescProperty:
			var key, value string
			err := walk(v, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				if typ != protowire.BytesType {
					return protowire.ConsumeFieldValue(num, typ, b), nil
				}
				s, n := protowire.ConsumeString(b)
				switch num {
				case fieldPropKey:
					key = s
				case fieldPropValue:
					value = s
				}
				return n, nil
			})
			if err != nil {
				return 0, err
			}
			d.Properties[key] = value
		}
		return n, nil
	})
	return d, err
}

// walk iterates over the fields of b. visit returns the number of bytes of the
// field value it consumed, negative on a parse error.
func walk(b []byte, visit func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", errors.ErrMalformedFrame, protowire.ParseError(n))
		}
		b = b[n:]
		n, err := visit(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: %w", errors.ErrMalformedFrame, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}
