package transport

import (
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestWire_Data_Frame(t *testing.T) {
	req := require.New(t)
	version := domain.Version{Owner: "a", Seq: 42}

	// When a data payload is framed and parsed back
	frame := Encode(FromPayload("obj", "a", event.Data{Version: version, Body: []byte{1, 2, 3}}))
	env, err := Decode(frame)
	req.NoError(err)

	// Then routing, version and body survive
	req.Equal(KindData, env.Kind)
	req.Equal(domain.ObjectID("obj"), env.Object)
	req.Equal(domain.MemberID("a"), env.From)
	payload, err := env.Payload()
	req.NoError(err)
	req.Equal(event.Data{Version: version, Body: []byte{1, 2, 3}}, payload)
}

func TestWire_Body_Presence(t *testing.T) {
	req := require.New(t)

	empty, err := Decode(Encode(FromPayload("obj", "a", event.Data{Body: []byte{}})))
	req.NoError(err)
	req.NotNil(empty.Body)
	req.Empty(empty.Body)

	absent, err := Decode(Encode(FromPayload("obj", "a", event.Data{})))
	req.NoError(err)
	req.Nil(absent.Body)
}

func TestWire_Control_Frames(t *testing.T) {
	req := require.New(t)
	for _, payload := range []event.Payload{event.Pause{}, event.Paused{}, event.Resume{}} {
		env, err := Decode(Encode(FromPayload("obj", "b", payload)))
		req.NoError(err)
		got, err := env.Payload()
		req.NoError(err)
		req.Equal(payload, got)
		req.Equal(domain.MemberID("b"), env.From)
	}
}

func TestWire_Create_Frame_Carries_Descriptor(t *testing.T) {
	req := require.New(t)
	d := domain.Descriptor{
		Kind:       "datashare.channel",
		ID:         "obj",
		Home:       "a",
		Properties: map[string]string{"topic": "news", domain.PropertyVersion: "a@3", "empty": ""},
	}

	env, err := Decode(Encode(Envelope{Kind: KindCreate, Object: "obj", From: "a", Descriptor: &d}))

	req.NoError(err)
	req.Equal(KindCreate, env.Kind)
	req.NotNil(env.Descriptor)
	req.Equal(d, *env.Descriptor)
	_, err = env.Payload()
	req.ErrorIs(err, errors.ErrMalformedFrame)
}

func TestWire_Membership_Frames(t *testing.T) {
	req := require.New(t)
	for _, kind := range []Kind{KindConnected, KindDisconnected, KindDispose} {
		env, err := Decode(Encode(Envelope{Kind: kind, From: "c"}))
		req.NoError(err)
		req.Equal(kind, env.Kind)
		req.Equal(domain.MemberID("c"), env.From)
		req.Empty(env.Object)
	}
}

func TestWire_Skips_Unknown_Fields(t *testing.T) {
	req := require.New(t)
	frame := Encode(FromPayload("obj", "a", event.Resume{}))
	frame = protowire.AppendTag(frame, 99, protowire.VarintType)
	frame = protowire.AppendVarint(frame, 7)

	env, err := Decode(frame)

	req.NoError(err)
	req.Equal(KindResume, env.Kind)
}

func TestWire_Malformed(t *testing.T) {
	req := require.New(t)

	// Truncated frame
	frame := Encode(FromPayload("obj", "a", event.Data{Body: []byte("hello")}))
	_, err := Decode(frame[:len(frame)-2])
	req.ErrorIs(err, errors.ErrMalformedFrame)

	// Missing kind
	_, err = Decode(nil)
	req.ErrorIs(err, errors.ErrMalformedFrame)

	// Unknown kind
	_, err = Decode(Encode(Envelope{Kind: Kind(200)}))
	req.ErrorIs(err, errors.ErrMalformedFrame)
	req.Equal("KIND(200)", Kind(200).String())
}
