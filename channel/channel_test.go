package channel

import (
	"context"
	"datashare/contract"
	"datashare/domain"
	"datashare/domain/event"
	"datashare/errors"
	"datashare/mocks"
	"datashare/multicast"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	home      = domain.MemberID("a")
	remote    = domain.MemberID("b")
	channelID = domain.ObjectID("chan")
)

var members = []domain.MemberID{home, remote}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGroupContext(ctrl *gomock.Controller, local domain.MemberID) *mocks.MockGroupContext {
	gc := mocks.NewMockGroupContext(ctrl)
	gc.EXPECT().LocalMemberID().Return(local).AnyTimes()
	gc.EXPECT().GroupID().Return(domain.GroupID("group")).AnyTimes()
	gc.EXPECT().GroupMemberIDs().Return(members).AnyTimes()
	return gc
}

func newHost(t *testing.T, gc *mocks.MockGroupContext, listener *mocks.MockChannelListener) *Channel {
	c := NewHost(Config{
		Config: multicast.Config{
			ID:         channelID,
			Context:    gc,
			Properties: map[string]string{"topic": "news"},
			Receiver: multicast.ReceiverFunc(func(domain.MemberID, []byte) {
				t.Error("channel data must not reach the object receiver")
			}),
			Log: discardLogger(),
		},
		Home: home,
	}, listener)
	return c
}

func TestChannel_Initialize_Notifies_Current_Members(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gc := newGroupContext(ctrl, home)
	listener := mocks.NewMockChannelListener(ctrl)

	// Given the listener expects the member snapshot first, then one join and one depart
	gomock.InOrder(
		listener.EXPECT().OnInitialize(channelID, members).Times(1),
		listener.EXPECT().OnGroupJoin(channelID, domain.MemberID("c")).Times(1),
		listener.EXPECT().OnGroupDepart(channelID, domain.MemberID("c")).Times(1),
	)
	c := newHost(t, gc, listener)

	// When the channel is initialized twice, activated, and the group changes
	req.NoError(c.Initialize())
	req.NoError(c.Initialize())
	c.HandleEvent(event.Activated{ID: channelID})
	c.HandleEvent(event.Connected{Member: "c"})
	c.HandleEvent(event.Disconnected{Member: "c"})

	// Then the channel is ready and primary
	req.True(c.IsPrimary())
	req.Equal(domain.StateReady, c.Status())
}

func TestChannel_Host_Requires_Listener(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewHost(Config{Config: multicast.Config{ID: channelID, Context: newGroupContext(ctrl, home), Log: discardLogger()}, Home: home}, nil)

	require.ErrorIs(t, c.Initialize(), errors.ErrInit)
}

func TestChannel_Message_Is_Consumed_By_Listener(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gc := newGroupContext(ctrl, home)
	listener := mocks.NewMockChannelListener(ctrl)
	listener.EXPECT().OnInitialize(channelID, members)
	c := newHost(t, gc, listener)
	req.NoError(c.Initialize())
	c.HandleEvent(event.Activated{ID: channelID})

	// Given the listener expects the message exactly once
	listener.EXPECT().OnMessage(channelID, remote, []byte{1, 2, 3}).Times(1)

	// When a data message arrives
	version := domain.Version{Owner: "b", Seq: 4}
	c.HandleEvent(event.Message{From: remote, Payload: event.Data{Version: version, Body: []byte{1, 2, 3}}})

	// Then the version is observed
	req.Equal(version, c.Version())
}

func TestChannel_Control_Messages_Reach_The_Barrier(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gc := newGroupContext(ctrl, home)
	listener := mocks.NewMockChannelListener(ctrl)
	listener.EXPECT().OnInitialize(channelID, members)
	c := newHost(t, gc, listener)
	req.NoError(c.Initialize())
	c.HandleEvent(event.Activated{ID: channelID})

	gc.EXPECT().SendToOne(remote, event.Paused{}).Return(nil)
	c.HandleEvent(event.Message{From: remote, Payload: event.Pause{}})

	req.Equal(domain.StatePaused, c.Status())
}

func TestChannel_SendMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gc := newGroupContext(ctrl, home)
	listener := mocks.NewMockChannelListener(ctrl)
	listener.EXPECT().OnInitialize(channelID, members)
	c := newHost(t, gc, listener)
	req.NoError(c.Initialize())
	c.HandleEvent(event.Activated{ID: channelID})

	gomock.InOrder(
		gc.EXPECT().SendToGroup(event.Data{Version: domain.Version{Owner: "a", Seq: 1}, Body: []byte("all")}).Return(nil),
		gc.EXPECT().SendToOne(remote, event.Data{Version: domain.Version{Owner: "a", Seq: 2}, Body: []byte("one")}).Return(nil),
	)

	req.NoError(c.SendMessage(context.Background(), []byte("all")))
	req.NoError(c.SendTo(context.Background(), remote, []byte("one")))
}

func TestChannel_SendMessage_Failures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gc := newGroupContext(ctrl, home)
	listener := mocks.NewMockChannelListener(ctrl)
	listener.EXPECT().OnInitialize(channelID, members)
	c := newHost(t, gc, listener)
	req.NoError(c.Initialize())
	c.HandleEvent(event.Activated{ID: channelID})

	// A transport failure is wrapped
	gc.EXPECT().SendToGroup(gomock.Any()).Return(stderrors.New("link down"))
	err := c.SendMessage(context.Background(), []byte("x"))
	req.ErrorIs(err, errors.ErrChannelSend)
	req.ErrorIs(err, errors.ErrIO)

	// A disposed channel aborts
	c.HandleEvent(event.Deactivated{ID: channelID})
	req.ErrorIs(c.SendMessage(context.Background(), []byte("x")), errors.ErrSendAborted)
}

func TestChannel_ReplicaDescription(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	c := newHost(t, newGroupContext(ctrl, home), mocks.NewMockChannelListener(ctrl))

	// Default description copies kind, id, home and properties
	req.Equal(&domain.Descriptor{
		Kind:       Kind,
		ID:         channelID,
		Home:       home,
		Properties: map[string]string{"topic": "news"},
	}, c.ReplicaDescription(remote))

	// An override may suppress a target
	c = New(Config{
		Config:   multicast.Config{ID: channelID, Log: discardLogger()},
		Describe: func(domain.MemberID) *domain.Descriptor { return nil },
	})
	req.Nil(c.ReplicaDescription(remote))
}

func TestFactory_Builds_Replicas_And_Hosts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	override := mocks.NewMockChannelListener(ctrl)
	factory := NewFactory(FactoryConfig{
		Log: discardLogger(),
		Listener: func(d domain.Descriptor) contract.ChannelListener {
			return override
		},
	})
	d := domain.Descriptor{Kind: Kind, ID: channelID, Home: home, Properties: map[string]string{"topic": "news"}}

	// On a remote member the channel is a replica forwarding to the override listener
	gomock.InOrder(
		override.EXPECT().OnInitialize(channelID, members),
		override.EXPECT().OnMessage(channelID, home, []byte("hi")),
	)
	obj, err := factory(d, newGroupContext(ctrl, remote))
	req.NoError(err)
	replica := obj.(*Channel)
	req.False(replica.IsPrimary())
	req.NoError(replica.Initialize())
	replica.HandleEvent(event.Activated{ID: channelID})
	replica.HandleEvent(event.Message{From: home, Payload: event.Data{Version: domain.Version{Owner: "a", Seq: 1}, Body: []byte("hi")}})
	req.Equal(map[string]string{"topic": "news"}, replica.Properties())

	// On the home member it is the primary
	obj, err = factory(d, newGroupContext(ctrl, home))
	req.NoError(err)
	req.True(obj.(*Channel).IsPrimary())
}

func TestFactory_Replica_Without_Listener(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	factory := NewFactory(FactoryConfig{Log: discardLogger()})

	obj, err := factory(domain.Descriptor{Kind: Kind, ID: channelID, Home: home}, newGroupContext(ctrl, remote))
	req.NoError(err)
	replica := obj.(*Channel)

	// The replica listener is enough to initialize and receive
	req.NoError(replica.Initialize())
	replica.HandleEvent(event.Activated{ID: channelID})
	replica.HandleEvent(event.Connected{Member: "c"})
	replica.HandleEvent(event.Message{From: home, Payload: event.Data{Version: domain.Version{Owner: "a", Seq: 1}, Body: []byte("hi")}})
	req.Equal(domain.Version{Owner: "a", Seq: 1}, replica.Version())
}
