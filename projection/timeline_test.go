package projection

import (
	"datashare/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeline_OnMessage(t *testing.T) {
	timeline := NewTimeline()

	timeline.OnMessage("chan", "alice", []byte("Hello Bob"))
	timeline.OnMessage("chan", "clara", []byte("Hi Bob"))

	messages := timeline.Messages()
	require.Len(t, messages, 2)
	require.Equal(t, domain.MemberID("alice"), messages[0].From)
	require.Equal(t, domain.MemberID("clara"), messages[1].From)
	require.Equal(t, []byte("Hi Bob"), messages[1].Body)
}

func TestTimeline_Membership(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()

	// Given a channel initialized with two members
	timeline.OnInitialize("chan", []domain.MemberID{"bob", "alice"})

	// When a member joins and another departs
	timeline.OnGroupJoin("chan", "clara")
	timeline.OnGroupDepart("chan", "bob")

	// Then the view follows the notifications
	req.Equal([]domain.MemberID{"alice", "clara"}, timeline.Members("chan"))
	req.Empty(timeline.Members("other"))
}

func TestTimeline_MessageIsCopied(t *testing.T) {
	timeline := NewTimeline()
	body := []byte("abc")

	timeline.OnMessage("chan", "alice", body)
	body[0] = 'z'

	require.Equal(t, []byte("abc"), timeline.Messages()[0].Body)
}
