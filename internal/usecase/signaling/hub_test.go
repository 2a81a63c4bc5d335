package signaling

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConn records everything written to it
type fakeConn struct {
	mu       sync.Mutex
	messages []map[string]interface{}
	closed   bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.WriteMessage(TextMessage, raw)
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, decoded)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// events returns recorded messages of the given type
func (c *fakeConn) events(eventType string) []map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []map[string]interface{}
	for _, m := range c.messages {
		if m["type"] == eventType {
			out = append(out, m)
		}
	}
	return out
}

func newTestHub() *Hub {
	return NewHub(zap.NewNop(), 0)
}

func TestRegister_AnnouncesClientID(t *testing.T) {
	hub := newTestHub()
	conn := &fakeConn{}

	client := hub.Register(conn)

	connected := conn.events(EventConnected)
	require.Len(t, connected, 1)
	assert.Equal(t, client.ID, connected[0]["client_id"])
}

func TestJoin_NotifiesExistingMembersOnly(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)

	hub.Join("42", a)
	hub.Join("42", b)

	// A learns about B
	joined := connA.events(EventUserJoined)
	require.Len(t, joined, 1)
	assert.Equal(t, b.ID, joined[0]["user_id"])

	// B hears nothing about its own join
	assert.Empty(t, connB.events(EventUserJoined))
}

func TestJoin_RejoinReemitsNotification(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)

	hub.Join("42", a)
	hub.Join("42", b)
	hub.Join("42", b)

	assert.Len(t, connA.events(EventUserJoined), 2)
	assert.Len(t, hub.RoomMembers("42"), 2)
}

func TestLeave_NotifiesRemainingMembers(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)
	hub.Join("42", a)
	hub.Join("42", b)

	hub.Leave("42", b)

	left := connA.events(EventUserLeft)
	require.Len(t, left, 1)
	assert.Equal(t, b.ID, left[0]["user_id"])
	assert.Equal(t, []string{a.ID}, hub.RoomMembers("42"))
}

func TestLeave_LastMemberDestroysRoom(t *testing.T) {
	hub := newTestHub()
	conn := &fakeConn{}
	a := hub.Register(conn)
	hub.Join("42", a)
	require.Equal(t, 1, hub.RoomCount())

	hub.Leave("42", a)

	assert.Equal(t, 0, hub.RoomCount())
	assert.Nil(t, hub.RoomMembers("42"))
}

func TestDispatch_RelaysOfferVerbatimToTarget(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)
	hub.Join("42", a)
	hub.Join("42", b)

	raw := []byte(`{"type":"offer","target":"` + b.ID + `","sdp":"v=0 fake-sdp"}`)
	hub.Dispatch(a, raw)

	offers := connB.events(EventOffer)
	require.Len(t, offers, 1)
	assert.Equal(t, "v=0 fake-sdp", offers[0]["sdp"])
	assert.Empty(t, connA.events(EventOffer))
}

func TestRelay_UnknownTargetDroppedSilently(t *testing.T) {
	hub := newTestHub()
	connA := &fakeConn{}
	a := hub.Register(connA)
	hub.Join("42", a)

	hub.Dispatch(a, []byte(`{"type":"ice_candidate","target":"nobody","candidate":"c"}`))

	// Nothing delivered anywhere, no error surfaced to the sender
	assert.Empty(t, connA.events(EventICECandidate))
}

func TestRelay_WorksAcrossRooms(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)
	hub.Join("1", a)
	hub.Join("2", b)

	hub.Dispatch(a, []byte(`{"type":"answer","target":"`+b.ID+`","sdp":"x"}`))

	require.Len(t, connB.events(EventAnswer), 1)
}

func TestUnregister_LeavesRoomsAndNotifies(t *testing.T) {
	hub := newTestHub()
	connA, connB := &fakeConn{}, &fakeConn{}
	a := hub.Register(connA)
	b := hub.Register(connB)
	hub.Join("42", a)
	hub.Join("42", b)

	hub.Unregister(b)

	left := connA.events(EventUserLeft)
	require.Len(t, left, 1)
	assert.Equal(t, b.ID, left[0]["user_id"])
	assert.True(t, connB.closed)
	assert.Equal(t, []string{a.ID}, hub.RoomMembers("42"))

	// Relays to the gone client are dropped
	hub.Dispatch(a, []byte(`{"type":"offer","target":"`+b.ID+`","sdp":"x"}`))
	assert.Empty(t, connB.events(EventOffer))
}

func TestDispatch_MalformedAndUnknownMessagesIgnored(t *testing.T) {
	hub := newTestHub()
	connA := &fakeConn{}
	a := hub.Register(connA)

	hub.Dispatch(a, []byte(`{not json`))
	hub.Dispatch(a, []byte(`{"type":"mute_all"}`))

	assert.Equal(t, 0, hub.RoomCount())
}

func TestJoin_ConcurrentMembershipMutations(t *testing.T) {
	hub := newTestHub()

	var wg sync.WaitGroup
	clients := make([]*Client, 20)
	for i := range clients {
		clients[i] = hub.Register(&fakeConn{})
	}
	for _, c := range clients {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			hub.Join("stress", c)
		}(c)
	}
	wg.Wait()

	assert.Len(t, hub.RoomMembers("stress"), 20)
}
