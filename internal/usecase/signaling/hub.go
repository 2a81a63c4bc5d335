package signaling

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub is the process-wide signaling registry. It tracks which clients are
// connected and which room (keyed by meeting id) each one joined, and fans
// signaling messages out to room members. Rooms are created on first join
// and destroyed when the last member leaves. No delivery guarantee: a
// message to a disconnected target is silently dropped.
type Hub struct {
	mu           sync.RWMutex
	rooms        map[string]map[string]*Client
	clients      map[string]*Client
	writeTimeout time.Duration
	logger       *zap.Logger
}

// NewHub creates a new signaling hub
func NewHub(logger *zap.Logger, writeTimeout time.Duration) *Hub {
	return &Hub{
		rooms:        make(map[string]map[string]*Client),
		clients:      make(map[string]*Client),
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Register creates a client for a new connection, announces its assigned
// id and adds it to the registry.
func (h *Hub) Register(conn Conn) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		conn:         conn,
		writeTimeout: h.writeTimeout,
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	h.send(client, ConnectedEvent{Type: EventConnected, ClientID: client.ID})
	h.logger.Info("signaling.client.connected", zap.String("client_id", client.ID))
	return client
}

// Unregister removes a client from every room it joined (notifying the
// remaining members) and closes the connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client.ID)
	var affected [][]*Client
	for meetingID, members := range h.rooms {
		if _, ok := members[client.ID]; !ok {
			continue
		}
		delete(members, client.ID)
		if len(members) == 0 {
			delete(h.rooms, meetingID)
			continue
		}
		affected = append(affected, membersOf(members))
	}
	h.mu.Unlock()

	for _, members := range affected {
		h.broadcast(members, PresenceEvent{Type: EventUserLeft, UserID: client.ID})
	}

	client.close()
	h.logger.Info("signaling.client.disconnected", zap.String("client_id", client.ID))
}

// Dispatch routes one inbound message from a client
func (h *Hub) Dispatch(client *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Warn("signaling.message.malformed",
			zap.String("client_id", client.ID),
			zap.Error(err),
		)
		return
	}

	switch env.Type {
	case EventJoinCall:
		h.Join(env.MeetingID, client)
	case EventLeaveCall:
		h.Leave(env.MeetingID, client)
	case EventOffer, EventAnswer, EventICECandidate:
		h.Relay(env.Type, raw, client, env.Target)
	default:
		h.logger.Warn("signaling.message.unknown_type",
			zap.String("client_id", client.ID),
			zap.String("type", env.Type),
		)
	}
}

// Join adds the client to a room and notifies the existing members.
// Re-joining is idempotent for membership but re-emits the notification.
func (h *Hub) Join(meetingID string, client *Client) {
	if meetingID == "" {
		return
	}

	h.mu.Lock()
	room, ok := h.rooms[meetingID]
	if !ok {
		room = make(map[string]*Client)
		h.rooms[meetingID] = room
	}
	others := make([]*Client, 0, len(room))
	for id, member := range room {
		if id != client.ID {
			others = append(others, member)
		}
	}
	room[client.ID] = client
	h.mu.Unlock()

	h.broadcast(others, PresenceEvent{Type: EventUserJoined, UserID: client.ID})
	h.logger.Info("signaling.room.joined",
		zap.String("meeting_id", meetingID),
		zap.String("client_id", client.ID),
	)
}

// Leave removes the client from a room and notifies the remaining members
func (h *Hub) Leave(meetingID string, client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[meetingID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, member := room[client.ID]; !member {
		h.mu.Unlock()
		return
	}
	delete(room, client.ID)
	remaining := membersOf(room)
	if len(room) == 0 {
		delete(h.rooms, meetingID)
	}
	h.mu.Unlock()

	h.broadcast(remaining, PresenceEvent{Type: EventUserLeft, UserID: client.ID})
	h.logger.Info("signaling.room.left",
		zap.String("meeting_id", meetingID),
		zap.String("client_id", client.ID),
	)
}

// Relay forwards the payload verbatim to the target client. Targets are
// looked up in the global registry, not the sender's room; when the two
// share no room that is logged but delivery proceeds.
func (h *Hub) Relay(msgType string, raw []byte, sender *Client, targetID string) {
	h.mu.RLock()
	target, ok := h.clients[targetID]
	sharedRoom := h.shareRoomLocked(sender.ID, targetID)
	h.mu.RUnlock()

	if !ok {
		// Best-effort: drop without surfacing an error to the sender
		h.logger.Debug("signaling.relay.target_gone",
			zap.String("type", msgType),
			zap.String("target", targetID),
		)
		return
	}

	if !sharedRoom {
		h.logger.Warn("signaling.relay.no_shared_room",
			zap.String("type", msgType),
			zap.String("sender", sender.ID),
			zap.String("target", targetID),
		)
	}

	if err := target.sendRaw(raw); err != nil {
		h.logger.Warn("signaling.relay.write_failed",
			zap.String("type", msgType),
			zap.String("target", targetID),
			zap.Error(err),
		)
	}
}

// RoomMembers returns the client ids currently in a room
func (h *Hub) RoomMembers(meetingID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, ok := h.rooms[meetingID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(room))
	for id := range room {
		ids = append(ids, id)
	}
	return ids
}

// RoomCount returns the number of live rooms
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

func (h *Hub) shareRoomLocked(senderID, targetID string) bool {
	for _, room := range h.rooms {
		if _, s := room[senderID]; !s {
			continue
		}
		if _, t := room[targetID]; t {
			return true
		}
	}
	return false
}

func (h *Hub) broadcast(members []*Client, event PresenceEvent) {
	for _, member := range members {
		h.send(member, event)
	}
}

func (h *Hub) send(client *Client, v interface{}) {
	if err := client.sendJSON(v); err != nil {
		h.logger.Warn("signaling.send_failed",
			zap.String("client_id", client.ID),
			zap.Error(err),
		)
	}
}

func membersOf(room map[string]*Client) []*Client {
	out := make([]*Client, 0, len(room))
	for _, member := range room {
		out = append(out, member)
	}
	return out
}
