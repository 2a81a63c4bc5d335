package signaling

// Inbound event types
const (
	EventJoinCall     = "join_call"
	EventOffer        = "offer"
	EventAnswer       = "answer"
	EventICECandidate = "ice_candidate"
	EventLeaveCall    = "leave_call"
)

// Outbound event types
const (
	EventConnected  = "connected"
	EventUserJoined = "user_joined"
	EventUserLeft   = "user_left"
)

// Envelope carries the routing fields of an inbound signaling message.
// Offer/answer/candidate payloads are relayed verbatim, so everything
// beyond these fields stays opaque to the relay.
type Envelope struct {
	Type      string `json:"type"`
	MeetingID string `json:"meeting_id,omitempty"`
	Target    string `json:"target,omitempty"`
}

// ConnectedEvent tells a client its assigned id
type ConnectedEvent struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id"`
}

// PresenceEvent notifies room members about a join or leave
type PresenceEvent struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}
