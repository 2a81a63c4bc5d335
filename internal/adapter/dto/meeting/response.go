package meeting

import "time"

// MeetingResponse is the wire representation of a meeting
type MeetingResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Datetime     time.Time `json:"datetime"`
	Participants []string  `json:"participants"`
	RawNotes     string    `json:"raw_notes"`
	AISummary    string    `json:"ai_summary"`
	Tags         []string  `json:"tags"`
	MeetingLink  string    `json:"meeting_link"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActionItemResponse is the wire representation of an action item
type ActionItemResponse struct {
	ID          uint       `json:"id"`
	MeetingID   uint       `json:"meeting_id"`
	Description string     `json:"description"`
	Owner       string     `json:"owner"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
}

// MeetingDetailResponse is a meeting together with its action items
type MeetingDetailResponse struct {
	MeetingResponse
	ActionItems []ActionItemResponse `json:"action_items"`
}

// DeleteMeetingResponse confirms a deletion
type DeleteMeetingResponse struct {
	Message string `json:"message"`
}
