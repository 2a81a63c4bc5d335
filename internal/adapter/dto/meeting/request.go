package meeting

// CreateMeetingRequest represents the request to create a meeting.
// Every field is optional; defaults are applied server-side.
type CreateMeetingRequest struct {
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
	RawNotes     string   `json:"raw_notes"`
	Tags         []string `json:"tags"`
}

// UpdateMeetingRequest represents a partial meeting update; absent keys
// leave the stored values untouched
type UpdateMeetingRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	RawNotes     *string   `json:"raw_notes,omitempty"`
	AISummary    *string   `json:"ai_summary,omitempty"`
	MeetingLink  *string   `json:"meeting_link,omitempty" validate:"omitempty,max=500"`
	Participants *[]string `json:"participants,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

// UpdateActionItemRequest represents a partial action item update
type UpdateActionItemRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
	Owner  *string `json:"owner,omitempty" validate:"omitempty,min=1,max=100"`
}
