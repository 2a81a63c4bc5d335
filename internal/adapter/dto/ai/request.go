package ai

// SummarizeRequest asks the assistant to summarize a stored meeting
type SummarizeRequest struct {
	MeetingID uint `json:"meeting_id" validate:"required"`
}

// AskRequest is a free-text question over stored meetings
type AskRequest struct {
	Query string `json:"query"`
}
