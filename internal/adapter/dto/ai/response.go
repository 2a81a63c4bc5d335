package ai

import meetingdto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"

// SummarizeResponse carries the generated summary, the merged tag set and
// the persisted action items
type SummarizeResponse struct {
	Summary     string                          `json:"summary"`
	Tags        []string                        `json:"tags"`
	ActionItems []meetingdto.ActionItemResponse `json:"action_items"`
}

// AskResponse carries the assistant's answer
type AskResponse struct {
	Answer string `json:"answer"`
}
