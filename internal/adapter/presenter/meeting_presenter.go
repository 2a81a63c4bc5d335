package presenter

import (
	aidto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/ai"
	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	meetinguse "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO.
// The jsonb list columns are decoded here so the wire always carries
// native arrays.
func ToMeetingResponse(m *entities.Meeting) *dto.MeetingResponse {
	if m == nil {
		return nil
	}

	return &dto.MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Datetime:     m.Datetime,
		Participants: m.ParticipantList(),
		RawNotes:     m.RawNotes,
		AISummary:    m.AISummary,
		Tags:         m.TagList(),
		MeetingLink:  m.MeetingLink,
		CreatedAt:    m.CreatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) []*dto.MeetingResponse {
	responses := make([]*dto.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(item *entities.ActionItem) dto.ActionItemResponse {
	return dto.ActionItemResponse{
		ID:          item.ID,
		MeetingID:   item.MeetingID,
		Description: item.Description,
		Owner:       item.Owner,
		DueDate:     item.DueDate,
		Status:      string(item.Status),
	}
}

// ToActionItemListResponse converts a slice of ActionItem entities
func ToActionItemListResponse(items []*entities.ActionItem) []dto.ActionItemResponse {
	responses := make([]dto.ActionItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToActionItemResponse(item)
	}
	return responses
}

// ToMeetingDetailResponse converts a meeting and its action items
func ToMeetingDetailResponse(m *entities.Meeting, items []*entities.ActionItem) *dto.MeetingDetailResponse {
	return &dto.MeetingDetailResponse{
		MeetingResponse: *ToMeetingResponse(m),
		ActionItems:     ToActionItemListResponse(items),
	}
}

// ToSummarizeResponse converts a summarize result
func ToSummarizeResponse(result *meetinguse.SummarizeResult) *aidto.SummarizeResponse {
	return &aidto.SummarizeResponse{
		Summary:     result.Summary,
		Tags:        result.Tags,
		ActionItems: ToActionItemListResponse(result.ActionItems),
	}
}
