package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

// DefaultTitle is used when a meeting is created without a title
const DefaultTitle = "Untitled Meeting"

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title        string
	Participants []string
	RawNotes     string
	Tags         []string
}

// UpdateMeetingInput represents a partial meeting update; nil fields are
// left untouched
type UpdateMeetingInput struct {
	Title        *string
	RawNotes     *string
	AISummary    *string
	MeetingLink  *string
	Participants *[]string
	Tags         *[]string
}

// UpdateActionItemInput represents a partial action item update
type UpdateActionItemInput struct {
	Status *string
	Owner  *string
}

// SummarizeResult is the outcome of running the assistant over a meeting
type SummarizeResult struct {
	Summary     string
	Tags        []string
	ActionItems []*entities.ActionItem
}

// Service handles meeting and action item business logic
type Service interface {
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)
	GetMeeting(ctx context.Context, id uint) (*entities.Meeting, []*entities.ActionItem, error)
	UpdateMeeting(ctx context.Context, id uint, input UpdateMeetingInput) (*entities.Meeting, error)
	DeleteMeeting(ctx context.Context, id uint) error
	ListActionItems(ctx context.Context) ([]*entities.ActionItem, error)
	UpdateActionItem(ctx context.Context, id uint, input UpdateActionItemInput) (*entities.ActionItem, error)
	SummarizeMeeting(ctx context.Context, meetingID uint) (*SummarizeResult, error)
	Ask(ctx context.Context, query string) (string, error)
}

type service struct {
	meetingRepo repositories.MeetingRepository
	itemRepo    repositories.ActionItemRepository
	assistant   ai.Assistant
	now         func() time.Time
}

// NewService creates a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	itemRepo repositories.ActionItemRepository,
	assistant ai.Assistant,
) Service {
	return &service{
		meetingRepo: meetingRepo,
		itemRepo:    itemRepo,
		assistant:   assistant,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListMeetings retrieves all meetings ordered by datetime descending
func (s *service) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// CreateMeeting creates a meeting, applying defaults for omitted fields
func (s *service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	meeting := &entities.Meeting{
		Title:    title,
		Datetime: s.now(),
		RawNotes: input.RawNotes,
	}
	meeting.SetParticipantList(input.Participants)
	meeting.SetTagList(input.Tags)

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting together with its action items
func (s *service) GetMeeting(ctx context.Context, id uint) (*entities.Meeting, []*entities.ActionItem, error) {
	meeting, err := s.findMeeting(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.itemRepo.FindByMeetingID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load action items: %w", err)
	}
	return meeting, items, nil
}

// UpdateMeeting applies a partial update; fields absent from the input
// retain their prior values
func (s *service) UpdateMeeting(ctx context.Context, id uint, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.findMeeting(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		meeting.Title = *input.Title
	}
	if input.RawNotes != nil {
		meeting.RawNotes = *input.RawNotes
	}
	if input.AISummary != nil {
		meeting.AISummary = *input.AISummary
	}
	if input.MeetingLink != nil {
		meeting.MeetingLink = *input.MeetingLink
	}
	if input.Participants != nil {
		meeting.SetParticipantList(*input.Participants)
	}
	if input.Tags != nil {
		meeting.SetTagList(*input.Tags)
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting removes a meeting and cascades to its action items
func (s *service) DeleteMeeting(ctx context.Context, id uint) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// ListActionItems retrieves all action items
func (s *service) ListActionItems(ctx context.Context) ([]*entities.ActionItem, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// UpdateActionItem applies a partial update of status and owner
func (s *service) UpdateActionItem(ctx context.Context, id uint, input UpdateActionItemInput) (*entities.ActionItem, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}

	if input.Status != nil {
		status := entities.ActionItemStatus(*input.Status)
		if !status.IsValid() {
			return nil, usecaseErrors.ErrInvalidStatus
		}
		item.Status = status
	}
	if input.Owner != nil {
		item.Owner = *input.Owner
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// SummarizeMeeting runs the assistant over a meeting's notes, stores the
// summary, merges tags as a set union and persists extracted action items
func (s *service) SummarizeMeeting(ctx context.Context, meetingID uint) (*SummarizeResult, error) {
	meeting, err := s.findMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	summary, err := s.assistant.Summarize(meeting.RawNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize notes: %w", err)
	}

	items := make([]*entities.ActionItem, 0, len(summary.ActionItems))
	for _, draft := range summary.ActionItems {
		item := &entities.ActionItem{
			MeetingID:   meeting.ID,
			Description: draft.Description,
			Owner:       draft.Owner,
			Status:      draft.Status,
		}
		if item.Owner == "" {
			item.Owner = entities.DefaultOwner
		}
		if draft.DueDate != "" {
			due, err := time.Parse(time.RFC3339, draft.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidDueDate, draft.DueDate)
			}
			item.DueDate = &due
		}
		items = append(items, item)
	}

	mergedTags := mergeTagSets(meeting.TagList(), summary.Tags)
	meeting.AISummary = summary.Text
	meeting.SetTagList(mergedTags)

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to store summary: %w", err)
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to persist action items: %w", err)
	}

	return &SummarizeResult{
		Summary:     summary.Text,
		Tags:        mergedTags,
		ActionItems: items,
	}, nil
}

// Ask answers a free-text question over all stored meetings
func (s *service) Ask(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", usecaseErrors.ErrEmptyQuery
	}

	meetings, err := s.meetingRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load meetings: %w", err)
	}
	return s.assistant.Answer(query, meetings), nil
}

func (s *service) findMeeting(ctx context.Context, id uint) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// mergeTagSets unions existing and new tags, keeping first-seen order so
// repeated summarize calls do not grow the set
func mergeTagSets(existing, added []string) []string {
	merged := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]struct{}, len(existing)+len(added))
	for _, lists := range [][]string{existing, added} {
		for _, tag := range lists {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
