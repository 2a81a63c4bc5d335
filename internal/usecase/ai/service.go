package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ActionItemDraft is an action item extracted from notes, before persistence.
// DueDate is an RFC3339 string; the consumer parses it and rejects malformed
// values instead of defaulting.
type ActionItemDraft struct {
	Description string
	Owner       string
	DueDate     string
	Status      entities.ActionItemStatus
}

// Summary is the result of summarizing meeting notes
type Summary struct {
	Text        string
	ActionItems []ActionItemDraft
	Tags        []string
}

// Assistant generates summaries and answers questions over stored meetings.
// The mock is the only implementation; a model-backed one plugs in here
// without touching the API layer.
type Assistant interface {
	// Summarize derives a summary, action items and tags from raw notes
	Summarize(notes string) (Summary, error)

	// Answer responds to a free-text query over the given meetings
	Answer(query string, meetings []*entities.Meeting) string
}

const (
	noNotesSummary = "No notes provided to summarize."
	noMatchAnswer  = "I couldn't find any meetings related to your query. " +
		"Try asking about specific topics discussed in your meetings, or create some meetings first!"

	notesSnippetLimit   = 150
	summarySnippetLimit = 100
	maxDigestMeetings   = 5
)

// mockAssistant is a keyword-based stand-in for a real model
type mockAssistant struct {
	now func() time.Time
}

// NewMockAssistant creates the mock assistant
func NewMockAssistant() Assistant {
	return &mockAssistant{now: time.Now}
}

// newMockAssistantWithClock pins the clock for deterministic tests
func newMockAssistantWithClock(now func() time.Time) Assistant {
	return &mockAssistant{now: now}
}

// Summarize derives a summary, action items and tags from raw notes
func (a *mockAssistant) Summarize(notes string) (Summary, error) {
	if notes == "" {
		return Summary{Text: noNotesSummary}, nil
	}

	lower := strings.ToLower(notes)
	now := a.now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Meeting Summary (Generated %s):\n", now.Format("15:04"))
	sb.WriteString("The team discussed key project milestones. ")
	if strings.Contains(lower, "frontend") {
		sb.WriteString("Frontend implementation details were reviewed. ")
	}
	if strings.Contains(lower, "backend") {
		sb.WriteString("Backend architecture was finalized. ")
	}

	var items []ActionItemDraft
	if strings.Contains(lower, "todo") || strings.Contains(lower, "action") {
		items = append(items, ActionItemDraft{
			Description: "Review the deployment pipeline",
			Owner:       "DevOps Team",
			DueDate:     now.Add(48 * time.Hour).Format(time.RFC3339),
			Status:      entities.ActionItemStatusPending,
		})
	}
	// The follow-up item is always extracted
	items = append(items, ActionItemDraft{
		Description: "Follow up on meeting points",
		Owner:       "Meeting Organizer",
		DueDate:     now.Add(24 * time.Hour).Format(time.RFC3339),
		Status:      entities.ActionItemStatusPending,
	})

	tags := []string{"meeting", "update"}
	if strings.Contains(lower, "urgent") {
		tags = append(tags, "urgent")
	}

	return Summary{Text: sb.String(), ActionItems: items, Tags: tags}, nil
}

// Answer responds to a free-text query over the given meetings. A meeting is
// relevant when any whitespace-separated keyword of the query is a substring
// of its title, notes or summary. Relevance is boolean and input order is
// preserved.
func (a *mockAssistant) Answer(query string, meetings []*entities.Meeting) string {
	keywords := strings.Fields(strings.ToLower(query))

	var relevant []*entities.Meeting
	for _, m := range meetings {
		content := strings.ToLower(m.SearchableContent())
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				relevant = append(relevant, m)
				break
			}
		}
	}

	if len(relevant) == 0 {
		return noMatchAnswer
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d relevant meeting(s):\n\n", len(relevant))
	if len(relevant) > maxDigestMeetings {
		relevant = relevant[:maxDigestMeetings]
	}
	for _, m := range relevant {
		fmt.Fprintf(&sb, "📅 **%s** (%s)\n", m.Title, m.Datetime.Format("2006-01-02 15:04"))
		if m.RawNotes != "" {
			fmt.Fprintf(&sb, "   Notes: %s\n", truncate(m.RawNotes, notesSnippetLimit))
		}
		if m.AISummary != "" {
			fmt.Fprintf(&sb, "   Summary: %s\n", truncate(m.AISummary, summarySnippetLimit))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// truncate limits a snippet to a number of characters, not bytes, so
// multibyte notes keep their full length and no rune is split.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return s
}
