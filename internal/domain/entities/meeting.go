package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Meeting represents a recorded meeting with its notes and derived AI artifacts
type Meeting struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Datetime     time.Time      `gorm:"not null;index" json:"datetime"`
	Participants datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"participants"`
	RawNotes     string         `gorm:"type:text;default:''" json:"raw_notes"`
	AISummary    string         `gorm:"type:text;default:''" json:"ai_summary"`
	Tags         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	MeetingLink  string         `gorm:"type:varchar(500);default:''" json:"meeting_link"`
	CreatedAt    time.Time      `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// ParticipantList decodes the participants column. Absent or malformed
// values read as an empty list.
func (m *Meeting) ParticipantList() []string {
	return decodeStringList(m.Participants)
}

// SetParticipantList encodes a participant list into the jsonb column.
func (m *Meeting) SetParticipantList(participants []string) {
	m.Participants = encodeStringList(participants)
}

// TagList decodes the tags column. Absent or malformed values read as an
// empty list.
func (m *Meeting) TagList() []string {
	return decodeStringList(m.Tags)
}

// SetTagList deduplicates tags (first occurrence wins) and encodes them
// into the jsonb column. Tags are semantically a set.
func (m *Meeting) SetTagList(tags []string) {
	m.Tags = encodeStringList(dedupeStrings(tags))
}

// SearchableContent concatenates the fields the retrieval service scans.
func (m *Meeting) SearchableContent() string {
	return m.Title + " " + m.RawNotes + " " + m.AISummary
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func encodeStringList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
