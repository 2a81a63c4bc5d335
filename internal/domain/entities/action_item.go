package entities

import "time"

// ActionItemStatus represents the lifecycle state of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in-progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

// IsValid reports whether the status is one of the known values.
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted:
		return true
	}
	return false
}

// DefaultOwner is assigned when no owner is extracted for an action item.
const DefaultOwner = "Unassigned"

// ActionItem represents a task derived from a meeting
type ActionItem struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	MeetingID   uint             `gorm:"not null;index" json:"meeting_id"`
	Meeting     *Meeting         `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
	Description string           `gorm:"type:varchar(500);not null" json:"description"`
	Owner       string           `gorm:"type:varchar(100);default:'Unassigned'" json:"owner"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Status      ActionItemStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}
