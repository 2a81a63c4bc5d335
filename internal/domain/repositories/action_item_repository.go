package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch persists a set of action items
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id uint) (*entities.ActionItem, error)

	// FindByMeetingID retrieves all action items belonging to a meeting
	FindByMeetingID(ctx context.Context, meetingID uint) ([]*entities.ActionItem, error)

	// FindAll retrieves all action items
	FindAll(ctx context.Context) ([]*entities.ActionItem, error)

	// Update updates an existing action item
	Update(ctx context.Context, item *entities.ActionItem) error
}
