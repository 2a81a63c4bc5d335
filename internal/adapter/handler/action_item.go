package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	meetinguse "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// ActionItem handles action item endpoints
type ActionItem struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewActionItem creates a new action item handler
func NewActionItem(svc meetinguse.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{svc: svc, logger: logger}
}

// List returns all action items
// @Summary      List action items
// @Tags         ActionItems
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/action-items [get]
func (h *ActionItem) List(c echo.Context) error {
	items, err := h.svc.ListActionItems(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemListResponse(items))
}

// Update partially updates an action item's status and owner
// @Summary      Update action item
// @Description  Partial update of status and owner only
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Action item ID"
// @Param        request  body      dto.UpdateActionItemRequest  true  "Fields to update"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /api/action-items/{id} [put]
func (h *ActionItem) Update(c echo.Context) error {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid action item id"))
	}

	var req dto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		status := ""
		if req.Status != nil {
			status = *req.Status
		}
		return HandleError(h.logger, c, errors.ErrInvalidStatus(status))
	}

	item, err := h.svc.UpdateActionItem(c.Request().Context(), uint(id), meetinguse.UpdateActionItemInput{
		Status: req.Status,
		Owner:  req.Owner,
	})
	if err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, raw))
	}
	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(item))
}
