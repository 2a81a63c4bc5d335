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

// Meeting handles meeting CRUD endpoints
type Meeting struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(svc meetinguse.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// List returns all meetings
// @Summary      List meetings
// @Description  Returns all meetings ordered by datetime descending
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/meetings [get]
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.svc.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// Create creates a meeting
// @Summary      Create meeting
// @Description  Creates a meeting; omitted fields get defaults
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateMeetingRequest  true  "Meeting fields"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /api/meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	meeting, err := h.svc.CreateMeeting(c.Request().Context(), meetinguse.CreateMeetingInput{
		Title:        req.Title,
		Participants: req.Participants,
		RawNotes:     req.RawNotes,
		Tags:         req.Tags,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(meeting))
}

// Get returns one meeting with its action items
// @Summary      Get meeting
// @Description  Returns a meeting together with its action items
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meeting, items, err := h.svc.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, c.Param("id")))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingDetailResponse(meeting, items))
}

// Update partially updates a meeting
// @Summary      Update meeting
// @Description  Partial update; absent keys keep their stored values
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Meeting ID"
// @Param        request  body      dto.UpdateMeetingRequest  true  "Fields to update"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /api/meetings/{id} [put]
func (h *Meeting) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dto.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meeting, err := h.svc.UpdateMeeting(c.Request().Context(), id, meetinguse.UpdateMeetingInput{
		Title:        req.Title,
		RawNotes:     req.RawNotes,
		AISummary:    req.AISummary,
		MeetingLink:  req.MeetingLink,
		Participants: req.Participants,
		Tags:         req.Tags,
	})
	if err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, c.Param("id")))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(meeting))
}

// Delete removes a meeting and its action items
// @Summary      Delete meeting
// @Description  Deletes a meeting; its action items are cascade-deleted
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, c.Param("id")))
	}
	return HandleSuccess(h.logger, c, dto.DeleteMeetingResponse{Message: "Meeting deleted"})
}

// parseID reads the numeric id path parameter
func parseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.ErrInvalidMeetingID(raw)
	}
	return uint(id), nil
}
