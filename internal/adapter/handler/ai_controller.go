package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	aidto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/ai"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	meetinguse "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// AIController handles assistant endpoints
type AIController struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc meetinguse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// Summarize generates and stores a summary for a meeting
// @Summary      Summarize meeting
// @Description  Runs the assistant over the meeting's raw notes, stores the summary, merges tags and extracts action items
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      aidto.SummarizeRequest  true  "Meeting to summarize"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /api/ai/summarize [post]
func (h *AIController) Summarize(c echo.Context) error {
	var req aidto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id is required"))
	}

	result, err := h.svc.SummarizeMeeting(c.Request().Context(), req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, strconv.FormatUint(uint64(req.MeetingID), 10)))
	}
	return HandleSuccess(h.logger, c, presenter.ToSummarizeResponse(result))
}

// Ask answers a free-text question over all stored meetings
// @Summary      Ask the assistant
// @Description  Keyword search over stored meetings; returns a digest of matches
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      aidto.AskRequest  true  "Question"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /api/ai/ask [post]
func (h *AIController) Ask(c echo.Context) error {
	var req aidto.AskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	answer, err := h.svc.Ask(c.Request().Context(), req.Query)
	if err != nil {
		return HandleError(h.logger, c, mapUsecaseError(err, ""))
	}
	return HandleSuccess(h.logger, c, aidto.AskResponse{Answer: answer})
}
