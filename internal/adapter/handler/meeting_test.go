package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	meetinguse "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/pkg/validator"
)

// fakeService is a hand-rolled Service stub; each field overrides one method
type fakeService struct {
	listMeetings     func(ctx context.Context) ([]*entities.Meeting, error)
	createMeeting    func(ctx context.Context, input meetinguse.CreateMeetingInput) (*entities.Meeting, error)
	getMeeting       func(ctx context.Context, id uint) (*entities.Meeting, []*entities.ActionItem, error)
	updateMeeting    func(ctx context.Context, id uint, input meetinguse.UpdateMeetingInput) (*entities.Meeting, error)
	deleteMeeting    func(ctx context.Context, id uint) error
	listActionItems  func(ctx context.Context) ([]*entities.ActionItem, error)
	updateActionItem func(ctx context.Context, id uint, input meetinguse.UpdateActionItemInput) (*entities.ActionItem, error)
	summarizeMeeting func(ctx context.Context, meetingID uint) (*meetinguse.SummarizeResult, error)
	ask              func(ctx context.Context, query string) (string, error)
}

func (f *fakeService) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	return f.listMeetings(ctx)
}

func (f *fakeService) CreateMeeting(ctx context.Context, input meetinguse.CreateMeetingInput) (*entities.Meeting, error) {
	return f.createMeeting(ctx, input)
}

func (f *fakeService) GetMeeting(ctx context.Context, id uint) (*entities.Meeting, []*entities.ActionItem, error) {
	return f.getMeeting(ctx, id)
}

func (f *fakeService) UpdateMeeting(ctx context.Context, id uint, input meetinguse.UpdateMeetingInput) (*entities.Meeting, error) {
	return f.updateMeeting(ctx, id, input)
}

func (f *fakeService) DeleteMeeting(ctx context.Context, id uint) error {
	return f.deleteMeeting(ctx, id)
}

func (f *fakeService) ListActionItems(ctx context.Context) ([]*entities.ActionItem, error) {
	return f.listActionItems(ctx)
}

func (f *fakeService) UpdateActionItem(ctx context.Context, id uint, input meetinguse.UpdateActionItemInput) (*entities.ActionItem, error) {
	return f.updateActionItem(ctx, id, input)
}

func (f *fakeService) SummarizeMeeting(ctx context.Context, meetingID uint) (*meetinguse.SummarizeResult, error) {
	return f.summarizeMeeting(ctx, meetingID)
}

func (f *fakeService) Ask(ctx context.Context, query string) (string, error) {
	return f.ask(ctx, query)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMeetingCreate_ReturnsCreatedEnvelope(t *testing.T) {
	svc := &fakeService{
		createMeeting: func(_ context.Context, input meetinguse.CreateMeetingInput) (*entities.Meeting, error) {
			m := &entities.Meeting{ID: 7, Title: input.Title, RawNotes: input.RawNotes}
			m.SetParticipantList(input.Participants)
			m.SetTagList(input.Tags)
			return m, nil
		},
	}
	h := NewMeeting(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/meetings",
		`{"title":"Sprint Planning","participants":["alice","bob"],"raw_notes":"notes"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "Sprint Planning", data["title"])
}

func TestMeetingGet_UnknownIDReturns404(t *testing.T) {
	svc := &fakeService{
		getMeeting: func(_ context.Context, _ uint) (*entities.Meeting, []*entities.ActionItem, error) {
			return nil, nil, usecaseErrors.ErrMeetingNotFound
		},
	}
	h := NewMeeting(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/meetings/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Meeting not found", body["message"])
}

func TestMeetingGet_NonNumericIDReturns400(t *testing.T) {
	h := NewMeeting(&fakeService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/meetings/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetingDelete_UnknownIDReturns404(t *testing.T) {
	svc := &fakeService{
		deleteMeeting: func(_ context.Context, _ uint) error {
			return usecaseErrors.ErrMeetingNotFound
		},
	}
	h := NewMeeting(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodDelete, "/api/meetings/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeetingDelete_ReturnsConfirmation(t *testing.T) {
	svc := &fakeService{
		deleteMeeting: func(_ context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			return nil
		},
	}
	h := NewMeeting(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodDelete, "/api/meetings/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Meeting deleted", data["message"])
}

func TestActionItemUpdate_NonNumericIDReturns400(t *testing.T) {
	h := NewActionItem(&fakeService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPut, "/api/action-items/abc", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid action item id", body["message"])
}

func TestActionItemUpdate_InvalidStatusReturns400(t *testing.T) {
	h := NewActionItem(&fakeService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPut, "/api/action-items/3", `{"status":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid action item status", body["message"])
}

func TestActionItemUpdate_ValidStatusSucceeds(t *testing.T) {
	svc := &fakeService{
		updateActionItem: func(_ context.Context, id uint, input meetinguse.UpdateActionItemInput) (*entities.ActionItem, error) {
			require.NotNil(t, input.Status)
			return &entities.ActionItem{ID: id, MeetingID: 1, Description: "Ship it", Status: entities.ActionItemStatusCompleted}, nil
		},
	}
	h := NewActionItem(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPut, "/api/action-items/3", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "completed", data["status"])
}

func TestAIAsk_EmptyQueryReturns400(t *testing.T) {
	svc := &fakeService{
		ask: func(_ context.Context, query string) (string, error) {
			return "", usecaseErrors.ErrEmptyQuery
		},
	}
	h := NewAIController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/ask", `{"query":""}`)
	require.NoError(t, h.Ask(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Query required", body["message"])
}

func TestAIAsk_ReturnsAnswer(t *testing.T) {
	svc := &fakeService{
		ask: func(_ context.Context, query string) (string, error) {
			assert.Equal(t, "deadline", query)
			return "I found 1 relevant meeting(s):", nil
		},
	}
	h := NewAIController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/ask", `{"query":"deadline"}`)
	require.NoError(t, h.Ask(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data["answer"], "relevant meeting")
}

func TestAISummarize_MissingMeetingIDReturns400(t *testing.T) {
	h := NewAIController(&fakeService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/summarize", `{}`)
	require.NoError(t, h.Summarize(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAISummarize_UnknownMeetingReturns404(t *testing.T) {
	svc := &fakeService{
		summarizeMeeting: func(_ context.Context, _ uint) (*meetinguse.SummarizeResult, error) {
			return nil, usecaseErrors.ErrMeetingNotFound
		},
	}
	h := NewAIController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/summarize", `{"meeting_id":42}`)
	require.NoError(t, h.Summarize(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAISummarize_ReturnsSummaryEnvelope(t *testing.T) {
	svc := &fakeService{
		summarizeMeeting: func(_ context.Context, meetingID uint) (*meetinguse.SummarizeResult, error) {
			assert.Equal(t, uint(42), meetingID)
			return &meetinguse.SummarizeResult{
				Summary: "Meeting Summary (Generated 09:30):",
				Tags:    []string{"meeting", "update"},
				ActionItems: []*entities.ActionItem{
					{ID: 1, MeetingID: 42, Description: "Follow up on meeting points", Owner: "Meeting Organizer", Status: entities.ActionItemStatusPending},
				},
			}, nil
		},
	}
	h := NewAIController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/summarize", `{"meeting_id":42}`)
	require.NoError(t, h.Summarize(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data["summary"], "Meeting Summary")

	items := data["action_items"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Meeting Organizer", first["owner"])
}
