package signup_player

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventModels "github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	signupPlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/signup_player"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *signupPlayer.Response
	err     error
	lastReq *signupPlayer.Request
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *signupPlayer.Request) (*signupPlayer.Response, error) {
	uc.lastReq = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

func doRequest(uc *fakeUseCase, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/groups/{groupId}/events/{eventId}/tee-times/{teeTimeId}/players",
		NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ReturnsUpdatedEvent(t *testing.T) {
	uc := &fakeUseCase{resp: &signupPlayer.Response{
		PlayerID:  42,
		TeeTimeID: 7,
		Remaining: 2,
		Event: &domain.Event{
			ID:      5,
			GroupID: 1,
			Name:    "Saturday Round",
			Type:    domain.EventTypeTeeTime,
			TeeTimes: []domain.TeeTime{
				{
					ID: 7, EventID: 5, Time: "07:00", Capacity: 4,
					Players: []domain.Player{
						{ID: 42, TeeTimeID: 7, Name: "Alice", Email: "alice@example.com",
							JoinedAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)},
					},
				},
			},
		},
	}}

	rec := doRequest(uc, "/api/groups/1/events/5/tee-times/7/players",
		`{"name":"Alice","email":"alice@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.GroupID)
	assert.Equal(t, int64(5), uc.lastReq.EventID)
	assert.Equal(t, int64(7), uc.lastReq.TeeTimeID)

	var body eventModels.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	require.Len(t, body.TeeTimes, 1)
	assert.Equal(t, 3, body.TeeTimes[0].Remaining)
	require.Len(t, body.TeeTimes[0].Players, 1)
	assert.Equal(t, "Alice", body.TeeTimes[0].Players[0].Name)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "full slot", err: signupPlayer.ErrTeeTimeFull, wantStatus: http.StatusBadRequest, wantMsg: "Tee time is full"},
		{name: "group not found", err: signupPlayer.ErrGroupNotFound, wantStatus: http.StatusNotFound, wantMsg: "Group not found"},
		{name: "event not found", err: signupPlayer.ErrEventNotFound, wantStatus: http.StatusNotFound, wantMsg: "Event not found"},
		{name: "tee time not found", err: signupPlayer.ErrTeeTimeNotFound, wantStatus: http.StatusNotFound, wantMsg: "Tee time not found"},
		{name: "invalid input", err: signupPlayer.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: "name and email required"},
		{name: "internal", err: signupPlayer.ErrInternal, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err},
				"/api/groups/1/events/5/tee-times/7/players",
				`{"name":"Alice","email":"alice@example.com"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestHandle_BadPathAndBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(uc, "/api/groups/abc/events/5/tee-times/7/players", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(uc, "/api/groups/1/events/5/tee-times/7/players", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}
