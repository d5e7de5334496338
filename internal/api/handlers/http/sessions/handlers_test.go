package sessions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"sportapp/internal/api/handlers/http/sessions"
	mock_sessions "sportapp/internal/api/handlers/http/sessions/mocks"
	"sportapp/internal/domain"
	"sportapp/internal/middleware"
	"sportapp/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withCaller(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithCallerID(r.Context(), id))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestStartSession_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	userID, sportID := uuid.New(), uuid.New()
	startedAt := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)
	body := `{"user_id":"` + userID.String() + `","sport_id":"` + sportID.String() +
		`","started_at":"2024-05-01T07:00:00Z","initial_location":{"latitude":10,"longitude":10}}`

	req := httptest.NewRequest(http.MethodPost, "/sport-session/", bytes.NewBufferString(body))
	req = withCaller(req, userID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Start(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in domain.StartSessionRequest) (*domain.SportSession, error) {
			if in.UserID != userID || in.SportID != sportID || !in.StartedAt.Equal(startedAt) {
				t.Fatalf("unexpected request %+v", in)
			}
			if in.InitialLocation == nil || in.InitialLocation.Latitude != 10 {
				t.Fatalf("initial location not decoded: %+v", in.InitialLocation)
			}
			return &domain.SportSession{
				SessionID: uuid.New(),
				UserID:    userID,
				SportID:   sportID,
				StartedAt: startedAt,
				IsActive:  true,
				Locations: []domain.Location{{LocationInput: *in.InitialLocation}},
			}, nil
		}).
		Times(1)

	h.StartSession(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["is_active"] != true || got["user_id"] != userID.String() {
		t.Fatalf("unexpected body %v", got)
	}
	if locs, _ := got["locations"].([]any); len(locs) != 1 {
		t.Fatalf("expected one location, got %v", got["locations"])
	}
}

func TestStartSession_CallerMismatch_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	body := `{"user_id":"` + uuid.NewString() + `","sport_id":"` + uuid.NewString() + `","started_at":"2024-05-01T07:00:00Z"}`
	req := withCaller(httptest.NewRequest(http.MethodPost, "/sport-session/", bytes.NewBufferString(body)), uuid.New())
	rr := httptest.NewRecorder()

	svc.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, e.Wrap("start", e.ErrForbidden))

	h.StartSession(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestStartSession_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := sessions.NewHandler(newTestLogger(), mock_sessions.NewMockSportSessions(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/sport-session/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.StartSession(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
	got := decodeJSON[struct {
		Message struct {
			Errors []e.FieldError `json:"errors"`
		} `json:"message"`
	}](t, rr)
	if len(got.Message.Errors) != 1 || got.Message.Errors[0].Loc[0] != "body" {
		t.Fatalf("unexpected validation body %s", rr.Body.String())
	}
}

func TestAddLocation_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not owner", err: e.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing session", err: e.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "Sport session not found"},
		{name: "finished session", err: e.ErrLocked, wantStatus: http.StatusLocked, wantMsg: "Sport session is not active"},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_sessions.NewMockSportSessions(ctrl)
			h := sessions.NewHandler(newTestLogger(), svc)

			sessionID, caller := uuid.New(), uuid.New()
			req := httptest.NewRequest(http.MethodPut, "/sport-session/"+sessionID.String()+"/location",
				bytes.NewBufferString(`{"latitude":10.1,"longitude":10.1}`))
			req = withCaller(addChiURLParam(req, "id", sessionID.String()), caller)
			rr := httptest.NewRecorder()

			svc.EXPECT().
				AppendLocation(gomock.Any(), sessionID, caller, domain.LocationInput{Latitude: 10.1, Longitude: 10.1}).
				Return(nil, e.Wrap("append", tt.err))

			h.AddLocation(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d, body=%s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if tt.wantMsg != "" {
				got := decodeJSON[map[string]string](t, rr)
				if got["message"] != tt.wantMsg {
					t.Fatalf("expected message %q got %q", tt.wantMsg, got["message"])
				}
			}
		})
	}
}

func TestAddLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	sessionID, caller := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"latitude":10.1,"longitude":10.1,"speed":3}`))
	req = withCaller(addChiURLParam(req, "id", sessionID.String()), caller)
	rr := httptest.NewRecorder()

	locID := uuid.New()
	svc.EXPECT().
		AppendLocation(gomock.Any(), sessionID, caller, gomock.Any()).
		Return(&domain.Location{
			LocationID:    locID,
			SessionID:     sessionID,
			LocationInput: domain.LocationInput{Latitude: 10.1, Longitude: 10.1, Speed: 3},
		}, nil)

	h.AddLocation(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["location_id"] != locID.String() || got["speed"] != 3.0 {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestAddLocation_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := sessions.NewHandler(newTestLogger(), mock_sessions.NewMockSportSessions(ctrl))

	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"latitude":1,"longitude":1}`))
	req = withCaller(addChiURLParam(req, "id", "not-a-uuid"), uuid.New())
	rr := httptest.NewRecorder()

	h.AddLocation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAddLocation_MissingCoordinates_400(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantLoc []string
	}{
		{name: "empty object", body: `{}`, wantLoc: []string{"body", "latitude"}},
		{name: "null body", body: `null`, wantLoc: []string{"body"}},
		{name: "no longitude", body: `{"latitude":0}`, wantLoc: []string{"body", "longitude"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectations: nothing may reach the service
			h := sessions.NewHandler(newTestLogger(), mock_sessions.NewMockSportSessions(ctrl))

			req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body))
			req = withCaller(addChiURLParam(req, "id", uuid.NewString()), uuid.New())
			rr := httptest.NewRecorder()

			h.AddLocation(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
			got := decodeJSON[struct {
				Message struct {
					Errors []e.FieldError `json:"errors"`
				} `json:"message"`
			}](t, rr)
			if len(got.Message.Errors) == 0 {
				t.Fatalf("missing field errors: %s", rr.Body.String())
			}
			loc := got.Message.Errors[0].Loc
			if len(loc) != len(tt.wantLoc) || loc[len(loc)-1] != tt.wantLoc[len(tt.wantLoc)-1] {
				t.Fatalf("expected loc %v got %v", tt.wantLoc, loc)
			}
		})
	}
}

func TestAddLocation_ZeroCoordinatesAreValid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	sessionID, caller := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"latitude":0,"longitude":0}`))
	req = withCaller(addChiURLParam(req, "id", sessionID.String()), caller)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		AppendLocation(gomock.Any(), sessionID, caller, domain.LocationInput{}).
		Return(&domain.Location{SessionID: sessionID}, nil)

	h.AddLocation(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestFinishSession_AlreadyFinished_423(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	sessionID, caller := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"duration":3600,"steps":5000,"distance":8.2}`))
	req = withCaller(addChiURLParam(req, "id", sessionID.String()), caller)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Finish(gomock.Any(), sessionID, caller, domain.SessionMetrics{Duration: 3600, Steps: 5000, Distance: 8.2}).
		Return(nil, e.Wrap("finish", e.ErrLocked))

	h.FinishSession(rr, req)

	if rr.Code != http.StatusLocked {
		t.Fatalf("expected %d got %d", http.StatusLocked, rr.Code)
	}
}

func TestFinishSession_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	sessionID, caller := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"duration":60,"calories":12.5}`))
	req = withCaller(addChiURLParam(req, "id", sessionID.String()), caller)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Finish(gomock.Any(), sessionID, caller, gomock.Any()).
		Return(&domain.SportSession{
			SessionID:      sessionID,
			UserID:         caller,
			SessionMetrics: domain.SessionMetrics{Duration: 60, Calories: 12.5},
		}, nil)

	h.FinishSession(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["is_active"] != false || got["calories"] != 12.5 {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestGetSession_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	sessionID, caller := uuid.New(), uuid.New()
	req := withCaller(addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", sessionID.String()), caller)
	rr := httptest.NewRecorder()

	svc.EXPECT().Get(gomock.Any(), sessionID, caller).Return(nil, e.ErrForbidden)

	h.GetSession(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestListSessions_EmptyIsArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	caller := uuid.New()
	req := withCaller(httptest.NewRequest(http.MethodGet, "/sport-session/", nil), caller)
	rr := httptest.NewRecorder()

	svc.EXPECT().List(gomock.Any(), caller).Return(nil, nil)

	h.ListSessions(rr, req)

	if rr.Code != http.StatusOK || bytes.TrimSpace(rr.Body.Bytes())[0] != '[' {
		t.Fatalf("expected 200 with array, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestActiveSessions_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sessions.NewMockSportSessions(ctrl)
	h := sessions.NewHandler(newTestLogger(), svc)

	want := []domain.ActiveSnapshot{{UserID: uuid.NewString(), Latitude: 10.1, Longitude: 10.1}}
	svc.EXPECT().ActiveSnapshots(gomock.Any()).Return(want, nil)

	rr := httptest.NewRecorder()
	h.ActiveSessions(rr, httptest.NewRequest(http.MethodGet, "/sport-session/active-sport-sessions", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[[]domain.ActiveSnapshot](t, rr)
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("unexpected snapshots %v", got)
	}
}
