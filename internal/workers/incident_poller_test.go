package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"sportapp/internal/domain"
	"sportapp/internal/service"
	mock_service "sportapp/internal/service/mocks"
	"sportapp/internal/workers"
	mock_workers "sportapp/internal/workers/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var floodIncident = domain.AdverseIncident{
	Description: "Flooded streets reported, avoid low-lying paths",
	BoundingBox: domain.BoundingBox{LatitudeFrom: 9.5, LatitudeTo: 10.5, LongitudeFrom: 9.5, LongitudeTo: 10.5},
}

type pollerMocks struct {
	incidents  *mock_workers.MockIncidentSource
	snapshots  *mock_workers.MockSnapshotSource
	dispatcher *mock_workers.MockDispatcher
	lease      *mock_workers.MockLease
}

func newPoller(t *testing.T, withLease bool, interval time.Duration) (*workers.IncidentPoller, pollerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := pollerMocks{
		incidents:  mock_workers.NewMockIncidentSource(ctrl),
		snapshots:  mock_workers.NewMockSnapshotSource(ctrl),
		dispatcher: mock_workers.NewMockDispatcher(ctrl),
	}
	var lease workers.Lease
	if withLease {
		m.lease = mock_workers.NewMockLease(ctrl)
		lease = m.lease
	}
	p := workers.NewIncidentPoller(m.incidents, m.snapshots, m.dispatcher, lease,
		workers.PollerConfig{Interval: interval, CycleTimeout: time.Second}, newTestLogger())
	return p, m
}

func TestIncidentPoller_RunOnce(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, false, time.Second)
	positions := []domain.ActiveSnapshot{
		{UserID: "u1", Latitude: 10.1, Longitude: 10.1},
		{UserID: "u2", Latitude: 40, Longitude: 40},
	}

	m.incidents.EXPECT().GetIncidents(gomock.Any()).Return([]domain.AdverseIncident{floodIncident}, nil)
	m.snapshots.EXPECT().GetActiveSnapshots(gomock.Any()).Return(positions, nil)
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), []domain.AdverseIncident{floodIncident}, []domain.IncidentMatch{{IncidentIndex: 0, UserIDs: []string{"u1"}}}).
		Return(domain.DispatchResult{Notified: 1})

	summary, err := p.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := domain.CycleSummary{Incidents: 1, Positions: 2, Notified: 1}
	if summary != want {
		t.Fatalf("got %+v, want %+v", summary, want)
	}
}

func TestIncidentPoller_RunOnce_FetchFailure(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, false, time.Second)
	boom := errors.New("provider down")
	m.incidents.EXPECT().GetIncidents(gomock.Any()).Return(nil, boom)
	m.snapshots.EXPECT().GetActiveSnapshots(gomock.Any()).Times(0)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := p.RunOnce(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
}

func TestIncidentPoller_RunOnce_LeaseHeldElsewhere(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, true, time.Second)
	m.lease.EXPECT().Acquire(gomock.Any()).Return(false, nil)
	m.incidents.EXPECT().GetIncidents(gomock.Any()).Times(0)

	summary, err := p.RunOnce(context.Background())
	if err != nil || !summary.Skipped {
		t.Fatalf("expected skipped cycle, got %+v, %v", summary, err)
	}
}

func TestIncidentPoller_RunOnce_RecoversPanic(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, false, time.Second)
	m.incidents.EXPECT().GetIncidents(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.AdverseIncident, error) {
		panic("decoder exploded")
	})

	if _, err := p.RunOnce(context.Background()); err == nil {
		t.Fatal("expected an error from a panicking cycle")
	}
}

func TestIncidentPoller_Run_SurvivesFailedCycleAndStops(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, true, 10*time.Millisecond)
	dispatched := make(chan struct{})

	m.lease.EXPECT().Acquire(gomock.Any()).Return(true, nil).MinTimes(2)
	m.lease.EXPECT().Release(gomock.Any()).Return(nil).Times(1)
	gomock.InOrder(
		m.incidents.EXPECT().GetIncidents(gomock.Any()).Return(nil, errors.New("timeout")),
		m.incidents.EXPECT().GetIncidents(gomock.Any()).Return([]domain.AdverseIncident{floodIncident}, nil),
	)
	m.incidents.EXPECT().GetIncidents(gomock.Any()).Return(nil, nil).AnyTimes()
	m.snapshots.EXPECT().GetActiveSnapshots(gomock.Any()).Return(nil, nil).MinTimes(1)

	var once int32
	m.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.AdverseIncident, []domain.IncidentMatch) domain.DispatchResult {
			if atomic.CompareAndSwapInt32(&once, 0, 1) {
				close(dispatched)
			}
			return domain.DispatchResult{}
		}).
		MinTimes(1)

	done := make(chan struct{})
	go func() {
		p.Run(context.Background())
		close(done)
	}()

	select {
	case <-dispatched:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not recover after a failed cycle")
	}

	p.Stop()
	p.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestIncidentPoller_Run_CancelLetsCycleFinish(t *testing.T) {
	t.Parallel()

	p, m := newPoller(t, false, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	inFetch := make(chan struct{})
	resume := make(chan struct{})

	m.incidents.EXPECT().
		GetIncidents(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.AdverseIncident, error) {
			close(inFetch)
			<-resume
			if ctx.Err() != nil {
				t.Errorf("cycle context must survive cancellation, got %v", ctx.Err())
			}
			return []domain.AdverseIncident{floodIncident}, nil
		})
	m.snapshots.EXPECT().
		GetActiveSnapshots(gomock.Any()).
		Return([]domain.ActiveSnapshot{{UserID: "u1", Latitude: 10, Longitude: 10}}, nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.DispatchResult{Notified: 1}).Times(1)

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	<-inFetch
	cancel()
	close(resume)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestIncidentPoller_EndToEndScenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	incidents := mock_workers.NewMockIncidentSource(ctrl)
	snapshots := mock_workers.NewMockSnapshotSource(ctrl)
	sender := mock_service.NewMockAlertSender(ctrl)

	now := time.Date(2025, 12, 23, 12, 0, 0, 0, time.UTC)
	dispatcher := service.NewAlertDispatcher(sender, newTestLogger()).WithClock(func() time.Time { return now })
	p := workers.NewIncidentPoller(incidents, snapshots, dispatcher, nil,
		workers.PollerConfig{Interval: time.Second}, newTestLogger())

	incidents.EXPECT().GetIncidents(gomock.Any()).Return([]domain.AdverseIncident{floodIncident}, nil)
	snapshots.EXPECT().GetActiveSnapshots(gomock.Any()).
		Return([]domain.ActiveSnapshot{{UserID: "U1", Latitude: 10.1, Longitude: 10.1}}, nil)
	sender.EXPECT().
		Send(gomock.Any(), domain.AdverseIncidentMessage{UserID: "U1", Message: floodIncident.Description, Date: "2025-12-23T12:00:00Z"}).
		Return(nil).
		Times(1)

	summary, err := p.RunOnce(context.Background())
	if err != nil || summary.Notified != 1 {
		t.Fatalf("unexpected result: %+v, %v", summary, err)
	}
}
