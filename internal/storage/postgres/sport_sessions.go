package postgres

import (
	"context"
	"errors"
	"log/slog"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgxpool.Pool and by pgxmock pools.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const sessionColumns = `session_id, user_id, sport_id, started_at, is_active,
	duration, steps, distance, calories, average_speed, min_heartrate, max_heartrate, avg_heartrate`

const locationColumns = `location_id, session_id, latitude, longitude, accuracy, altitude,
	altitude_accuracy, heading, speed, created_at`

type SportSessions struct {
	db     DB
	logger *slog.Logger
}

func NewSportSessions(db DB, logger *slog.Logger) *SportSessions {
	return &SportSessions{db: db, logger: logger}
}

func (r *SportSessions) Create(ctx context.Context, s *domain.SportSession) (err error) {
	const op = "postgres.SportSessions.Create"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return r.fail(ctx, op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO sport_sessions (session_id, user_id, sport_id, started_at, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		s.SessionID, s.UserID, s.SportID, s.StartedAt, s.IsActive,
	)
	if err != nil {
		return r.fail(ctx, op, err)
	}

	for i := range s.Locations {
		if err = insertLocation(ctx, tx, &s.Locations[i]); err != nil {
			return r.fail(ctx, op, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return r.fail(ctx, op, err)
	}
	return nil
}

func (r *SportSessions) AppendLocation(ctx context.Context, sessionID, callerID uuid.UUID, loc *domain.Location) (err error) {
	const op = "postgres.SportSessions.AppendLocation"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return r.fail(ctx, op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	session, err := scanSession(tx.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sport_sessions WHERE session_id = $1 FOR UPDATE`, sessionID))
	if err != nil {
		return r.fail(ctx, op, err)
	}
	if err = session.CheckMutable(callerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = insertLocation(ctx, tx, loc); err != nil {
		return r.fail(ctx, op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return r.fail(ctx, op, err)
	}
	return nil
}

func (r *SportSessions) Finish(ctx context.Context, sessionID, callerID uuid.UUID, m domain.SessionMetrics) (_ *domain.SportSession, err error) {
	const op = "postgres.SportSessions.Finish"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	session, err := scanSession(tx.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sport_sessions WHERE session_id = $1 FOR UPDATE`, sessionID))
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	if err = session.CheckMutable(callerID); err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE sport_sessions
		SET is_active = false, duration = $2, steps = $3, distance = $4, calories = $5,
			average_speed = $6, min_heartrate = $7, max_heartrate = $8, avg_heartrate = $9
		WHERE session_id = $1`,
		sessionID, m.Duration, m.Steps, m.Distance, m.Calories,
		m.AverageSpeed, m.MinHeartrate, m.MaxHeartrate, m.AvgHeartrate,
	)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	session.Finish(m)

	if session.Locations, err = loadLocations(ctx, tx, sessionID); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	return session, nil
}

func (r *SportSessions) Get(ctx context.Context, sessionID uuid.UUID) (*domain.SportSession, error) {
	const op = "postgres.SportSessions.Get"

	session, err := scanSession(r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sport_sessions WHERE session_id = $1`, sessionID))
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	if session.Locations, err = loadLocations(ctx, r.db, sessionID); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	return session, nil
}

func (r *SportSessions) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SportSession, error) {
	const op = "postgres.SportSessions.ListByUser"

	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM sport_sessions WHERE user_id = $1 ORDER BY started_at, session_id`, userID)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer rows.Close()

	sessions := make([]*domain.SportSession, 0)
	byID := make(map[uuid.UUID]*domain.SportSession)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, r.fail(ctx, op, err)
		}
		sessions = append(sessions, s)
		byID[s.SessionID] = s
		ids = append(ids, s.SessionID)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	if len(ids) == 0 {
		return sessions, nil
	}

	locRows, err := r.db.Query(ctx, `
		SELECT `+locationColumns+`
		FROM sport_session_locations
		WHERE session_id = ANY($1)
		ORDER BY session_id, created_at, seq`, ids)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer locRows.Close()

	for locRows.Next() {
		l, err := scanLocation(locRows)
		if err != nil {
			return nil, r.fail(ctx, op, err)
		}
		if s, ok := byID[l.SessionID]; ok {
			s.Locations = append(s.Locations, l)
		}
	}
	if err := locRows.Err(); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	return sessions, nil
}

// ActiveSnapshots returns the latest location of every active session that has one.
func (r *SportSessions) ActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error) {
	const op = "postgres.SportSessions.ActiveSnapshots"

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (l.session_id) s.user_id, l.latitude, l.longitude
		FROM sport_session_locations l
		JOIN sport_sessions s ON s.session_id = l.session_id
		WHERE s.is_active
		ORDER BY l.session_id, l.created_at DESC, l.seq DESC`)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer rows.Close()

	snapshots := make([]domain.ActiveSnapshot, 0)
	for rows.Next() {
		var (
			userID uuid.UUID
			snap   domain.ActiveSnapshot
		)
		if err := rows.Scan(&userID, &snap.Latitude, &snap.Longitude); err != nil {
			return nil, r.fail(ctx, op, err)
		}
		snap.UserID = userID.String()
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, op, err)
	}
	return snapshots, nil
}

func (r *SportSessions) fail(ctx context.Context, op string, err error) error {
	wrapped := e.WrapError(ctx, op, err)
	if !isDomainErr(wrapped) {
		r.logger.Error("db call failed", slog.String("op", op), slog.Any("error", err))
	}
	return wrapped
}

func isDomainErr(err error) bool {
	return errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrForbidden) || errors.Is(err, e.ErrLocked)
}

func insertLocation(ctx context.Context, tx pgx.Tx, l *domain.Location) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO sport_session_locations (`+locationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		l.LocationID, l.SessionID, l.Latitude, l.Longitude, l.Accuracy, l.Altitude,
		l.AltitudeAccuracy, l.Heading, l.Speed, l.CreatedAt,
	)
	return err
}

func loadLocations(ctx context.Context, q querier, sessionID uuid.UUID) ([]domain.Location, error) {
	rows, err := q.Query(ctx, `
		SELECT `+locationColumns+`
		FROM sport_session_locations
		WHERE session_id = $1
		ORDER BY created_at, seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func scanSession(row pgx.Row) (*domain.SportSession, error) {
	s := &domain.SportSession{Locations: []domain.Location{}}
	err := row.Scan(
		&s.SessionID, &s.UserID, &s.SportID, &s.StartedAt, &s.IsActive,
		&s.Duration, &s.Steps, &s.Distance, &s.Calories, &s.AverageSpeed,
		&s.MinHeartrate, &s.MaxHeartrate, &s.AvgHeartrate,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanLocation(row pgx.Row) (domain.Location, error) {
	var l domain.Location
	err := row.Scan(
		&l.LocationID, &l.SessionID, &l.Latitude, &l.Longitude, &l.Accuracy, &l.Altitude,
		&l.AltitudeAccuracy, &l.Heading, &l.Speed, &l.CreatedAt,
	)
	return l, err
}
