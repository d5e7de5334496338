package postgres

import (
	"context"

	"sportapp/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS sport_sessions (
	session_id    uuid PRIMARY KEY,
	user_id       uuid NOT NULL,
	sport_id      uuid NOT NULL,
	started_at    timestamptz NOT NULL,
	is_active     boolean NOT NULL DEFAULT true,
	duration      double precision NOT NULL DEFAULT 0,
	steps         integer NOT NULL DEFAULT 0,
	distance      double precision NOT NULL DEFAULT 0,
	calories      double precision NOT NULL DEFAULT 0,
	average_speed double precision NOT NULL DEFAULT 0,
	min_heartrate double precision NOT NULL DEFAULT 0,
	max_heartrate double precision NOT NULL DEFAULT 0,
	avg_heartrate double precision NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS sport_sessions_user_idx ON sport_sessions (user_id, started_at);
CREATE INDEX IF NOT EXISTS sport_sessions_active_idx ON sport_sessions (session_id) WHERE is_active;

CREATE TABLE IF NOT EXISTS sport_session_locations (
	seq               bigserial,
	location_id       uuid PRIMARY KEY,
	session_id        uuid NOT NULL REFERENCES sport_sessions (session_id) ON DELETE CASCADE,
	latitude          double precision NOT NULL CHECK (latitude BETWEEN -90 AND 90),
	longitude         double precision NOT NULL CHECK (longitude BETWEEN -180 AND 180),
	accuracy          double precision NOT NULL DEFAULT 0,
	altitude          double precision NOT NULL DEFAULT 0,
	altitude_accuracy double precision NOT NULL DEFAULT 0,
	heading           double precision NOT NULL DEFAULT 0,
	speed             double precision NOT NULL DEFAULT 0,
	created_at        timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS sport_session_locations_latest_idx
	ON sport_session_locations (session_id, created_at DESC, seq DESC);
`

// EnsureSchema creates the tables and indexes when they are missing.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, "storage.pg.EnsureSchema", err)
	}
	return nil
}
