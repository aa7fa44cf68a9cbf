package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(30)  NOT NULL UNIQUE,
		email         VARCHAR(255) UNIQUE,
		mobile        VARCHAR(15)  UNIQUE,
		password_hash TEXT         NOT NULL,
		role          VARCHAR(10)  NOT NULL CHECK (role IN ('admin', 'customer')),
		status        VARCHAR(10)  NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
		full_name     VARCHAR(100) NOT NULL DEFAULT '',
		dob           VARCHAR(10)  NOT NULL DEFAULT '',
		gender        VARCHAR(10)  NOT NULL DEFAULT '',
		national_id   VARCHAR(12)  NOT NULL DEFAULT '',
		nationality   VARCHAR(50)  NOT NULL DEFAULT '',
		address       TEXT         NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id        UUID PRIMARY KEY,
		user_id   INTEGER      NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name      VARCHAR(100) NOT NULL,
		dob       VARCHAR(10)  NOT NULL,
		gender    VARCHAR(10)  NOT NULL,
		id_number VARCHAR(20)  NOT NULL DEFAULT '',
		mobile    VARCHAR(15)  NOT NULL DEFAULT '',
		position  INTEGER      NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_passengers_user ON passengers (user_id, position)`,
	`CREATE TABLE IF NOT EXISTS stations (
		id   SERIAL PRIMARY KEY,
		code VARCHAR(6)   NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		city VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id           SERIAL PRIMARY KEY,
		train_number VARCHAR(6)   NOT NULL UNIQUE,
		train_name   VARCHAR(100) NOT NULL,
		status       VARCHAR(10)  NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive'))
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id                     SERIAL PRIMARY KEY,
		train_id               INTEGER       NOT NULL REFERENCES trains(id),
		origin_station_id      INTEGER       NOT NULL REFERENCES stations(id),
		destination_station_id INTEGER       NOT NULL REFERENCES stations(id),
		departure_date         DATE          NOT NULL,
		departure_time         TIME          NOT NULL,
		arrival_date           DATE          NOT NULL,
		arrival_time           TIME          NOT NULL,
		fare                   NUMERIC(10,2) NOT NULL CHECK (fare BETWEEN 50 AND 400000),
		CHECK (origin_station_id <> destination_station_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_route ON schedules (origin_station_id, destination_station_id, departure_date)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id                     SERIAL PRIMARY KEY,
		booking_code           VARCHAR(14)   NOT NULL UNIQUE,
		user_id                INTEGER       NOT NULL REFERENCES users(id),
		schedule_id            INTEGER       REFERENCES schedules(id),
		train_id               INTEGER       NOT NULL REFERENCES trains(id),
		origin_station_id      INTEGER       NOT NULL REFERENCES stations(id),
		destination_station_id INTEGER       NOT NULL REFERENCES stations(id),
		travel_date            DATE          NOT NULL,
		fare                   NUMERIC(10,2) NOT NULL,
		status                 VARCHAR(10)   NOT NULL CHECK (status IN ('confirmed', 'cancelled')),
		created_at             TIMESTAMPTZ   NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_route ON bookings (train_id, origin_station_id, destination_station_id, travel_date)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id             SERIAL PRIMARY KEY,
		booking_id     INTEGER       NOT NULL UNIQUE REFERENCES bookings(id),
		amount         NUMERIC(10,2) NOT NULL,
		method         VARCHAR(20)   NOT NULL,
		status         VARCHAR(10)   NOT NULL CHECK (status IN ('success', 'refunded')),
		transaction_id VARCHAR(64)   NOT NULL,
		created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token      VARCHAR(64) PRIMARY KEY,
		user_id    INTEGER     NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions (expires_at)`,
}

// RunMigrations applies the schema; every statement is idempotent
func RunMigrations(ctx context.Context, db *sql.DB, log *logrus.Logger) error {
	log.Info("applying database schema")

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	log.WithField("statements", len(schema)).Info("database schema is up to date")
	return nil
}
