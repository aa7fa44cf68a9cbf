package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/config"
)

const (
	connectRetries = 30
	connectBackoff = 2 * time.Second
)

// Connect opens the PostgreSQL pool and waits until the server answers
func Connect(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < connectRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			log.WithField("host", cfg.DBHost).Info("connected to database")
			return db, nil
		}
		log.WithError(err).Warnf("failed to connect to database (attempt %d/%d)", i+1, connectRetries)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectRetries, err)
}
