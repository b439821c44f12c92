package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the seats table when it does not exist yet.  The
// indexes match the three hot paths: PNR lookups, the no-show sweep filter
// and the released-seat query.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS seats (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		train_id VARCHAR(32) NOT NULL,
		coach VARCHAR(8) NOT NULL,
		seat_number VARCHAR(8) NOT NULL,
		pnr VARCHAR(32) NOT NULL,
		passenger_name VARCHAR(128) NOT NULL,
		boarding_station VARCHAR(64) NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		status ENUM('CONFIRMED','EMPTY') NOT NULL DEFAULT 'CONFIRMED',
		available_from_station VARCHAR(64) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_seat (train_id, coach, seat_number),
		KEY idx_pnr (pnr),
		KEY idx_sweep (train_id, verified, status),
		KEY idx_released (train_id, status, available_from_station)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	_, err := db.ExecContext(ctx, ddl)
	return err
}
