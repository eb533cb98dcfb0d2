package postgres

import (
	"database/sql"
	"fmt"

	"clubFinance/internal/config"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			total_cost BIGINT NOT NULL,
			duration_minutes INT NOT NULL,
			deadline TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			participant_count INT NOT NULL DEFAULT 0,
			original_count INT NOT NULL DEFAULT 0,
			team_fund BIGINT NOT NULL DEFAULT 0,
			total_collected BIGINT NOT NULL DEFAULT 0,
			vendor_paid BOOLEAN NOT NULL DEFAULT FALSE,
			vendor_paid_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			closed_at TIMESTAMPTZ,
			locked_at TIMESTAMPTZ,
			last_edited_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS participations (
			id SERIAL PRIMARY KEY,
			event_id INT NOT NULL REFERENCES events(id),
			participant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status TEXT NOT NULL DEFAULT 'joined',
			added_after_close BOOLEAN NOT NULL DEFAULT FALSE,
			added_by TEXT NOT NULL DEFAULT '',
			added_by_role TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS participations_joined_uniq
			ON participations (event_id, participant_id)
			WHERE status = 'joined'`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			event_id INT NOT NULL REFERENCES events(id),
			participant_id TEXT NOT NULL,
			participant_name TEXT NOT NULL,
			original_due BIGINT NOT NULL,
			current_due BIGINT NOT NULL,
			total_paid BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			paid_at TIMESTAMPTZ,
			marked_paid_by TEXT NOT NULL DEFAULT '',
			added_after_close BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS event_edits (
			id SERIAL PRIMARY KEY,
			event_id INT NOT NULL REFERENCES events(id),
			field TEXT NOT NULL,
			old_value TEXT NOT NULL,
			new_value TEXT NOT NULL,
			actor TEXT NOT NULL,
			changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			recalculated BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			amount BIGINT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			event_id INT REFERENCES events(id),
			created_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS income (
			id SERIAL PRIMARY KEY,
			amount BIGINT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			source TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}
