package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sprints (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','completed','abandoned')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sprints_one_active ON sprints(status) WHERE status = 'active'`,

	`CREATE TABLE IF NOT EXISTS priority_targets (
		id                  TEXT PRIMARY KEY,
		sprint_id           TEXT NOT NULL REFERENCES sprints(id) ON DELETE CASCADE,
		key                 TEXT NOT NULL,
		label               TEXT NOT NULL,
		type                TEXT NOT NULL CHECK(type IN ('build','maintain')),
		weekly_target_units REAL NOT NULL CHECK(weekly_target_units > 0),
		unit_definition     TEXT NOT NULL DEFAULT '',
		order_index         INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		UNIQUE(sprint_id, key)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_priority_targets_sprint ON priority_targets(sprint_id)`,

	`CREATE TABLE IF NOT EXISTS daily_logs (
		id                   TEXT PRIMARY KEY,
		log_date             TEXT NOT NULL UNIQUE,
		energy_level         INTEGER NOT NULL CHECK(energy_level BETWEEN 1 AND 5),
		sleep_hours          REAL NOT NULL DEFAULT 0 CHECK(sleep_hours >= 0),
		main_focus_completed INTEGER NOT NULL DEFAULT 0,
		progress_units       INTEGER NOT NULL DEFAULT 0 CHECK(progress_units >= 0),
		motion_units         INTEGER NOT NULL DEFAULT 0 CHECK(motion_units >= 0),
		proof                TEXT NOT NULL DEFAULT '',
		note                 TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS promise_logs (
		id          TEXT PRIMARY KEY,
		sprint_id   TEXT NOT NULL,
		log_date    TEXT NOT NULL,
		promise_key TEXT NOT NULL,
		units       REAL NOT NULL CHECK(units >= 0),
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		FOREIGN KEY (sprint_id, promise_key)
			REFERENCES priority_targets(sprint_id, key) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_promise_logs_sprint_date ON promise_logs(sprint_id, log_date)`,

	`CREATE TABLE IF NOT EXISTS yearly_reviews (
		id              TEXT PRIMARY KEY,
		year            INTEGER NOT NULL UNIQUE,
		ratings_json    TEXT NOT NULL DEFAULT '{}',
		wins_json       TEXT NOT NULL DEFAULT '[]',
		challenges_json TEXT NOT NULL DEFAULT '[]',
		lessons         TEXT NOT NULL DEFAULT '',
		key_decision    TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS wizard_drafts (
		kind         TEXT PRIMARY KEY CHECK(kind IN ('plan','review')),
		current_step INTEGER NOT NULL CHECK(current_step >= 1),
		completed    INTEGER NOT NULL DEFAULT 0,
		state_json   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
}
