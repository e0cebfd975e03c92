package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		major           TEXT NOT NULL,
		start_year      INTEGER NOT NULL,
		start_term      TEXT NOT NULL
		                CHECK(start_term IN ('Fall','Spring','Summer','Winter')),
		include_summer  INTEGER NOT NULL DEFAULT 0,
		audit_derived   INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS slots (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		id         TEXT NOT NULL,
		term       TEXT NOT NULL
		           CHECK(term IN ('Fall','Spring','Summer','Winter')),
		year       INTEGER NOT NULL,
		seq        INTEGER NOT NULL,
		credits    REAL NOT NULL DEFAULT 0,
		status     TEXT NOT NULL
		           CHECK(status IN ('planned','current','completed')),
		PRIMARY KEY (plan_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS slot_courses (
		plan_id    TEXT NOT NULL,
		slot_id    TEXT NOT NULL,
		course_id  TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, course_id),
		FOREIGN KEY (plan_id, slot_id) REFERENCES slots(plan_id, id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS extra_electives (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('math','tech')),
		course_id  TEXT NOT NULL,
		PRIMARY KEY (plan_id, kind, course_id)
	)`,

	`CREATE TABLE IF NOT EXISTS placeholder_map (
		plan_id         TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		placeholder_id  TEXT NOT NULL,
		course_id       TEXT NOT NULL,
		PRIMARY KEY (plan_id, placeholder_id)
	)`,

	`CREATE TABLE IF NOT EXISTS synthesized_courses (
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		id          TEXT NOT NULL,
		code        TEXT NOT NULL,
		name        TEXT NOT NULL,
		credits     REAL NOT NULL,
		category    TEXT NOT NULL
		            CHECK(category IN ('core','math','science','elective','general')),
		PRIMARY KEY (plan_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS transfer_credits (
		plan_id          TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		id               TEXT NOT NULL,
		external_course  TEXT NOT NULL,
		equivalent       TEXT NOT NULL,
		status           TEXT NOT NULL CHECK(status IN ('approved','pending')),
		credits          REAL NOT NULL,
		mapped           INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_slots_plan_seq ON slots(plan_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_slot_courses_slot ON slot_courses(plan_id, slot_id)`,
}
