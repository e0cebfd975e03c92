package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/domain"
)

// SQLitePlanRepo implements PlanRepo against SQLite. It can be constructed
// over either a *sql.DB or a transaction-scoped DBTX.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

// Save replaces the stored aggregate for the plan's ID. Callers wanting
// atomicity across other work run this inside a UnitOfWork transaction.
func (r *SQLitePlanRepo) Save(ctx context.Context, plan *domain.Plan, synthesized []*domain.Course) error {
	// Full replace: cascade clears slots, assignments, and satellites.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, plan.ID); err != nil {
		return fmt.Errorf("clearing stored plan: %w", err)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plans (id, user_id, major, start_year, start_term, include_summer, audit_derived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.UserID, plan.Major,
		plan.Start.Year, string(plan.Start.Term), boolToInt(plan.Start.IncludeSummer),
		boolToInt(plan.AuditDerived),
		timeToString(plan.CreatedAt), timeToString(plan.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, slot := range plan.Slots {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO slots (plan_id, id, term, year, seq, credits, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, slot.ID, string(slot.Term), slot.Year,
			slot.SequenceIndex, slot.Credits, string(slot.Status),
		); err != nil {
			return fmt.Errorf("inserting slot %s: %w", slot.ID, err)
		}
		for pos, courseID := range slot.Courses {
			if _, err := r.db.ExecContext(ctx, `
				INSERT INTO slot_courses (plan_id, slot_id, course_id, position)
				VALUES (?, ?, ?, ?)`,
				plan.ID, slot.ID, courseID, pos,
			); err != nil {
				return fmt.Errorf("inserting assignment %s/%s: %w", slot.ID, courseID, err)
			}
		}
	}

	for _, id := range plan.ExtraMathElectives {
		if err := r.insertExtra(ctx, plan.ID, "math", id); err != nil {
			return err
		}
	}
	for _, id := range plan.ExtraTechElectives {
		if err := r.insertExtra(ctx, plan.ID, "tech", id); err != nil {
			return err
		}
	}

	for placeholder, courseID := range plan.PlaceholderMap {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO placeholder_map (plan_id, placeholder_id, course_id)
			VALUES (?, ?, ?)`,
			plan.ID, placeholder, courseID,
		); err != nil {
			return fmt.Errorf("inserting placeholder mapping %s: %w", placeholder, err)
		}
	}

	for _, course := range synthesized {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO synthesized_courses (plan_id, id, code, name, credits, category)
			VALUES (?, ?, ?, ?, ?, ?)`,
			plan.ID, course.ID, course.Code, course.Name, course.Credits, string(course.Category),
		); err != nil {
			return fmt.Errorf("inserting synthesized course %s: %w", course.ID, err)
		}
	}

	for _, tc := range plan.TransferCredits {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO transfer_credits (plan_id, id, external_course, equivalent, status, credits, mapped)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, tc.ID, tc.ExternalCourse, tc.Equivalent, string(tc.Status), tc.Credits, boolToInt(tc.Mapped),
		); err != nil {
			return fmt.Errorf("inserting transfer credit %s: %w", tc.ID, err)
		}
	}

	return nil
}

func (r *SQLitePlanRepo) insertExtra(ctx context.Context, planID, kind, courseID string) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO extra_electives (plan_id, kind, course_id)
		VALUES (?, ?, ?)`,
		planID, kind, courseID,
	); err != nil {
		return fmt.Errorf("inserting %s elective %s: %w", kind, courseID, err)
	}
	return nil
}

// Load reads the single stored plan and its synthesized catalog overlay.
// Returns ErrNoPlan when nothing has been persisted yet.
func (r *SQLitePlanRepo) Load(ctx context.Context) (*domain.Plan, []*domain.Course, error) {
	plan := &domain.Plan{PlaceholderMap: make(map[string]string)}
	var startTerm, createdAt, updatedAt string
	var includeSummer, auditDerived int

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, major, start_year, start_term, include_summer, audit_derived, created_at, updated_at
		FROM plans
		ORDER BY updated_at DESC
		LIMIT 1`,
	).Scan(&plan.ID, &plan.UserID, &plan.Major,
		&plan.Start.Year, &startTerm, &includeSummer, &auditDerived,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrNoPlan
		}
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	plan.Start.Term = domain.Term(startTerm)
	plan.Start.IncludeSummer = intToBool(includeSummer)
	plan.AuditDerived = intToBool(auditDerived)
	plan.CreatedAt = stringToTime(createdAt)
	plan.UpdatedAt = stringToTime(updatedAt)

	if err := r.loadSlots(ctx, plan); err != nil {
		return nil, nil, err
	}
	if err := r.loadExtras(ctx, plan); err != nil {
		return nil, nil, err
	}
	if err := r.loadPlaceholders(ctx, plan); err != nil {
		return nil, nil, err
	}
	if err := r.loadTransferCredits(ctx, plan); err != nil {
		return nil, nil, err
	}
	synthesized, err := r.loadSynthesized(ctx, plan.ID)
	if err != nil {
		return nil, nil, err
	}
	return plan, synthesized, nil
}

func (r *SQLitePlanRepo) loadSlots(ctx context.Context, plan *domain.Plan) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, term, year, seq, credits, status
		FROM slots WHERE plan_id = ? ORDER BY seq`, plan.ID)
	if err != nil {
		return fmt.Errorf("loading slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		slot := &domain.Slot{}
		var term, status string
		if err := rows.Scan(&slot.ID, &term, &slot.Year, &slot.SequenceIndex, &slot.Credits, &status); err != nil {
			return fmt.Errorf("scanning slot: %w", err)
		}
		slot.Term = domain.Term(term)
		slot.Status = domain.SlotStatus(status)
		plan.Slots = append(plan.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating slots: %w", err)
	}

	courses, err := r.db.QueryContext(ctx, `
		SELECT slot_id, course_id
		FROM slot_courses WHERE plan_id = ? ORDER BY slot_id, position`, plan.ID)
	if err != nil {
		return fmt.Errorf("loading assignments: %w", err)
	}
	defer courses.Close()

	bySlot := make(map[string][]string)
	for courses.Next() {
		var slotID, courseID string
		if err := courses.Scan(&slotID, &courseID); err != nil {
			return fmt.Errorf("scanning assignment: %w", err)
		}
		bySlot[slotID] = append(bySlot[slotID], courseID)
	}
	if err := courses.Err(); err != nil {
		return fmt.Errorf("iterating assignments: %w", err)
	}
	for _, slot := range plan.Slots {
		slot.Courses = bySlot[slot.ID]
	}
	return nil
}

func (r *SQLitePlanRepo) loadExtras(ctx context.Context, plan *domain.Plan) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, course_id FROM extra_electives WHERE plan_id = ? ORDER BY course_id`, plan.ID)
	if err != nil {
		return fmt.Errorf("loading extra electives: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, courseID string
		if err := rows.Scan(&kind, &courseID); err != nil {
			return fmt.Errorf("scanning extra elective: %w", err)
		}
		if kind == "math" {
			plan.ExtraMathElectives = append(plan.ExtraMathElectives, courseID)
		} else {
			plan.ExtraTechElectives = append(plan.ExtraTechElectives, courseID)
		}
	}
	return rows.Err()
}

func (r *SQLitePlanRepo) loadPlaceholders(ctx context.Context, plan *domain.Plan) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT placeholder_id, course_id FROM placeholder_map WHERE plan_id = ?`, plan.ID)
	if err != nil {
		return fmt.Errorf("loading placeholder mappings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var placeholder, courseID string
		if err := rows.Scan(&placeholder, &courseID); err != nil {
			return fmt.Errorf("scanning placeholder mapping: %w", err)
		}
		plan.PlaceholderMap[placeholder] = courseID
	}
	return rows.Err()
}

func (r *SQLitePlanRepo) loadTransferCredits(ctx context.Context, plan *domain.Plan) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, external_course, equivalent, status, credits, mapped
		FROM transfer_credits WHERE plan_id = ? ORDER BY id`, plan.ID)
	if err != nil {
		return fmt.Errorf("loading transfer credits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc domain.TransferCredit
		var status string
		var mapped int
		if err := rows.Scan(&tc.ID, &tc.ExternalCourse, &tc.Equivalent, &status, &tc.Credits, &mapped); err != nil {
			return fmt.Errorf("scanning transfer credit: %w", err)
		}
		tc.Status = domain.TransferStatus(status)
		tc.Mapped = intToBool(mapped)
		plan.TransferCredits = append(plan.TransferCredits, tc)
	}
	return rows.Err()
}

func (r *SQLitePlanRepo) loadSynthesized(ctx context.Context, planID string) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, name, credits, category
		FROM synthesized_courses WHERE plan_id = ? ORDER BY id`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading synthesized courses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Course
	for rows.Next() {
		course := &domain.Course{Synthesized: true}
		var category string
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Credits, &category); err != nil {
			return nil, fmt.Errorf("scanning synthesized course: %w", err)
		}
		course.Category = domain.Category(category)
		out = append(out, course)
	}
	return out, rows.Err()
}

// Delete removes the stored aggregate for a plan ID.
func (r *SQLitePlanRepo) Delete(ctx context.Context, planID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, planID); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}
