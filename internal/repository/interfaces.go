package repository

import (
	"context"
	"errors"

	"github.com/aisharahman/gradpath/internal/domain"
)

// ErrNoPlan means no plan has ever been persisted.
var ErrNoPlan = errors.New("no stored plan")

// PlanRepo persists the single planning session's schedule state as one
// aggregate: the plan, its slots and assignments, the auxiliary elective
// lists, the placeholder substitutions, the catalog overlay synthesized by
// audit imports, and transfer credits. Save replaces the stored aggregate
// wholesale; the engine writes after every accepted mutation.
type PlanRepo interface {
	Save(ctx context.Context, plan *domain.Plan, synthesized []*domain.Course) error
	Load(ctx context.Context) (*domain.Plan, []*domain.Course, error)
	Delete(ctx context.Context, planID string) error
}
