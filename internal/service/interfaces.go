package service

import (
	"context"

	"github.com/aisharahman/gradpath/internal/audit"
	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/contract"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
)

// PlanState bundles the loaded plan with the catalog view that includes any
// synthesized overlay courses. Callers must treat it as a snapshot; mutations
// go through the service methods.
type PlanState struct {
	Plan    *domain.Plan
	Catalog *catalog.Catalog
}

type PlanService interface {
	// Get loads the stored plan, initializing a default one if none exists.
	Get(ctx context.Context) (*PlanState, error)
	// Initialize replaces any stored plan with a fresh empty sequence.
	Initialize(ctx context.Context, userID, major string, start domain.StartSemester) (*PlanState, error)
	// ValidatePlacement runs placement validation without mutating anything.
	ValidatePlacement(ctx context.Context, courseID, slotID string) (planner.Result, error)
	// CommitPlacement validates and, if accepted, persists the placement.
	// A rejected placement returns the Result with a nil error.
	CommitPlacement(ctx context.Context, courseID, slotID string) (planner.Result, error)
	RemoveCourse(ctx context.Context, courseID string) error
	AppendSemester(ctx context.Context) (*domain.Slot, error)
	RemoveSemester(ctx context.Context, slotID string) error
	Reset(ctx context.Context) error
}

type AuditService interface {
	// ImportAudit parses a degree-audit extract and reconciles the plan
	// against it. The stored plan is replaced only if the whole
	// reconciliation succeeds.
	ImportAudit(ctx context.Context, filePath string) (*audit.Report, error)
	ReconcileParsed(ctx context.Context, parsed *audit.ParsedAudit) (*audit.Report, error)
}

type StatusService interface {
	GetStatus(ctx context.Context) (*contract.StatusResponse, error)
}

type TransferService interface {
	List(ctx context.Context) ([]domain.TransferCredit, error)
	Add(ctx context.Context, tc domain.TransferCredit) error
	// MapToPlan schedules an approved transfer equivalent into the earliest
	// planned semester and marks the credit as mapped.
	MapToPlan(ctx context.Context, transferID string) (planner.Result, error)
}
