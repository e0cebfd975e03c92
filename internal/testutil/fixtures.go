package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/sequence"
)

// Plan options
type PlanOption func(*domain.Plan)

func WithStart(year int, term domain.Term, includeSummer bool) PlanOption {
	return func(p *domain.Plan) {
		p.Start = domain.StartSemester{Year: year, Term: term, IncludeSummer: includeSummer}
		p.Slots = sequence.Generate(year, term, includeSummer)
	}
}

func WithMajor(major string) PlanOption {
	return func(p *domain.Plan) {
		p.Major = major
	}
}

func WithAuditDerived() PlanOption {
	return func(p *domain.Plan) {
		p.AuditDerived = true
	}
}

func WithExtraMathElectives(ids ...string) PlanOption {
	return func(p *domain.Plan) {
		p.ExtraMathElectives = append(p.ExtraMathElectives, ids...)
	}
}

func WithTransferCredit(tc domain.TransferCredit) PlanOption {
	return func(p *domain.Plan) {
		p.TransferCredits = append(p.TransferCredits, tc)
	}
}

// NewTestPlan builds an empty eight-semester plan starting Fall 2025.
func NewTestPlan(opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		ID:             uuid.NewString(),
		UserID:         "test-user",
		Major:          "Computer Science",
		Start:          domain.StartSemester{Year: 2025, Term: domain.TermFall},
		Slots:          sequence.Generate(2025, domain.TermFall, false),
		PlaceholderMap: make(map[string]string),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestCatalog returns the full built-in catalog.
func NewTestCatalog() *catalog.Catalog {
	return catalog.New()
}

// NewTestTransferCredit builds an approved, unmapped transfer credit.
func NewTestTransferCredit(external, equivalent string, credits float64) domain.TransferCredit {
	return domain.TransferCredit{
		ID:             uuid.NewString(),
		ExternalCourse: external,
		Equivalent:     equivalent,
		Status:         domain.TransferApproved,
		Credits:        credits,
	}
}
