package domain

import "time"

// StartSemester describes the anchor of a generated slot sequence.
type StartSemester struct {
	Year          int
	Term          Term
	IncludeSummer bool
}

// Plan is the schedule state: the ordered slot sequence plus the auxiliary
// lists audit reconciliation discovers. It is owned by a single planning
// session and only ever mutated through the planner/service layer.
type Plan struct {
	ID      string
	UserID  string
	Major   string
	Start   StartSemester
	Slots   []*Slot
	// Course identifiers discovered via audit import that extend the fixed
	// math/technical elective membership lists.
	ExtraMathElectives []string
	ExtraTechElectives []string
	// PlaceholderMap records placeholder -> real course substitutions made by
	// audit reconciliation (e.g. GEN103 -> HIST161).
	PlaceholderMap  map[string]string
	TransferCredits []TransferCredit
	// AuditDerived marks plans whose slot sequence came from an audit import;
	// their slot count is not expected to match the Start descriptor.
	AuditDerived bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransferCredit is an externally earned course pending (or already) mapped
// onto the roadmap as its local equivalent.
type TransferCredit struct {
	ID             string
	ExternalCourse string
	Equivalent     string
	Status         TransferStatus
	Credits        float64
	Mapped         bool
}

// SlotByID returns the slot with the given identifier.
func (p *Plan) SlotByID(id string) (*Slot, bool) {
	for _, s := range p.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// SlotOf returns the slot holding courseID, if any. A course occupies at most
// one slot across the whole plan.
func (p *Plan) SlotOf(courseID string) (*Slot, bool) {
	for _, s := range p.Slots {
		if s.Contains(courseID) {
			return s, true
		}
	}
	return nil, false
}

// IsScheduled reports whether courseID is assigned anywhere in the plan.
func (p *Plan) IsScheduled(courseID string) bool {
	_, ok := p.SlotOf(courseID)
	return ok
}

// ScheduledCourses returns every assigned course identifier in slot order.
func (p *Plan) ScheduledCourses() []string {
	var out []string
	for _, s := range p.Slots {
		out = append(out, s.Courses...)
	}
	return out
}

// TotalCredits sums the running credit totals of all slots.
func (p *Plan) TotalCredits() float64 {
	var total float64
	for _, s := range p.Slots {
		total += s.Credits
	}
	return total
}

// CurrentSlot returns the slot marked current, if any.
func (p *Plan) CurrentSlot() (*Slot, bool) {
	for _, s := range p.Slots {
		if s.Status == SlotCurrent {
			return s, true
		}
	}
	return nil, false
}

// Reindex rewrites each slot's SequenceIndex to its position in the sequence.
// Must be called after any operation that inserts or removes slots.
func (p *Plan) Reindex() {
	for i, s := range p.Slots {
		s.SequenceIndex = i
	}
}
