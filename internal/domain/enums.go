package domain

type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
	TermWinter Term = "Winter"
)

// ValidTerms is the canonical set of accepted term strings.
var ValidTerms = map[string]bool{
	"Fall": true, "Spring": true, "Summer": true, "Winter": true,
}

// AcademicOrder positions a term within the forward-planning cycle
// (Fall starts the academic year).
func (t Term) AcademicOrder() int {
	switch t {
	case TermFall:
		return 0
	case TermSpring:
		return 1
	case TermSummer:
		return 2
	default:
		return 3
	}
}

// ChronologicalOrder positions a term within a calendar year. Audit history
// is sorted with this order, not the academic one.
func (t Term) ChronologicalOrder() int {
	switch t {
	case TermSpring:
		return 0
	case TermSummer:
		return 1
	case TermFall:
		return 2
	default:
		return 3
	}
}

type SlotStatus string

const (
	SlotPlanned   SlotStatus = "planned"
	SlotCurrent   SlotStatus = "current"
	SlotCompleted SlotStatus = "completed"
)

type Category string

const (
	CategoryCore     Category = "core"
	CategoryMath     Category = "math"
	CategoryScience  Category = "science"
	CategoryElective Category = "elective"
	CategoryGeneral  Category = "general"
)

// ValidCategories is the canonical set of accepted course category strings.
var ValidCategories = map[string]bool{
	"core": true, "math": true, "science": true, "elective": true, "general": true,
}

type TransferStatus string

const (
	TransferApproved TransferStatus = "approved"
	TransferPending  TransferStatus = "pending"
)
