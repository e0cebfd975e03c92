package domain

import "fmt"

// Slot is a single semester's container for assigned courses. SequenceIndex is
// the sole temporal model: every before/after comparison between slots uses it,
// never term/year arithmetic.
type Slot struct {
	ID            string // term+year composite, e.g. "Fall2025"
	Term          Term
	Year          int
	SequenceIndex int
	Courses       []string
	Credits       float64
	Status        SlotStatus
}

// SlotID builds the canonical identifier for a term/year pair.
func SlotID(term Term, year int) string {
	return fmt.Sprintf("%s%d", term, year)
}

// Label is the human-readable form, e.g. "Fall 2025".
func (s *Slot) Label() string {
	return fmt.Sprintf("%s %d", s.Term, s.Year)
}

// Contains reports whether courseID is assigned to this slot.
func (s *Slot) Contains(courseID string) bool {
	for _, id := range s.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}
