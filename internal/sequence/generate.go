// Package sequence produces ordered semester slot sequences. The term-cycle
// and year-increment arithmetic here is the single source of truth: the
// append-next-slot path reuses Next so that incremental extension reproduces
// exactly what Generate would have produced.
package sequence

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aisharahman/gradpath/internal/domain"
)

// DefaultLength is the number of slots in a fresh plan without Summer terms.
const DefaultLength = 8

// SummerLength covers the same span when Summer terms participate.
const SummerLength = 12

// Generate produces the forward-planning slot sequence from a start term/year.
// The cycle is {Fall, Spring} or {Fall, Spring, Summer}; the year increments
// exactly on the Fall->Spring transition (Spring belongs to the calendar year
// after the Fall that opens the academic year). The first slot is current,
// the rest planned.
func Generate(startYear int, startTerm domain.Term, includeSummer bool) []*domain.Slot {
	terms := []domain.Term{domain.TermFall, domain.TermSpring}
	if includeSummer {
		terms = append(terms, domain.TermSummer)
	}

	total := DefaultLength
	if includeSummer {
		total = SummerLength
	}

	year := startYear
	termIndex := 0
	if idx := startTerm.AcademicOrder(); idx < len(terms) {
		termIndex = idx
	}

	slots := make([]*domain.Slot, 0, total)
	for i := 0; i < total; i++ {
		status := domain.SlotPlanned
		if i == 0 {
			status = domain.SlotCurrent
		}
		slots = append(slots, &domain.Slot{
			ID:            domain.SlotID(terms[termIndex], year),
			Term:          terms[termIndex],
			Year:          year,
			SequenceIndex: i,
			Status:        status,
		})

		current := terms[termIndex]
		termIndex++
		if termIndex >= len(terms) {
			// Wrapped back to Fall; the year stays (Spring 2026 -> Fall 2026).
			termIndex = 0
		} else if current == domain.TermFall && terms[termIndex] == domain.TermSpring {
			year++
		}
	}

	return slots
}

// FromObserved creates exactly one slot per distinct observed semester
// identifier, sorted chronologically (year major, then calendar term order;
// an audit lists history, not a forward plan). No slots are invented for gaps;
// all slots start planned with no courses.
func FromObserved(semesterIDs []string) ([]*domain.Slot, error) {
	seen := make(map[string]bool, len(semesterIDs))
	slots := make([]*domain.Slot, 0, len(semesterIDs))
	for _, id := range semesterIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		term, year, err := ParseSlotID(id)
		if err != nil {
			return nil, err
		}
		slots = append(slots, &domain.Slot{
			ID:     id,
			Term:   term,
			Year:   year,
			Status: domain.SlotPlanned,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Year != slots[j].Year {
			return slots[i].Year < slots[j].Year
		}
		return slots[i].Term.ChronologicalOrder() < slots[j].Term.ChronologicalOrder()
	})
	for i, s := range slots {
		s.SequenceIndex = i
	}
	return slots, nil
}

// ParseSlotID splits a "TermYYYY" identifier such as "Fall2025".
func ParseSlotID(id string) (domain.Term, int, error) {
	for _, term := range []domain.Term{domain.TermSpring, domain.TermSummer, domain.TermFall, domain.TermWinter} {
		prefix := string(term)
		if len(id) > len(prefix) && id[:len(prefix)] == prefix {
			year, err := strconv.Atoi(id[len(prefix):])
			if err != nil {
				return "", 0, fmt.Errorf("semester id %q: invalid year", id)
			}
			return term, year, nil
		}
	}
	return "", 0, fmt.Errorf("semester id %q: unrecognized term", id)
}
