package sequence

import "github.com/aisharahman/gradpath/internal/domain"

// Next returns the chronological successor of a term/year under the same
// cycle arithmetic as Generate. Fall never steps directly to Summer; Summer
// only participates when includeSummer is set.
func Next(term domain.Term, year int, includeSummer bool) (domain.Term, int) {
	switch term {
	case domain.TermFall:
		return domain.TermSpring, year + 1
	case domain.TermSpring:
		if includeSummer {
			return domain.TermSummer, year
		}
		return domain.TermFall, year
	case domain.TermSummer:
		return domain.TermFall, year
	default:
		// Winter slots only arrive via audits; the successor is the Spring
		// of the following calendar year.
		return domain.TermSpring, year + 1
	}
}
