// Package audit reconciles an externally parsed degree-audit document into
// the planning model. Parsing the source document is out of scope; this
// package consumes the parser's normalized output, resolves each row against
// the catalog (synthesizing entries where needed), and rebuilds the slot
// sequence around the observed history.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aisharahman/gradpath/internal/domain"
)

// ParsedAudit is the normalized output of an external audit-document parser.
// Semester keys use the document's term-code convention: a two-letter term
// prefix (FA, SP, SU, WI, or WS) followed by a two-digit year. Internal
// "TermYYYY" identifiers are also accepted.
type ParsedAudit struct {
	Semesters map[string][]ParsedCourse `json:"semesters"`
	// ExcludedCodes lists courses the source document itself flags as not
	// counting toward degree credit.
	ExcludedCodes []string `json:"excluded_codes,omitempty"`
}

// ParsedCourse is one observed course row.
type ParsedCourse struct {
	Code          string  `json:"code"`
	Credits       float64 `json:"credits"`
	Name          string  `json:"name,omitempty"`
	OriginalCode  string  `json:"original_display_code,omitempty"`
	Grade         string  `json:"grade,omitempty"`
	GenEdCategory string  `json:"gen_ed_category,omitempty"`
}

// LoadParsedAudit reads and parses a serialized ParsedAudit file.
func LoadParsedAudit(path string) (*ParsedAudit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var parsed ParsedAudit
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing audit file: %w", err)
	}
	return &parsed, nil
}

var termPrefixes = map[string]domain.Term{
	"FA": domain.TermFall,
	"SP": domain.TermSpring,
	"SU": domain.TermSummer,
	"WI": domain.TermWinter,
	"WS": domain.TermWinter,
}

// ParseTermCode converts an audit term code such as "FA23" to its term and
// full year. Two-digit years are taken to be in the 2000s.
func ParseTermCode(code string) (domain.Term, int, error) {
	code = strings.TrimSpace(code)
	if len(code) == 4 {
		if term, ok := termPrefixes[strings.ToUpper(code[:2])]; ok {
			yy, err := strconv.Atoi(code[2:])
			if err == nil {
				return term, 2000 + yy, nil
			}
		}
	}
	// Fall back to the internal TermYYYY form.
	for name := range domain.ValidTerms {
		if strings.HasPrefix(code, name) {
			year, err := strconv.Atoi(code[len(name):])
			if err == nil {
				return domain.Term(name), year, nil
			}
		}
	}
	return "", 0, fmt.Errorf("unrecognized term code %q", code)
}

// isWithdrawal reports whether a grade marker means the course was dropped
// and earns no credit.
func isWithdrawal(grade string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(grade)), "W")
}
