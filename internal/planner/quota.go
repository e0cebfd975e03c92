package planner

import (
	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
)

// Quota caps. Math electives and required statistics share one cap.
const (
	MaxMathElectives      = 3
	MaxScienceElectives   = 2
	MaxTechnicalElectives = 6

	// GraduationCredits is the credit total required for the degree.
	GraduationCredits = 128
)

// Fixed elective membership lists. Audit reconciliation extends math and
// technical membership through the plan's extra lists; these bases never
// change.
var (
	mathElectives = []string{
		"MATH215", "MATH218", "MATH220", "MATH320", "MATH430",
		"MATH435", "MATH436", "MCS421", "MCS423", "MCS471",
		"STAT401", "STAT473",
	}

	// Exactly one of these must be taken; both count toward the math cap.
	requiredStatistics = []string{"IE342", "STAT381"}

	scienceElectives = []string{
		"BIOS110", "BIOS120", "CHEM122", "CHEM123", "CHEM116",
		"CHEM124", "CHEM125", "CHEM118", "PHYS141", "PHYS142",
		"EAES101", "EAES111",
	}

	technicalElectives = []string{
		"CS407", "CS411", "CS418", "CS422", "CS440", "CS351",
	}
)

// RequiredStatisticsCourses returns the required-statistics pair.
func RequiredStatisticsCourses() []string {
	return append([]string(nil), requiredStatistics...)
}

// BaseMathElective reports membership in the fixed math elective list,
// ignoring audit-discovered extras.
func BaseMathElective(id string) bool {
	return contains(mathElectives, id)
}

// BaseTechnicalElective reports membership in the fixed technical elective
// list, ignoring audit-discovered extras.
func BaseTechnicalElective(id string) bool {
	return contains(technicalElectives, id)
}

// QuotaTracker answers elective-category membership and count questions for
// one plan. All methods are pure reads; nothing is cached.
type QuotaTracker struct {
	plan *domain.Plan
	cat  *catalog.Catalog
}

func NewQuotaTracker(plan *domain.Plan, cat *catalog.Catalog) *QuotaTracker {
	return &QuotaTracker{plan: plan, cat: cat}
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// IsMathElective reports membership in the math elective category: the fixed
// list plus any codes discovered via audit import.
func (q *QuotaTracker) IsMathElective(courseID string) bool {
	return contains(mathElectives, courseID) || contains(q.plan.ExtraMathElectives, courseID)
}

// IsRequiredStatistics reports whether courseID is one of the required
// statistics pair.
func (q *QuotaTracker) IsRequiredStatistics(courseID string) bool {
	return contains(requiredStatistics, courseID)
}

// IsScienceElective reports membership in the science elective category.
func (q *QuotaTracker) IsScienceElective(courseID string) bool {
	return contains(scienceElectives, courseID)
}

// IsTechnicalElective reports membership in the technical (CS) elective
// category: the fixed list plus audit-discovered codes.
func (q *QuotaTracker) IsTechnicalElective(courseID string) bool {
	return contains(technicalElectives, courseID) || contains(q.plan.ExtraTechElectives, courseID)
}

// CountMathElectives counts scheduled math electives plus scheduled required
// statistics courses (both draw from the same cap). excludeID, when non-empty,
// omits that one course, answering "what would the count be without this
// course" when validating a move.
func (q *QuotaTracker) CountMathElectives(excludeID string) int {
	count := 0
	for _, id := range q.plan.ScheduledCourses() {
		if id == excludeID {
			continue
		}
		if q.IsMathElective(id) || q.IsRequiredStatistics(id) {
			count++
		}
	}
	return count
}

// CountScienceElectives counts scheduled science electives, optionally
// excluding one course.
func (q *QuotaTracker) CountScienceElectives(excludeID string) int {
	count := 0
	for _, id := range q.plan.ScheduledCourses() {
		if id == excludeID {
			continue
		}
		if q.IsScienceElective(id) {
			count++
		}
	}
	return count
}

// CountTechnicalElectives counts scheduled technical electives, optionally
// excluding one course.
func (q *QuotaTracker) CountTechnicalElectives(excludeID string) int {
	count := 0
	for _, id := range q.plan.ScheduledCourses() {
		if id == excludeID {
			continue
		}
		if q.IsTechnicalElective(id) {
			count++
		}
	}
	return count
}

// HasRequiredStatistics reports whether either required statistics course is
// scheduled.
func (q *QuotaTracker) HasRequiredStatistics() bool {
	for _, id := range requiredStatistics {
		if q.plan.IsScheduled(id) {
			return true
		}
	}
	return false
}

// OtherRequiredStatisticsScheduled reports whether the complementary required
// statistics course to courseID is already scheduled.
func (q *QuotaTracker) OtherRequiredStatisticsScheduled(courseID string) bool {
	for _, id := range requiredStatistics {
		if id != courseID && q.plan.IsScheduled(id) {
			return true
		}
	}
	return false
}

// MathElectiveCredits totals the credits of scheduled math electives,
// optionally excluding one course. Required statistics credits are not
// included here; the credit figure feeds the math-elective credit display.
func (q *QuotaTracker) MathElectiveCredits(excludeID string) float64 {
	var total float64
	for _, id := range q.plan.ScheduledCourses() {
		if id == excludeID || !q.IsMathElective(id) {
			continue
		}
		if course, ok := q.cat.Get(id); ok {
			total += course.Credits
		}
	}
	return total
}

// ShouldHideFromBrowser reports whether showing courseID in the unscheduled
// course picker would be misleading: its category cap is met, it is the
// complement of a required statistics course already taken, it is a gen-ed
// placeholder already satisfied by a mapped real course, or it is a free
// elective placeholder that no longer serves any purpose.
func (q *QuotaTracker) ShouldHideFromBrowser(courseID string) bool {
	if _, ok := q.cat.Get(courseID); !ok {
		return false
	}

	isMath := q.IsMathElective(courseID)
	isStat := q.IsRequiredStatistics(courseID)
	if (isMath || isStat) && q.CountMathElectives("") >= MaxMathElectives {
		return true
	}
	if isStat && q.OtherRequiredStatisticsScheduled(courseID) {
		return true
	}
	if q.IsScienceElective(courseID) && q.CountScienceElectives("") >= MaxScienceElectives {
		return true
	}
	if q.IsTechnicalElective(courseID) && q.CountTechnicalElectives("") >= MaxTechnicalElectives {
		return true
	}

	// Gen-ed placeholders disappear once a real course has been mapped onto
	// the requirement they stood for.
	if _, mapped := q.plan.PlaceholderMap[courseID]; mapped && IsGenEdPlaceholder(courseID) {
		return true
	}

	// Free elective placeholders are only useful while credits are still
	// needed and that particular instance is unused.
	if IsFreeElectivePlaceholder(courseID) {
		if q.plan.TotalCredits() >= GraduationCredits {
			return true
		}
		if q.plan.IsScheduled(courseID) {
			return true
		}
	}

	return false
}

// IsGenEdPlaceholder reports whether id is one of the GEN101-107 synthetic
// general-education entries.
func IsGenEdPlaceholder(id string) bool {
	return len(id) == 6 && id[:3] == "GEN"
}

// IsFreeElectivePlaceholder reports whether id is one of the FREE001-003
// synthetic entries.
func IsFreeElectivePlaceholder(id string) bool {
	return len(id) == 7 && id[:4] == "FREE"
}

// IsMathElectivePlaceholder reports whether id is a synthetic math-elective
// entry (only ever present in audit-era plans).
func IsMathElectivePlaceholder(id string) bool {
	return len(id) > 8 && id[:8] == "MATHELEC"
}
