package audit

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
	"github.com/aisharahman/gradpath/internal/sequence"
)

// ErrEmptyAudit means no parsed semester could be recognized at all.
var ErrEmptyAudit = errors.New("audit contains no recognizable semesters")

// Report summarizes a reconciliation run for the caller to display.
type Report struct {
	EarliestSemester    string
	Imported            int
	Skipped             int
	Warnings            []string
	SynthesizedCourses  []string
	PlaceholderMappings map[string]string
}

// genEdPlaceholders maps the recognized general-education category names to
// the placeholder identifiers they satisfy. The additional-electives category
// needs two courses, hence two placeholders.
var genEdPlaceholders = map[string][]string{
	"Exploring World Cultures":                {"GEN101"},
	"Understanding the Creative Arts":         {"GEN102"},
	"Understanding the Past":                  {"GEN103"},
	"Understanding the Individual and Society": {"GEN104"},
	"Understanding U.S. Society":              {"GEN105"},
	"Humanities/Social Sciences/Art Electives": {"GEN106", "GEN107"},
}

var (
	techElectivePattern = regexp.MustCompile(`^CS[34]\d\d$`)
	mathElectivePattern = regexp.MustCompile(`^(MATH|MCS|STAT)[2-9]\d\d$`)
)

// mathRequired are math-prefixed codes that belong to the required sequence,
// not the elective pool.
var mathRequired = map[string]bool{
	"MATH180": true, "MATH181": true, "MATH210": true,
	"IE342": true, "STAT381": true,
}

// Reconciler maps parsed audit history onto a plan. The catalog overlay
// receives synthesized entries; the base layer is never modified.
type Reconciler struct {
	cat *catalog.Catalog
}

func NewReconciler(cat *catalog.Catalog) *Reconciler {
	return &Reconciler{cat: cat}
}

// Reconcile builds a fully reconciled replacement plan from the parsed audit
// and the prior plan. It returns the new plan without touching prior; the
// caller commits the replacement only after this succeeds, so a failed
// reconciliation leaves existing state intact. Malformed rows are skipped
// with warnings, never fatal.
func (r *Reconciler) Reconcile(parsed *ParsedAudit, prior *domain.Plan) (*domain.Plan, *Report, error) {
	report := &Report{PlaceholderMappings: make(map[string]string)}

	rows, slotIDs := r.normalize(parsed, report)
	if len(slotIDs) == 0 {
		return nil, nil, ErrEmptyAudit
	}

	slots, err := sequence.FromObserved(slotIDs)
	if err != nil {
		return nil, nil, err
	}

	plan := r.seedPlan(prior, slots)
	report.EarliestSemester = plan.Slots[0].ID

	excluded := make(map[string]bool, len(parsed.ExcludedCodes))
	for _, code := range parsed.ExcludedCodes {
		excluded[normalizeCode(code)] = true
	}

	for _, row := range rows {
		if isWithdrawal(row.course.Grade) || excluded[normalizeCode(row.course.Code)] {
			report.Skipped++
			continue
		}
		r.applyRow(plan, row, report)
	}

	r.dropSatisfiedPlaceholders(plan)
	r.markCurrent(plan)
	plan.UpdatedAt = time.Now().UTC()

	return plan, report, nil
}

type observedRow struct {
	slotID string
	course ParsedCourse
}

// normalize converts term-code keys to slot identifiers and flattens the
// parsed structure into deterministic row order. Unrecognized term codes are
// skipped with a warning rather than aborting the import.
func (r *Reconciler) normalize(parsed *ParsedAudit, report *Report) ([]observedRow, []string) {
	keys := make([]string, 0, len(parsed.Semesters))
	for key := range parsed.Semesters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []observedRow
	var slotIDs []string
	for _, key := range keys {
		term, year, err := ParseTermCode(key)
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
			report.Skipped += len(parsed.Semesters[key])
			continue
		}
		slotID := domain.SlotID(term, year)
		slotIDs = append(slotIDs, slotID)
		for _, course := range parsed.Semesters[key] {
			rows = append(rows, observedRow{slotID: slotID, course: course})
		}
	}
	return rows, slotIDs
}

// seedPlan builds the replacement plan: the observed slot sequence with any
// prior assignments preserved for slot identifiers that survive, plus the
// prior plan's identity and auxiliary lists.
func (r *Reconciler) seedPlan(prior *domain.Plan, slots []*domain.Slot) *domain.Plan {
	plan := &domain.Plan{
		ID:                 prior.ID,
		UserID:             prior.UserID,
		Major:              prior.Major,
		Slots:              slots,
		ExtraMathElectives: append([]string(nil), prior.ExtraMathElectives...),
		ExtraTechElectives: append([]string(nil), prior.ExtraTechElectives...),
		PlaceholderMap:     make(map[string]string, len(prior.PlaceholderMap)),
		TransferCredits:    append([]domain.TransferCredit(nil), prior.TransferCredits...),
		AuditDerived:       true,
		CreatedAt:          prior.CreatedAt,
	}
	for k, v := range prior.PlaceholderMap {
		plan.PlaceholderMap[k] = v
	}

	first := slots[0]
	plan.Start = domain.StartSemester{Year: first.Year, Term: first.Term}
	for _, s := range slots {
		if s.Term == domain.TermSummer {
			plan.Start.IncludeSummer = true
			break
		}
	}

	for _, slot := range slots {
		old, ok := prior.SlotByID(slot.ID)
		if !ok {
			continue
		}
		slot.Status = old.Status
		for _, courseID := range old.Courses {
			slot.Courses = append(slot.Courses, courseID)
			if course, found := r.cat.Get(courseID); found {
				slot.Credits += course.Credits
			}
		}
	}

	return plan
}

// applyRow resolves one observed course against the catalog and places it
// into its observed slot.
func (r *Reconciler) applyRow(plan *domain.Plan, row observedRow, report *Report) {
	code := normalizeCode(row.course.Code)
	if code == "" {
		report.Skipped++
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s: row with no course code skipped", row.slotID))
		return
	}

	course, ok := r.cat.Get(code)
	if !ok {
		course = r.synthesize(code, row.course, report)
		if course == nil {
			report.Skipped++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: unknown course %s has no name; skipped", row.slotID, code))
			return
		}
	}

	r.recordDiscoveredElectives(plan, course)

	if placeholder := r.consumeGenEdPlaceholder(plan, row.course.GenEdCategory); placeholder != "" {
		if plan.IsScheduled(placeholder) {
			_ = planner.Remove(plan, r.cat, placeholder)
		}
		plan.PlaceholderMap[placeholder] = course.ID
		report.PlaceholderMappings[placeholder] = course.ID
	}

	if err := planner.Place(plan, r.cat, course.ID, row.slotID); err != nil {
		report.Skipped++
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s: could not place %s: %v", row.slotID, code, err))
		return
	}
	report.Imported++
}

// synthesize creates a catalog overlay entry for a code the catalog does not
// know. Codes in the CS 300-499 range become technical electives; anything
// else with a parsed name becomes a generic entry; nameless unknowns are not
// synthesized.
func (r *Reconciler) synthesize(code string, row ParsedCourse, report *Report) *domain.Course {
	credits := row.Credits
	if credits <= 0 {
		credits = 3
	}
	display := row.OriginalCode
	if display == "" {
		display = code
	}
	name := row.Name

	var category domain.Category
	switch {
	case techElectivePattern.MatchString(code):
		category = domain.CategoryElective
		if name == "" {
			name = display
		}
	case name != "":
		category = domain.CategoryGeneral
	default:
		return nil
	}

	course := &domain.Course{
		ID:       code,
		Code:     display,
		Name:     name,
		Credits:  credits,
		Category: category,
	}
	r.cat.AddSynthesized(course)
	report.SynthesizedCourses = append(report.SynthesizedCourses, code)
	return course
}

// recordDiscoveredElectives extends the plan's elective membership lists with
// codes the audit revealed, so quota tracking covers them from now on.
func (r *Reconciler) recordDiscoveredElectives(plan *domain.Plan, course *domain.Course) {
	id := course.ID
	if mathElectivePattern.MatchString(id) && !mathRequired[id] && !planner.BaseMathElective(id) {
		if !containsStr(plan.ExtraMathElectives, id) {
			plan.ExtraMathElectives = append(plan.ExtraMathElectives, id)
		}
	}
	if techElectivePattern.MatchString(id) && course.Category == domain.CategoryElective && !planner.BaseTechnicalElective(id) {
		if !containsStr(plan.ExtraTechElectives, id) {
			plan.ExtraTechElectives = append(plan.ExtraTechElectives, id)
		}
	}
}

// consumeGenEdPlaceholder returns the next unsatisfied placeholder for a
// recognized gen-ed category, or "" when the category is unknown or already
// fully mapped.
func (r *Reconciler) consumeGenEdPlaceholder(plan *domain.Plan, category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	for _, placeholder := range genEdPlaceholders[category] {
		if _, taken := plan.PlaceholderMap[placeholder]; !taken {
			return placeholder
		}
	}
	return ""
}

// dropSatisfiedPlaceholders removes free-elective placeholders once the
// graduation credit target is met and math-elective placeholders once the
// math quota is covered by real courses.
func (r *Reconciler) dropSatisfiedPlaceholders(plan *domain.Plan) {
	quota := planner.NewQuotaTracker(plan, r.cat)

	if plan.TotalCredits() >= planner.GraduationCredits {
		for _, id := range plan.ScheduledCourses() {
			if planner.IsFreeElectivePlaceholder(id) {
				_ = planner.Remove(plan, r.cat, id)
			}
		}
	}

	realMath := 0
	var mathPlaceholders []string
	for _, id := range plan.ScheduledCourses() {
		if planner.IsMathElectivePlaceholder(id) {
			mathPlaceholders = append(mathPlaceholders, id)
			continue
		}
		if quota.IsMathElective(id) || quota.IsRequiredStatistics(id) {
			realMath++
		}
	}
	if realMath >= planner.MaxMathElectives {
		for _, id := range mathPlaceholders {
			_ = planner.Remove(plan, r.cat, id)
		}
	}
}

// markCurrent sets the current slot to the first one after the last slot
// bearing any course, appending a single generated future slot when the plan
// runs out of room and credits are still needed.
func (r *Reconciler) markCurrent(plan *domain.Plan) {
	for _, s := range plan.Slots {
		if s.Status == domain.SlotCurrent {
			s.Status = domain.SlotPlanned
		}
	}

	lastPopulated := -1
	for i, s := range plan.Slots {
		if len(s.Courses) > 0 {
			lastPopulated = i
		}
	}

	if lastPopulated+1 < len(plan.Slots) {
		plan.Slots[lastPopulated+1].Status = domain.SlotCurrent
		return
	}

	if plan.TotalCredits() < planner.GraduationCredits {
		if slot, err := planner.AppendNextSlot(plan); err == nil {
			slot.Status = domain.SlotCurrent
			return
		}
	}
	plan.Slots[len(plan.Slots)-1].Status = domain.SlotCurrent
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), " ", ""))
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
