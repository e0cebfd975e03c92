package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/cli/formatter"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
)

const browsePageSize = 12

// browseModel is a read-only catalog browser: a filter input over the
// courses still available for placement, with a detail pane for the
// selected entry.
type browseModel struct {
	input    textinput.Model
	plan     *domain.Plan
	cat      *catalog.Catalog
	quota    *planner.QuotaTracker
	all      []*domain.Course
	filtered []*domain.Course
	cursor   int
	offset   int
}

func newBrowseModel(plan *domain.Plan, cat *catalog.Catalog) browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter by code or name"
	ti.Focus()
	ti.CharLimit = 40

	quota := planner.NewQuotaTracker(plan, cat)
	var visible []*domain.Course
	for _, course := range cat.All() {
		if quota.ShouldHideFromBrowser(course.ID) {
			continue
		}
		visible = append(visible, course)
	}

	m := browseModel{
		input: ti,
		plan:  plan,
		cat:   cat,
		quota: quota,
		all:   visible,
	}
	m.filtered = visible
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampScroll()
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.clampScroll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *browseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.all
	} else {
		var out []*domain.Course
		for _, course := range m.all {
			if strings.Contains(strings.ToLower(course.Code), query) ||
				strings.Contains(strings.ToLower(course.Name), query) {
				out = append(out, course)
			}
		}
		m.filtered = out
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *browseModel) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+browsePageSize {
		m.offset = m.cursor - browsePageSize + 1
	}
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Course Browser"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(formatter.Dim("no matching courses"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + browsePageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		course := m.filtered[i]
		line := fmt.Sprintf("%-10s %s", course.Code, course.Name)
		if m.plan.IsScheduled(course.ID) {
			line += formatter.Dim("  (scheduled)")
		}
		if i == m.cursor {
			b.WriteString(formatter.StyleBlue.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView(m.filtered[m.cursor]))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ select · type to filter · esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) detailView(course *domain.Course) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s · %.1f credits · %s",
		formatter.Bold(course.Code), course.Credits, course.Category))
	if len(course.Prerequisites) > 0 {
		parts = append(parts, "requires "+strings.Join(course.Prerequisites, ", "))
	}
	if len(course.ConcurrentPrerequisites) > 0 {
		parts = append(parts, "concurrent with "+strings.Join(course.ConcurrentPrerequisites, ", "))
	}
	if slot, ok := m.plan.SlotOf(course.ID); ok {
		parts = append(parts, "scheduled in "+slot.Label())
	}
	return strings.Join(parts, "\n")
}
