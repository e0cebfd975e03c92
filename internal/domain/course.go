package domain

// Course is a catalog entry. Base catalog entries are immutable; entries with
// Synthesized set were created by audit reconciliation for codes the base
// catalog does not know.
type Course struct {
	ID                      string
	Code                    string // display form, e.g. "CS 251"
	Name                    string
	Credits                 float64
	Prerequisites           []string // must occupy a strictly earlier slot
	ConcurrentPrerequisites []string // must occupy the same slot or earlier
	Category                Category
	Synthesized             bool
}

// HasPrerequisite reports whether id appears in the strict prerequisite list.
func (c *Course) HasPrerequisite(id string) bool {
	for _, p := range c.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}

// HasConcurrentPrerequisite reports whether id appears in the concurrent
// prerequisite list.
func (c *Course) HasConcurrentPrerequisite(id string) bool {
	for _, p := range c.ConcurrentPrerequisites {
		if p == id {
			return true
		}
	}
	return false
}
