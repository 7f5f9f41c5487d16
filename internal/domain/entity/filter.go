package entity

import "strings"

// TaskFilter narrows a task listing. Zero values mean the filter is not applied.
type TaskFilter struct {
	Status TaskStatus
	Search string
}

// HasStatus reports whether a status filter is set.
func (f TaskFilter) HasStatus() bool {
	return f.Status != ""
}

// HasSearch reports whether a non-blank search term is set.
func (f TaskFilter) HasSearch() bool {
	return strings.TrimSpace(f.Search) != ""
}

// Matches applies the filter to a single task. Search is a case-insensitive
// substring match against the title or the description.
func (f TaskFilter) Matches(t *Task) bool {
	if f.HasStatus() && t.Status != f.Status {
		return false
	}
	if f.HasSearch() {
		needle := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}
