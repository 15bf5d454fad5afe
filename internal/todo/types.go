package todo

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Priority is the urgency level of a task. The numeric values are the
// on-disk representation and must not change.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

var priorityNames = [...]string{
	PriorityLow:    "low",
	PriorityNormal: "normal",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

// String returns the priority name, or "" for values outside 0-3.
func (p Priority) String() string {
	if !p.Valid() {
		return ""
	}
	return priorityNames[p]
}

// Valid reports whether p is one of the named levels.
func (p Priority) Valid() bool {
	return p <= PriorityUrgent
}

// PriorityNames returns the level names ordered from low to urgent.
func PriorityNames() []string {
	return slices.Clone(priorityNames[:])
}

// ParsePriority parses a level name (case-insensitive) or its number 0-3.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}
	if n, err := strconv.ParseUint(name, 10, 8); err == nil && Priority(n).Valid() {
		return Priority(n), nil
	}
	return 0, fmt.Errorf("invalid priority %q, must be one of: %s", s, strings.Join(priorityNames[:], ", "))
}

// Task is a single todo entry.
type Task struct {
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// List is a sequence of tasks in insertion order.
type List []Task

// Append returns the list with task placed at the end.
func (l List) Append(task Task) List {
	return append(l, task)
}

// RemoveAt returns the list without the element at the zero-based
// insertion index pos. Out-of-range positions return the list unchanged.
// The receiver's backing array is not modified.
func (l List) RemoveAt(pos int) List {
	if pos < 0 || pos >= len(l) {
		return l
	}
	return append(l[:pos:pos], l[pos+1:]...)
}

// DisplayOrder returns insertion indices in display order: a stable sort by
// priority descending, so equal priorities keep their insertion order.
func (l List) DisplayOrder() []int {
	order := make([]int, len(l))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(l[b].Priority, l[a].Priority)
	})
	return order
}

// SortedForDisplay returns a copy of the list in display order.
func (l List) SortedForDisplay() List {
	sorted := slices.Clone(l)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return sorted
}

// RemoveDisplayed removes the task shown at display position pos and keeps
// the insertion order of the remaining tasks. It reports whether a task was
// removed; out-of-range positions are a no-op.
func (l List) RemoveDisplayed(pos int) (List, bool) {
	if pos < 0 || pos >= len(l) {
		return l, false
	}
	return l.RemoveAt(l.DisplayOrder()[pos]), true
}
