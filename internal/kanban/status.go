// Package kanban defines the closed status and priority variants for
// projects together with the bidirectional mapping between status values and
// board column labels. Both the HTTP service layer and the client-side board
// controller import this package, so the mapping exists in exactly one place.
package kanban

// Status is a project's position on the board.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Priority is a project's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// statuses holds the column order as rendered on the board.
var statuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

var statusLabels = map[Status]string{
	StatusTodo:       "Backlog",
	StatusInProgress: "En Progreso",
	StatusReview:     "En Revisión",
	StatusDone:       "Completado",
}

var labelStatuses = func() map[string]Status {
	m := make(map[string]Status, len(statusLabels))
	for s, l := range statusLabels {
		m[l] = s
	}
	return m
}()

var priorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the board column label for s, or false for unknown statuses.
func (s Status) Label() (string, bool) {
	l, ok := statusLabels[s]
	return l, ok
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	_, ok := priorities[p]
	return ok
}

// StatusFromLabel maps a board column label back to its status value.
func StatusFromLabel(label string) (Status, bool) {
	s, ok := labelStatuses[label]
	return s, ok
}

// Statuses returns the statuses in board column order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Columns returns the board column labels in display order.
func Columns() []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, statusLabels[s])
	}
	return out
}
