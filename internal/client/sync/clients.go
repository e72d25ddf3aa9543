package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	gosync "sync"
	"time"

	"github.com/luisf2211/kanban-project/internal/models"
)

// RowState tracks where a single row sits in the edit lifecycle.
type RowState int

const (
	// RowClean means the row matches the last server response.
	RowClean RowState = iota
	// RowEditing means an edit snapshot exists but nothing was sent yet.
	RowEditing
	// RowSaving means the optimistic value is shown while the PATCH is in flight.
	RowSaving
	// RowError means the last commit was rejected and the row was rolled back.
	RowError
)

// PageSize is the number of client rows shown per page.
const PageSize = 10

// settleWindow is how long a freshly committed row keeps reporting Saving,
// giving the server time to settle before the indicator drops.
const settleWindow = 600 * time.Millisecond

// ErrNoEdit is returned when a commit or cancel arrives for a row that was
// never put into edit mode.
var ErrNoEdit = fmt.Errorf("row is not being edited")

// ClientList is the synchronization controller for the clients collection.
// Edits are applied locally first and rolled back from a snapshot when the
// server rejects them.
type ClientList struct {
	api   ClientAPI
	clock Clock

	mu          gosync.Mutex
	loading     bool
	items       []models.Client
	states      map[string]RowState
	snapshots   map[string]models.Client
	settleUntil map[string]time.Time
}

func NewClientList(api ClientAPI, clock Clock) *ClientList {
	return &ClientList{
		api:         api,
		clock:       clock,
		states:      make(map[string]RowState),
		snapshots:   make(map[string]models.Client),
		settleUntil: make(map[string]time.Time),
	}
}

// Refresh replaces the local collection with the server's, always a full
// replace. The settle window only keeps the saving indicator up; the fetched
// rows win immediately.
func (l *ClientList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	fetched, err := l.api.ListClients(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		return err
	}

	now := l.clock.Now()
	for id, until := range l.settleUntil {
		if !now.Before(until) {
			delete(l.settleUntil, id)
		}
	}
	l.items = fetched
	return nil
}

// Loading reports whether a Refresh is in flight.
func (l *ClientList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Items returns a copy of the current collection.
func (l *ClientList) Items() []models.Client {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Client, len(l.items))
	copy(out, l.items)
	return out
}

// State returns the edit lifecycle state of a row. A committed row keeps
// reporting Saving until its settle window passes.
func (l *ClientList) State(id string) RowState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.settleUntil[id]; ok && l.states[id] == RowClean && l.clock.Now().Before(until) {
		return RowSaving
	}
	return l.states[id]
}

// BeginEdit snapshots the row's current value so a later rollback can
// restore it byte for byte.
func (l *ClientList) BeginEdit(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("client %s: not in collection", id)
	}
	l.snapshots[id] = l.items[idx]
	l.states[id] = RowEditing
	return nil
}

// CommitEdit merges the edited fields into the local row, sends the partial
// update, and on rejection restores the snapshot taken by BeginEdit. On
// success the server's row replaces the optimistic one and the row enters
// its settle window.
func (l *ClientList) CommitEdit(ctx context.Context, id string, fields map[string]any) error {
	l.mu.Lock()
	snapshot, ok := l.snapshots[id]
	if !ok {
		l.mu.Unlock()
		return ErrNoEdit
	}
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return fmt.Errorf("client %s: not in collection", id)
	}

	cleaned := cleanFields(fields)
	applyClientFields(&l.items[idx], cleaned)
	l.states[id] = RowSaving
	l.mu.Unlock()

	updated, err := l.api.UpdateClient(ctx, id, cleaned)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		if idx := l.indexOf(id); idx >= 0 {
			l.items[idx] = snapshot
		}
		l.states[id] = RowError
		return err
	}
	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx] = *updated
	}
	l.states[id] = RowClean
	delete(l.snapshots, id)
	l.settleUntil[id] = l.clock.Now().Add(settleWindow)
	return nil
}

// CancelEdit discards pending changes and restores the snapshot.
func (l *ClientList) CancelEdit(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	snapshot, ok := l.snapshots[id]
	if !ok {
		return ErrNoEdit
	}
	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx] = snapshot
	}
	delete(l.snapshots, id)
	l.states[id] = RowClean
	return nil
}

// Create sends a new client and appends the server's row to the collection.
func (l *ClientList) Create(ctx context.Context, fields map[string]any) (*models.Client, error) {
	created, err := l.api.CreateClient(ctx, cleanFields(fields))
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.items = append(l.items, *created)
	l.mu.Unlock()
	return created, nil
}

// Delete removes the row locally first and re-inserts it when the server
// rejects the delete.
func (l *ClientList) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return fmt.Errorf("client %s: not in collection", id)
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.mu.Unlock()

	if err := l.api.DeleteClient(ctx, id); err != nil {
		l.mu.Lock()
		l.items = append(l.items, removed)
		l.mu.Unlock()
		return err
	}
	l.mu.Lock()
	delete(l.states, id)
	delete(l.snapshots, id)
	delete(l.settleUntil, id)
	l.mu.Unlock()
	return nil
}

// Page returns the rows for a 1-based page number.
func (l *ClientList) Page(n int) []models.Client {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 1 {
		return nil
	}
	start := (n - 1) * PageSize
	if start >= len(l.items) {
		return nil
	}
	end := start + PageSize
	if end > len(l.items) {
		end = len(l.items)
	}
	out := make([]models.Client, end-start)
	copy(out, l.items[start:end])
	return out
}

// TotalPages returns ceil(len/PageSize); zero for an empty collection.
func (l *ClientList) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return (len(l.items) + PageSize - 1) / PageSize
}

func (l *ClientList) indexOf(id string) int {
	for i, c := range l.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// cleanFields mirrors the server's payload sanitization: null and
// empty-string values are dropped before anything is sent or applied.
func cleanFields(fields map[string]any) map[string]any {
	cleaned := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// applyClientFields merges edited fields into the local row for the
// optimistic display. Unknown keys are ignored; the server is the authority
// on what actually persists.
func applyClientFields(c *models.Client, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				c.Name = s
			}
		case "type":
			if s, ok := v.(string); ok {
				c.Type = s
			}
		case "value":
			c.Value = numericText(v)
		case "date_from":
			if s, ok := v.(string); ok {
				c.DateFrom = &s
			}
		case "date_to":
			if s, ok := v.(string); ok {
				c.DateTo = &s
			}
		}
	}
}

// numericText renders an edited amount as the decimal string the row model
// carries, matching the server-side representation.
func numericText(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return ""
	}
}
