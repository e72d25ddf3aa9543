package sync

import (
	"context"
	gosync "sync"

	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

// Column is one rendered board column: its display label and the projects
// currently in it.
type Column struct {
	Label    string
	Projects []models.Project
}

// Board is the synchronization controller for the project kanban view. A
// drop marks the card as updating, moves it locally, patches only the status
// field, and refreshes from the server whether or not the patch stuck.
type Board struct {
	api ProjectAPI

	mu       gosync.Mutex
	projects []models.Project
	updating map[string]bool
}

func NewBoard(api ProjectAPI) *Board {
	return &Board{api: api, updating: make(map[string]bool)}
}

// Refresh replaces the local project collection with the server's.
func (b *Board) Refresh(ctx context.Context) error {
	fetched, err := b.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.projects = fetched
	b.mu.Unlock()
	return nil
}

// Projects returns a copy of the current collection.
func (b *Board) Projects() []models.Project {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Project, len(b.projects))
	copy(out, b.projects)
	return out
}

// Columns buckets the projects into the four board columns in display
// order. Projects with a status outside the known set are excluded here;
// Unassigned returns them.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	cols := make([]Column, 0, 4)
	for _, s := range kanban.Statuses() {
		label, _ := s.Label()
		col := Column{Label: label}
		for _, p := range b.projects {
			if p.Status == s {
				col.Projects = append(col.Projects, p)
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// Updating reports whether a card's status patch is still in flight. The
// flag goes up when a drop is accepted and comes down once the follow-up
// refresh resolves.
func (b *Board) Updating(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updating[id]
}

// Unassigned returns projects whose status is not one of the known columns.
// They stay visible instead of silently vanishing from the board.
func (b *Board) Unassigned() []models.Project {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Project
	for _, p := range b.projects {
		if !p.Status.Valid() {
			out = append(out, p)
		}
	}
	return out
}

// HandleDrop processes a card drag ending over the column labelled
// destLabel. An empty destination (the drag ended outside any column) is a
// no-op, as is dropping a card back onto its own column. Otherwise the card
// is marked updating, moves locally, only the status field is patched, and
// the board refreshes from the server regardless of the patch outcome.
func (b *Board) HandleDrop(ctx context.Context, projectID, destLabel string) error {
	if destLabel == "" {
		return nil
	}
	status, ok := kanban.StatusFromLabel(destLabel)
	if !ok {
		return nil
	}

	b.mu.Lock()
	idx := -1
	for i, p := range b.projects {
		if p.ID == projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return nil
	}
	if b.projects[idx].Status == status {
		b.mu.Unlock()
		return nil
	}
	b.projects[idx].Status = status
	b.updating[projectID] = true
	b.mu.Unlock()

	err := b.api.UpdateProjectStatus(ctx, projectID, status)

	// The refresh runs even after a failed patch so the card snaps back to
	// where the server says it belongs.
	refreshErr := b.Refresh(ctx)

	b.mu.Lock()
	delete(b.updating, projectID)
	b.mu.Unlock()

	if err == nil {
		err = refreshErr
	}
	return err
}

// Create sends a new project and appends the server's row.
func (b *Board) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	created, err := b.api.CreateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.projects = append(b.projects, *created)
	b.mu.Unlock()
	return created, nil
}

// Delete removes the project locally first and re-inserts it when the
// server rejects the delete.
func (b *Board) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	idx := -1
	for i, p := range b.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return nil
	}
	removed := b.projects[idx]
	b.projects = append(b.projects[:idx], b.projects[idx+1:]...)
	b.mu.Unlock()

	if err := b.api.DeleteProject(ctx, id); err != nil {
		b.mu.Lock()
		b.projects = append(b.projects, removed)
		b.mu.Unlock()
		return err
	}
	return nil
}
