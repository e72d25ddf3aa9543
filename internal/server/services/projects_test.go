package services

import (
	"context"
	"errors"
	"testing"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

type fakeProjectRepo struct {
	inserted         *models.Project
	lastUpdateFields map[string]any
}

func (f *fakeProjectRepo) List(_ context.Context) ([]*models.Project, error) { return nil, nil }

func (f *fakeProjectRepo) Insert(_ context.Context, p *models.Project) (*models.Project, error) {
	f.inserted = p
	return p, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, _ string, fields map[string]any) (*models.Project, error) {
	f.lastUpdateFields = fields
	return &models.Project{}, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, _ string) error { return nil }

func TestProjectCreate_RequiresFields(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{})

	_, err := svc.Create(context.Background(), &models.Project{
		Name:   "Sitio web",
		Status: kanban.StatusTodo,
		// priority missing
	})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestProjectCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{})

	_, err := svc.Create(context.Background(), &models.Project{
		Name:     "Sitio web",
		Status:   kanban.Status("archived"),
		Priority: kanban.PriorityHigh,
	})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestProjectCreate_Success(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), &models.Project{
		Name:     "Sitio web",
		Status:   kanban.StatusTodo,
		Priority: kanban.PriorityUrgent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted == nil {
		t.Fatalf("insert not forwarded to repository")
	}
}

func TestProjectUpdate_RejectsUnknownStatus(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{})

	_, err := svc.Update(context.Background(), "p1", map[string]any{"status": "archived"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestProjectUpdate_RejectsUnknownPriority(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{})

	_, err := svc.Update(context.Background(), "p1", map[string]any{"priority": "blocker"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestProjectUpdate_StatusOnlyPatch(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := NewProjectService(repo)

	_, err := svc.Update(context.Background(), "p1", map[string]any{"status": "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastUpdateFields) != 1 || repo.lastUpdateFields["status"] != "done" {
		t.Fatalf("unexpected fields: %v", repo.lastUpdateFields)
	}
}

func TestProjectUpdate_EmptyAfterSanitization(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{})

	_, err := svc.Update(context.Background(), "p1", map[string]any{"description": ""})
	if !errors.Is(err, common.ErrEmptyUpdate) {
		t.Fatalf("want ErrEmptyUpdate, got %v", err)
	}
}
