package services

import (
	"context"
	"fmt"

	"github.com/luisf2211/kanban-project/internal/common"
	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
	"github.com/luisf2211/kanban-project/internal/server/repositories/projects"
)

type ProjectService struct {
	repo projects.Repository
}

func NewProjectService(repo projects.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

// Create requires name, status and priority, and only accepts the closed
// kanban variants for the latter two.
func (s *ProjectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Name == "" || p.Status == "" || p.Priority == "" {
		return nil, fmt.Errorf("%w: name, status and priority are required", common.ErrValidation)
	}
	if !p.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, p.Status)
	}
	if !p.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, p.Priority)
	}
	return s.repo.Insert(ctx, p)
}

// Update sanitizes the raw payload and applies the remaining fields. Status
// and priority values, when present, must be known variants. An empty
// sanitized payload is rejected without touching the database.
func (s *ProjectService) Update(ctx context.Context, id string, payload map[string]any) (*models.Project, error) {
	cleaned := SanitizePayload(payload)
	if len(cleaned) == 0 {
		return nil, common.ErrEmptyUpdate
	}
	if v, ok := cleaned["status"]; ok {
		st, _ := v.(string)
		if !kanban.Status(st).Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, st)
		}
	}
	if v, ok := cleaned["priority"]; ok {
		pr, _ := v.(string)
		if !kanban.Priority(pr).Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, pr)
		}
	}
	return s.repo.Update(ctx, id, cleaned)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
