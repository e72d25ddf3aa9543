package models

import (
	"time"

	"github.com/luisf2211/kanban-project/internal/kanban"
)

// Project is a kanban card.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      kanban.Status   `json:"status"`
	Priority    kanban.Priority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
}
