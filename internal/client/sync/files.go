package sync

import (
	"context"
	gosync "sync"

	"github.com/luisf2211/kanban-project/internal/models"
)

// FileList is the synchronization controller for the uploaded-files view.
type FileList struct {
	api FileAPI

	mu    gosync.Mutex
	items []models.File
}

func NewFileList(api FileAPI) *FileList {
	return &FileList{api: api}
}

// Refresh replaces the local collection with the server's.
func (l *FileList) Refresh(ctx context.Context) error {
	fetched, err := l.api.ListFiles(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = fetched
	l.mu.Unlock()
	return nil
}

// Items returns a copy of the current collection.
func (l *FileList) Items() []models.File {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.File, len(l.items))
	copy(out, l.items)
	return out
}

// Upload sends the file and appends the server's record to the collection.
func (l *FileList) Upload(ctx context.Context, filename string, content []byte, name, description string) (*models.File, error) {
	created, err := l.api.UploadFile(ctx, filename, content, name, description)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.items = append(l.items, *created)
	l.mu.Unlock()
	return created, nil
}

// Delete removes the record locally first and re-inserts it when the server
// rejects the delete.
func (l *FileList) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	idx := -1
	for i, f := range l.items {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return nil
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.mu.Unlock()

	if err := l.api.DeleteFile(ctx, id); err != nil {
		l.mu.Lock()
		l.items = append(l.items, removed)
		l.mu.Unlock()
		return err
	}
	return nil
}

// DownloadURL fetches a signed, time-limited URL for the file.
func (l *FileList) DownloadURL(ctx context.Context, id string) (string, error) {
	return l.api.FileDownloadURL(ctx, id)
}
