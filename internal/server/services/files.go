package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luisf2211/kanban-project/internal/models"
	"github.com/luisf2211/kanban-project/internal/server/blob"
	"github.com/luisf2211/kanban-project/internal/server/repositories/files"
)

// fallbackFileName is used when the form supplies neither a display name nor
// an original filename.
const fallbackFileName = "archivo"

// FileService orchestrates the coupling between the metadata store and
// object storage: upload writes the blob before the row, delete removes the
// blob before the row and aborts if the blob removal fails.
type FileService struct {
	repo         files.Repository
	blob         blob.Store
	clock        Clock
	signedURLTTL time.Duration
}

func NewFileService(repo files.Repository, store blob.Store, clock Clock, signedURLTTL time.Duration) *FileService {
	if clock == nil {
		clock = RealClock{}
	}
	if signedURLTTL <= 0 {
		signedURLTTL = blob.DefaultSignedURLTTL
	}
	return &FileService{repo: repo, blob: store, clock: clock, signedURLTTL: signedURLTTL}
}

// UploadInput is the parsed multipart payload.
type UploadInput struct {
	Content      []byte
	OriginalName string
	DisplayName  string
	Description  string
	ContentType  string
}

func (s *FileService) List(ctx context.Context) ([]*models.File, error) {
	return s.repo.List(ctx)
}

// Upload writes the payload to object storage under a timestamp-prefixed
// key derived from the original filename, then inserts the metadata row.
// A partially written blob is not cleaned up when the insert fails.
func (s *FileService) Upload(ctx context.Context, in UploadInput) (*models.File, error) {
	name := in.DisplayName
	if name == "" {
		name = in.OriginalName
	}
	if name == "" {
		name = fallbackFileName
	}

	key := fmt.Sprintf("%d_%s", s.clock.Now().UnixMilli(), in.OriginalName)

	url, err := s.blob.Put(ctx, key, in.Content, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("blob upload: %w", err)
	}

	return s.repo.Insert(ctx, &models.File{
		Name:        name,
		Description: in.Description,
		FileType:    FileExtension(in.OriginalName),
		StorageURL:  url,
		StorageKey:  key,
	})
}

// Delete removes the blob first and only then the metadata row. When the
// blob deletion fails the row is kept so the record still points at the
// orphaned object.
func (s *FileService) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	key, err := storageKey(f)
	if err != nil {
		return err
	}

	if err := s.blob.Delete(ctx, key); err != nil {
		return fmt.Errorf("blob delete: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

// DownloadURL returns a signed retrieval URL for the file's blob.
func (s *FileService) DownloadURL(ctx context.Context, id string) (string, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	key, err := storageKey(f)
	if err != nil {
		return "", err
	}

	return s.blob.SignedGetURL(ctx, key, s.signedURLTTL)
}

// FileExtension derives the lowercase extension from a filename, or
// "unknown" when the name carries none.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "unknown"
	}
	return strings.ToLower(name[idx+1:])
}

// storageKey resolves the blob key for a file row: the stored key when
// present, otherwise the legacy derivation that strips everything up to the
// first ".com/" marker of the stored location.
func storageKey(f *models.File) (string, error) {
	if f.StorageKey != "" {
		return f.StorageKey, nil
	}
	_, key, found := strings.Cut(f.StorageURL, ".com/")
	if !found || key == "" {
		return "", fmt.Errorf("cannot derive storage key from %q", f.StorageURL)
	}
	return key, nil
}
