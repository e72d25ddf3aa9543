package models

import "time"

// File describes metadata for a binary payload stored in object storage.
type File struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// FileType is the lowercase extension derived from the original filename.
	FileType string `json:"file_type"`
	// StorageURL is the fully-qualified blob location shown to users.
	StorageURL string `json:"storage_url"`
	// StorageKey is the object-storage key of the blob. Rows written before
	// the key column existed carry an empty value; callers fall back to
	// deriving the key from StorageURL.
	StorageKey string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
