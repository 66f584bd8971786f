// Package storage abstracts file persistence for uploaded document scans.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileInfo describes a stored file.
type FileInfo struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// Store is the interface upload handlers depend on. The production
// implementation is S3-compatible object storage (Cloudflare R2).
type Store interface {
	Save(ctx context.Context, path string, file io.Reader, contentType string) (*FileInfo, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// ObjectKey builds the storage key for an uploaded document scan:
// "<category>/<random>_<cleaned filename>". Categories group scans by owner
// kind ("drivers", "vehicles"); anything else lands in "general". The random
// prefix prevents collisions and filename guessing.
func ObjectKey(category, filename string) string {
	switch category {
	case "drivers", "vehicles":
	default:
		category = "general"
	}
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s/%s_%s", category, uuid.New().String(), name)
}
