package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Store persists uploaded files on local disk under a root directory.
// Rows reference stored files by the relative path Save returns.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// IsImage sniffs the upload's content and reports whether it is an image.
func IsImage(file *multipart.FileHeader) bool {
	f, err := file.Open()
	if err != nil {
		return false
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mime.String(), "image/")
}

// Save writes the upload under the given bucket and returns the relative
// path to record on the row.
func (s *Store) Save(file *multipart.FileHeader, bucket string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Join(s.root, bucket), 0o755); err != nil {
		return "", err
	}

	rel := filepath.Join(bucket, uuid.NewString()+filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filepath.Join(s.root, rel))
		return "", err
	}
	return rel, nil
}

// Remove deletes a previously stored file. The controllers use it as the
// compensating action when a row write fails after the upload was stored.
func (s *Store) Remove(rel string) error {
	return os.Remove(filepath.Join(s.root, rel))
}
