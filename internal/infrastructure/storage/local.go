package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const cvSubdir = "cvs"

// Local stores uploaded files under a directory served statically at
// /uploads. Only the returned reference is persisted with the record.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("empty upload dir")
	}
	if err := os.MkdirAll(filepath.Join(dir, cvSubdir), 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir}, nil
}

// Dir is the filesystem root the HTTP layer serves as /uploads.
func (s *Local) Dir() string {
	return s.dir
}

// SaveCV writes the uploaded file under a random name and returns the
// public reference path ("/uploads/cvs/<name>").
func (s *Local) SaveCV(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dstPath := filepath.Join(s.dir, cvSubdir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", err
	}

	return "/uploads/" + cvSubdir + "/" + name, nil
}
