package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage persists uploaded files and returns the public path they are
// served under.
type Storage interface {
	Save(name string, r io.Reader) (string, error)
}

// Upload kinds accepted by the wizard's documents step.
const (
	UploadKindPhoto     = "foto"
	UploadKindCIFront   = "ci_anverso"
	UploadKindCIBack    = "ci_reverso"
	UploadKindCVPicture = "cv_foto"
)

var allowedUploadExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

var validUploadKind = map[string]bool{
	UploadKindPhoto:     true,
	UploadKindCIFront:   true,
	UploadKindCIBack:    true,
	UploadKindCVPicture: true,
}

type FilesUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, kind, filename string, r io.Reader) (string, error)
}

type Files struct {
	storage Storage
}

func NewFilesUsecase(storage Storage) *Files {
	return &Files{storage: storage}
}

// Upload stores a user document under a server-chosen name. The original
// filename only contributes its extension, which must be on the
// allow-list.
func (u *Files) Upload(ctx context.Context, userID uuid.UUID, kind, filename string, r io.Reader) (string, error) {
	if userID == uuid.Nil || r == nil {
		return "", ErrInvalidInput
	}
	if !validUploadKind[kind] {
		return "", ErrInvalidInput
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExt[ext] {
		return "", ErrInvalidInput
	}

	name := fmt.Sprintf("%s_%s_%s%s", kind, userID, uuid.New().String()[:8], ext)
	path, err := u.storage.Save(name, r)
	if err != nil {
		return "", ErrInternal
	}
	return path, nil
}
