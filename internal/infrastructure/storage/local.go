package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores uploads on the service's own disk, serving them back
// under a public prefix. Object storage stays behind this same shape.
type Local struct {
	dir          string
	publicPrefix string
}

func NewLocal(dir, publicPrefix string) (*Local, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if publicPrefix == "" {
		publicPrefix = "/files"
	}
	return &Local{dir: dir, publicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

// Save writes the content under a relative name and returns the public
// path clients use to fetch it.
func (l *Local) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." {
		return "", fmt.Errorf("invalid file name")
	}

	dst := filepath.Join(l.dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return l.publicPrefix + "/" + name, nil
}

// Dir exposes the root so the HTTP layer can mount a static handler on it.
func (l *Local) Dir() string {
	return l.dir
}
