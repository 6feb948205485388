// assets.go - Manages per-tenant branding image files

package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Image roles and their fixed on-disk filenames.
const (
	RoleLogo       = "logo"
	RoleBackground = "background"

	logoFilename       = "logo.png"
	backgroundFilename = "image.png"
)

// ErrInvalidRole is returned for any role other than "logo" or "background".
var ErrInvalidRole = errors.New("invalid image type specified")

// Manager stores branding images under BaseDir/<subdomain>/. The subdomain is
// the only tenant key used on disk; it never changes for the life of a
// business, so directories never need renaming.
type Manager struct {
	BaseDir string
}

func NewManager(baseDir string) *Manager {
	return &Manager{BaseDir: baseDir}
}

// Dir returns the asset directory for a tenant.
func (m *Manager) Dir(subdomain string) string {
	return filepath.Join(m.BaseDir, subdomain)
}

// EnsureDir creates the tenant's asset directory if it does not exist yet.
func (m *Manager) EnsureDir(subdomain string) error {
	return os.MkdirAll(m.Dir(subdomain), 0o755)
}

// Filename maps an image role to its fixed filename.
func Filename(role string) (string, error) {
	switch role {
	case RoleLogo:
		return logoFilename, nil
	case RoleBackground:
		return backgroundFilename, nil
	default:
		return "", ErrInvalidRole
	}
}

// Store writes the image for the given role, replacing any previous file.
// The content is written to a temp file in the tenant directory and renamed
// over the destination, so a crash mid-write never loses the old image.
func (m *Manager) Store(subdomain, role string, src io.Reader) error {
	filename, err := Filename(role)
	if err != nil {
		return err
	}
	if err := m.EnsureDir(subdomain); err != nil {
		return fmt.Errorf("create asset directory: %w", err)
	}

	dir := m.Dir(subdomain)
	tmp, err := os.CreateTemp(dir, filename+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, filename)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace image: %w", err)
	}
	return nil
}

// Purge removes the tenant's asset directory and everything in it.
// Removing a directory that does not exist is not an error.
func (m *Manager) Purge(subdomain string) error {
	return os.RemoveAll(m.Dir(subdomain))
}
