package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const tempDir = ".tmp"

// Disk keeps the slot as a file under a base directory, managed by diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// NewDisk returns a diskv backed store rooted at basePath.
func NewDisk(basePath, key string) (*Disk, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if key == "" {
		key = DefaultKey
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0, // other processes write the slot too
			TempDir:           filepath.Join(basePath, tempDir),
		}),
		basePath: basePath,
		key:      key,
	}, nil
}

func (p *Disk) Read(_ context.Context) (string, bool, error) {
	if !p.d.Has(p.key) {
		return "", false, nil
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	return string(val), true, nil
}

func (p *Disk) Write(_ context.Context, text string) error {
	if err := p.d.Write(p.key, []byte(text)); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

// Path returns the file holding the slot.
func (p *Disk) Path() string {
	pk := keyToPathTransform(p.key)
	return filepath.Join(append([]string{p.basePath}, append(pk.Path, pk.FileName)...)...)
}

func (p *Disk) Describe() string {
	return p.Path()
}

// keyToPathTransform maps `study-board:v1` to `study-board/v1`.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, ":")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s:%s", strings.Join(pathKey.Path, ":"), pathKey.FileName)
}
