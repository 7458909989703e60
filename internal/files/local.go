package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"termfolio/internal/model"
)

// Local serves a content tree from a file system rooted at the content root.
type Local struct {
	fsys fs.FS
}

// NewLocal creates a Local service rooted at a directory on disk.
func NewLocal(root string) *Local {
	return &Local{fsys: os.DirFS(root)}
}

// NewLocalFS creates a Local service over any fs.FS (embedded trees, tests).
func NewLocalFS(fsys fs.FS) *Local {
	return &Local{fsys: fsys}
}

// fsName converts path segments to an fs.FS name. Segments that would escape
// the root or are not valid names are reported as missing.
func fsName(path []string) (string, error) {
	if len(path) == 0 {
		return ".", nil
	}
	name := strings.Join(path, "/")
	if !fs.ValidPath(name) {
		return "", ErrNoSuchPath
	}
	return name, nil
}

func statError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoSuchPath
	}
	// Walking through a regular file ("notes.txt/x") surfaces as ENOTDIR on
	// most systems; from the caller's point of view the path does not exist.
	if errors.Is(err, syscall.ENOTDIR) {
		return ErrNoSuchPath
	}
	return fmt.Errorf("files: stat: %w", err)
}

// List implements Service.
func (l *Local) List(ctx context.Context, path []string) ([]model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := fsName(path)
	if err != nil {
		return nil, err
	}

	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return nil, statError(err)
	}
	if !info.IsDir() {
		return nil, ErrNotADirectory
	}

	entries, err := fs.ReadDir(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("files: read dir %q: %w", name, err)
	}

	nodes := make([]model.Node, 0, len(entries)+2)
	for _, e := range entries {
		kind := model.NodeOther
		switch {
		case e.IsDir():
			kind = model.NodeDirectory
		case e.Type().IsRegular():
			kind = model.NodeFile
		}
		nodes = append(nodes, model.Node{Name: e.Name(), Kind: kind})
	}
	nodes = withImplied(nodes)
	SortNodes(nodes)
	return nodes, nil
}

// Read implements Service.
func (l *Local) Read(ctx context.Context, path []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := fsName(path)
	if err != nil {
		return "", err
	}

	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return "", statError(err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotAFile
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("files: read %q: %w", name, err)
	}
	return string(data), nil
}
