// Package files provides the file-access service the terminal reads its
// content tree through: a local implementation over a content root and a
// client for the HTTP file API served by the web package.
package files

import (
	"context"
	"errors"

	"termfolio/internal/model"
)

// The messages double as the wire format of the HTTP file API.
var (
	ErrNoSuchPath    = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("not a file")
)

// Service is the file-access contract consumed by the terminal core.
// Paths are segment sequences relative to the content root; nil is the root.
type Service interface {
	// List returns the entries of a directory, including the synthetic
	// "." and ".." entries, ordered for display.
	List(ctx context.Context, path []string) ([]model.Node, error)

	// Read returns the contents of a regular file.
	Read(ctx context.Context, path []string) (string, error)
}

// ErrorFromMessage maps a wire error message back to its sentinel error.
func ErrorFromMessage(msg string) error {
	for _, err := range []error{ErrNoSuchPath, ErrNotADirectory, ErrNotAFile} {
		if msg == err.Error() {
			return err
		}
	}
	return errors.New(msg)
}
