package commands

import (
	"context"
	"slices"
	"sync"

	"termfolio/internal/files"
	"termfolio/internal/model"
)

// Session is the mutable state commands act on: the working path and the
// cached listing of it. Handlers run off the UI goroutine, so access is
// guarded by a mutex.
type Session struct {
	files files.Service

	mu      sync.RWMutex
	path    []string
	listing []model.Node
}

// NewSession starts a session at the content root with an empty listing.
// Call Refresh to populate the listing.
func NewSession(svc files.Service) *Session {
	return &Session{files: svc, path: []string{}}
}

// Files returns the file-access service of the session.
func (s *Session) Files() files.Service {
	return s.files
}

// Path returns a copy of the working path.
func (s *Session) Path() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.path)
}

// Listing returns a copy of the cached listing of the working path.
func (s *Session) Listing() []model.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.listing)
}

// ChangeDir lists path and, only if that succeeds, makes it the working path.
// On error the session is left untouched.
func (s *Session) ChangeDir(ctx context.Context, path []string) error {
	nodes, err := s.files.List(ctx, path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.path = slices.Clone(path)
	s.listing = nodes
	s.mu.Unlock()
	return nil
}

// Refresh re-reads the listing of the working path and returns it.
func (s *Session) Refresh(ctx context.Context) ([]model.Node, error) {
	path := s.Path()
	nodes, err := s.files.List(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// A cd may have finished while we were listing.
	if slices.Equal(s.path, path) {
		s.listing = nodes
	}
	s.mu.Unlock()
	return slices.Clone(nodes), nil
}
