package commands

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"termfolio/internal/files"
	"termfolio/internal/model"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"about.md":       {Data: []byte("# About\n")},
		"notes.txt":      {Data: []byte("hello\n")},
		".profile":       {Data: []byte("export A=1\n")},
		"docs/guide.txt": {Data: []byte("guide\n")},
		"docs/intro.md":  {Data: []byte("# Intro\n")},
	}
}

// fakeService serves testTree, optionally failing every call with err.
type fakeService struct {
	local *files.Local

	mu  sync.Mutex
	err error
}

func newFakeService() *fakeService {
	return &fakeService{local: files.NewLocalFS(testTree())}
}

func (f *fakeService) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeService) failure() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeService) List(ctx context.Context, path []string) ([]model.Node, error) {
	if err := f.failure(); err != nil {
		return nil, err
	}
	return f.local.List(ctx, path)
}

func (f *fakeService) Read(ctx context.Context, path []string) (string, error) {
	if err := f.failure(); err != nil {
		return "", err
	}
	return f.local.Read(ctx, path)
}

type windowRecorder struct {
	windows []model.Window
}

func (r *windowRecorder) OpenWindow(w model.Window) {
	r.windows = append(r.windows, w)
}

type notifierFunc func(ctx context.Context, message string) error

func (f notifierFunc) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

type harness struct {
	dispatcher *Dispatcher
	files      *fakeService
	windows    *windowRecorder
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{files: newFakeService(), windows: &windowRecorder{}}
	opts.Files = h.files
	opts.Windows = h.windows
	if opts.Settings.Author == "" {
		opts.Settings.Author = "jane"
	}

	d, err := New(opts)
	require.NoError(t, err)
	h.dispatcher = d
	return h
}

func (h *harness) run(line string) model.CommandResult {
	return h.dispatcher.Dispatch(context.Background(), line)
}

func cellTexts(cells []model.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}
