package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.ch <- path
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

func startWatcher(t *testing.T, opts Options) {
	t.Helper()
	opts.Logger = mdwlog.NewDiscard()
	w, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run() error = %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop after cancel")
		}
	})

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
}

func TestNewValidation(t *testing.T) {
	handler := func(context.Context, string) {}
	tests := []struct {
		name string
		opts Options
	}{
		{"no paths", Options{OnChange: handler}},
		{"no handler", Options{Paths: []string{"a.rot"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("New() error = %v, want CodeInvalidInput", err)
			}
		})
	}

	w, err := New(Options{Paths: []string{"a.rot", "b.rot"}, OnChange: handler})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.debounce != DefaultDebounce || len(w.dirs) != 1 || len(w.files) != 2 {
		t.Errorf("watcher = %+v", w)
	}
}

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lisboa.rot")
	if err := os.WriteFile(path, []byte("budget 1 USD\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	startWatcher(t, Options{Paths: []string{path}, Debounce: 150 * time.Millisecond, OnChange: rec.handle})

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("budget 2 USD\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-rec.ch:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("handler path = %q, want %q", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("handler was not called")
	}

	time.Sleep(400 * time.Millisecond)
	if n := rec.count(); n != 1 {
		t.Errorf("handler called %d times for one burst, want 1", n)
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lisboa.rot")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	startWatcher(t, Options{Paths: []string{path}, Debounce: 50 * time.Millisecond, OnChange: rec.handle})

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-rec.ch:
		t.Errorf("handler called for unrelated file %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}
