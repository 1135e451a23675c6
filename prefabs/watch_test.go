package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// A non-spec file must not produce an event; the yaml write after it
	// must be the first thing delivered.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "enemy.yaml"), []byte("name: grunt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "enemy.yaml" {
			t.Fatalf("unexpected event for %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseWhileEventsArrive(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// Keep events flowing while Close runs so a send can be in flight.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			_ = os.WriteFile(filepath.Join(dir, "spec.yaml"), []byte("name: x\n"), 0o644)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	close(stop)
	<-done

	// The run goroutine owns the channels; draining after Close must
	// terminate without panicking.
	for range w.Events {
	}
	for range w.Errors {
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
