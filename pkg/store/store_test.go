package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, ok := p.Get("missing"); ok {
		t.Fatal("Get on a missing key reported ok")
	}

	if err := p.Set("userFont", []byte("monospace")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := p.Get("userFont")
	if !ok || string(got) != "monospace" {
		t.Fatalf("get = %q, %v", got, ok)
	}

	if err := p.Delete("userFont"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := p.Get("userFont"); ok {
		t.Fatal("key survived delete")
	}

	// Deleting an absent key is a no-op, not an error.
	if err := p.Delete("userFont"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
}

func TestPersistenceKeysSorted(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, k := range []string{"inserts", "blockSubjects", "userData"} {
		if err := p.Set(k, []byte("{}")); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	keys := p.Keys(context.Background())
	want := []string{"blockSubjects", "inserts", "userData"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Set("clockMode", []byte("24")); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == "clockMode" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
