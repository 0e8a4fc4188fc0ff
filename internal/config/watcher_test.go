package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	path := writeConfig(t, `site = "madrid"`)

	got := make(chan Config, 4)
	w := NewWatcher(path, DefaultConfig(), nil, func(c Config) { got <- c }, nil)
	w.delay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// Give the watcher a moment to register before writing.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-got:
			if cfg.SiteName != "canberra" {
				t.Fatalf("reloaded SiteName = %q, want canberra", cfg.SiteName)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte(`site = "canberra"`), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		case <-deadline:
			t.Fatal("watcher did not reload within 5s")
		}
	}
}

func TestWatcherKeepsConfigOnBadReload(t *testing.T) {
	path := writeConfig(t, `site = "madrid"`)

	called := false
	w := NewWatcher(path, DefaultConfig(), nil, func(Config) { called = true }, nil)

	if err := os.WriteFile(path, []byte(`site = "atlantis"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.reload()
	if called {
		t.Error("onChange called for an invalid config")
	}

	if err := os.WriteFile(path, []byte(`site = "paranal"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.reload()
	if !called {
		t.Error("onChange not called for a valid config")
	}
}
