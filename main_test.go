package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/milk9111/catburglar/storage"
)

func TestOpenResourcesClose(t *testing.T) {
	logger := log.New(io.Discard)
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	res := openResources(dbPath, true, logger)
	store, watcher := res.store, res.watcher
	if store == nil {
		t.Fatal("expected the runs database to open")
	}
	if watcher == nil {
		t.Fatal("expected the prefab watcher to start")
	}
	if _, err := store.SaveRun(storage.Run{Seed: 1}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	res.Close()
	if _, err := store.SaveRun(storage.Run{Seed: 2}); err == nil {
		t.Fatal("store should be closed")
	}
	if _, ok := <-watcher.Events; ok {
		t.Fatal("watcher events should be closed")
	}
	res.Close()

	// The data written before Close survived.
	reopened, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok, err := reopened.BestRun(); err != nil || !ok {
		t.Fatalf("BestRun ok=%v err=%v", ok, err)
	}
}

func TestOpenResourcesDisabled(t *testing.T) {
	res := openResources("", false, log.New(io.Discard))
	if res.store != nil || res.watcher != nil {
		t.Fatalf("expected no resources, got %+v", res)
	}
	res.Close()
}
