package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStore_GetMissing(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, found, err := s.Get(context.Background(), "ideas")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected missing key")
	}
}

func TestStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := s.Put(ctx, "ideaTagIndex", []byte(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "ideaTagIndex", []byte(`{"ia":[]}`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, found, err := s.Get(ctx, "ideaTagIndex")
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if string(got) != `{"ia":[]}` {
		t.Errorf("unexpected content %s", got)
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "ideaTagIndex.json"))
	if err != nil {
		t.Fatalf("document not at expected path: %v", err)
	}
	if string(onDisk) != `{"ia":[]}` {
		t.Errorf("unexpected file content %s", onDisk)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestStore_FailedPutKeepsPrevious(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := s.Put(ctx, "ideas", []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)

	if err := s.Put(ctx, "ideas", []byte(`[{"ideaId":"x"}]`)); err == nil {
		t.Fatal("expected Put into read-only directory to fail")
	}

	got, _, err := s.Get(ctx, "ideas")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("previous value lost: %s", got)
	}
}

func TestStore_InvalidKey(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	for _, key := range []string{"", "../ideas", `a\b`, ".hidden"} {
		if err := s.Put(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/ideas"); got != filepath.Join(home, "ideas") {
		t.Errorf("ExpandHome(~/ideas) = %s", got)
	}
	if got := ExpandHome("/tmp/ideas"); got != "/tmp/ideas" {
		t.Errorf("absolute path changed: %s", got)
	}
}

func TestWatcher_ReportsExternalWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	w := NewWatcher(s, 20*time.Millisecond, nil, "ideas")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(key string) { changed <- key })
	}()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	if err := s.Put(ctx, "ideaTagIndex", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.DocumentPath("ideas"), []byte(`[]`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case key := <-changed:
		if key != "ideas" {
			t.Errorf("expected ideas, got %s", key)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}
