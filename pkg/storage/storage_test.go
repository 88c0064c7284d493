package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TestGetMissingKey verifies a key with no document reports exists=false
// without an error and leaves the destination untouched
func TestGetMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	doc := testDoc{Name: "untouched"}
	exists, err := fs.Get("nope", &doc)
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if exists {
		t.Error("Get() exists = true, want false")
	}
	if doc.Name != "untouched" {
		t.Errorf("Get() modified destination: %v", doc)
	}
}

// TestPutThenGet verifies a stored document round-trips
func TestPutThenGet(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	in := testDoc{Name: "guild-123", Count: 3}
	if err := fs.PutAtomic("doc", in); err != nil {
		t.Fatalf("PutAtomic() error = %v", err)
	}

	var out testDoc
	exists, err := fs.Get("doc", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !exists {
		t.Fatal("Get() exists = false, want true")
	}
	if out != in {
		t.Errorf("Get() = %+v, want %+v", out, in)
	}
}

// TestPutReplacesWholeDocument verifies a second write fully replaces
// the first, it never merges
func TestPutReplacesWholeDocument(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := fs.PutAtomic("doc", map[string]int{"a": 1, "b": 2}); err != nil {
		t.Fatalf("PutAtomic() error = %v", err)
	}
	if err := fs.PutAtomic("doc", map[string]int{"c": 3}); err != nil {
		t.Fatalf("PutAtomic() error = %v", err)
	}

	out := map[string]int{}
	if _, err := fs.Get("doc", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(out) != 1 || out["c"] != 3 {
		t.Errorf("Get() = %v, want map[c:3]", out)
	}
}

// TestPutLeavesNoTempFiles verifies the temp file is gone after a
// successful write
func TestPutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := fs.PutAtomic("doc", testDoc{Name: "x"}); err != nil {
		t.Fatalf("PutAtomic() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

// TestGetCorruptDocument verifies decode failures surface as errors
func TestGetCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var doc testDoc
	if _, err := fs.Get("bad", &doc); err == nil {
		t.Error("Get() error = nil, want decode error")
	}
}
