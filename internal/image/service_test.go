package image

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil), t.TempDir())

	name := s.Filename("logo.png")
	if !strings.HasSuffix(name, "-logo.png") {
		t.Fatalf("expected timestamped original name, got %q", name)
	}

	// path components are stripped
	name = s.Filename("../../etc/passwd")
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("path escaped into filename: %q", name)
	}

	// an empty original still yields a usable name
	name = s.Filename("")
	if name == "" || strings.HasSuffix(name, "-") {
		t.Fatalf("unusable generated name: %q", name)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewInMemoryRepository(nil)
	s := NewService(repo, dir)

	if err := os.WriteFile(filepath.Join(dir, "x.png"), []byte("png"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	img, err := s.Save("x.png", nil, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if img.URL != "/uploads/x.png" {
		t.Fatalf("unexpected url: %q", img.URL)
	}

	if err := s.Delete(img.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(img.ID); err != ErrNotFound {
		t.Fatalf("row survived delete")
	}
	if _, err := os.Stat(filepath.Join(dir, "x.png")); !os.IsNotExist(err) {
		t.Fatalf("file survived delete")
	}
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo, t.TempDir())

	img, err := s.Save("ghost.png", nil, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// the row is authoritative; a missing file must not fail the request
	if err := s.Delete(img.ID); err != nil {
		t.Fatalf("delete failed on missing file: %v", err)
	}
	if _, err := repo.GetByID(img.ID); err != ErrNotFound {
		t.Fatalf("row survived delete")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil), t.TempDir())
	if err := s.Delete(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
