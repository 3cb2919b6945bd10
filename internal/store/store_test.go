package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/007PR/aura/internal/models"
)

func TestRoundTripPreservesEveryField(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "aura", "user.json"))

	saved := models.User{
		ID:        "u-7",
		Name:      "Arjun",
		Sign:      models.Capricorn,
		DOB:       "1998-01-05",
		IsPremium: true,
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a user record")
	}
	if *loaded != saved {
		t.Fatalf("round trip mismatch: saved %+v, loaded %+v", saved, *loaded)
	}
}

func TestLoadReturnsNilWhenNothingPersisted(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "user.json"))

	user, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no user, got %+v", user)
	}
}

func TestLoadRejectsCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	user, err := New(path).Load()
	if err == nil {
		t.Fatal("expected error for corrupt record")
	}
	if user != nil {
		t.Fatalf("corrupt record must not fabricate a user, got %+v", user)
	}
}

func TestSaveReplacesPriorRecord(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "user.json"))

	if err := s.Save(models.User{ID: "u-1", Name: "A", Sign: models.Aries, DOB: "2001-04-01"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(models.User{ID: "u-1", Name: "A", Sign: models.Aries, DOB: "2001-04-01", IsPremium: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.IsPremium {
		t.Fatal("expected the replacement record to win")
	}
}
