package remedies

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLibraryParses(t *testing.T) {
	remedies := Default()
	if len(remedies) != 8 {
		t.Fatalf("expected 8 remedies, got %d", len(remedies))
	}
	for _, r := range remedies {
		if r.Title == "" || r.Description == "" || r.Concern == "" {
			t.Errorf("incomplete remedy entry: %+v", r)
		}
	}
}

func TestLoadOrDefaultPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	doc := "remedies:\n  - title: Test Upay\n    description: Just for tests.\n    icon: \"✦\"\n    concern: Testing\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	remedies := LoadOrDefault(path)
	if len(remedies) != 1 || remedies[0].Title != "Test Upay" {
		t.Fatalf("expected the file's single entry, got %+v", remedies)
	}
}

func TestLoadOrDefaultFallsBackOnMissingFile(t *testing.T) {
	remedies := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if len(remedies) != 8 {
		t.Fatalf("expected embedded catalog, got %d entries", len(remedies))
	}
}
