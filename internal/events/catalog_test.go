package events

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleCatalog() *Catalog {
	return New([]Event{
		{ID: "b", Title: "Jazz Night", Description: "Live jazz by the river", Category: "music", Date: "2026-06-01"},
		{ID: "a", Title: "Lantern Festival", Description: "Lanterns on the stream", Category: "festival", Date: "2026-11-06"},
		{ID: "c", Title: "Book Fair", Description: "Second-hand books and jazz records", Category: "market", Date: "2026-06-01"},
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("embedded catalog should not be empty")
	}

	for _, event := range catalog.Events() {
		if event.ID == "" || event.Title == "" || event.Date == "" {
			t.Errorf("embedded event missing required fields: %+v", event)
		}
	}
}

func TestEventsOrderedByDate(t *testing.T) {
	catalog := sampleCatalog()

	events := catalog.Events()
	if events[0].ID != "b" || events[1].ID != "c" || events[2].ID != "a" {
		t.Errorf("events not ordered by date then id: %v", events)
	}
}

func TestGet(t *testing.T) {
	catalog := sampleCatalog()

	event, err := catalog.Get("a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if event.Title != "Lantern Festival" {
		t.Errorf("Get(a).Title = %q", event.Title)
	}

	if _, err := catalog.Get("nope"); err == nil {
		t.Errorf("Get of unknown id should error")
	}
}

func TestSearch(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"title match", "lantern", 1},
		{"description match", "river", 1},
		{"case insensitive", "JAZZ", 2},
		{"no match", "opera", 0},
		{"empty matches all", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Search(tt.query); len(got) != tt.want {
				t.Errorf("Search(%q) returned %d events, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	categories := sampleCatalog().Categories()
	want := []string{"festival", "market", "music"}
	if len(categories) != len(want) {
		t.Fatalf("Categories() = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, categories[i], want[i])
		}
	}
}

func TestFilterCategory(t *testing.T) {
	got := sampleCatalog().FilterCategory("Music")
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("FilterCategory(Music) = %v", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	payload := `[{"id":"x","title":"Custom","description":"d","category":"misc","date":"2026-01-01"}]`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	catalog, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if catalog.Len() != 1 {
		t.Errorf("LoadFile() catalog size = %d, want 1", catalog.Len())
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("LoadFile of a missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("not json"), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Errorf("LoadFile of invalid JSON should error")
	}
}
