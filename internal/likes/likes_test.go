package likes

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/eventcal-io/eventcal/internal/storage"
)

func persisted(t *testing.T, store storage.Store) []string {
	t.Helper()

	raw, err := store.Get(storage.KeyLikedEvents)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		t.Fatalf("Get(likedEvents) error = %v", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		t.Fatalf("persisted payload is not a JSON array: %v", err)
	}
	return ids
}

func TestLoadEmpty(t *testing.T) {
	set, err := Load(storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("new set should be empty, got %d", set.Len())
	}
}

func TestTogglePairIsIdempotent(t *testing.T) {
	mem := storage.NewMemoryStore()
	set, err := Load(mem)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	liked, err := set.Toggle("evt-1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !liked {
		t.Errorf("first toggle should like the event")
	}
	if got := persisted(t, mem); len(got) != 1 || got[0] != "evt-1" {
		t.Errorf("storage after first toggle = %v, want [evt-1]", got)
	}

	liked, err = set.Toggle("evt-1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if liked {
		t.Errorf("second toggle should unlike the event")
	}
	if got := persisted(t, mem); len(got) != 0 {
		t.Errorf("storage after second toggle = %v, want empty", got)
	}
}

func TestMembershipIsUnique(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.KeyLikedEvents, []byte(`["evt-1","evt-1","evt-2"]`))

	set, err := Load(mem)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("duplicate ids should collapse, got %d members", set.Len())
	}
}

func TestIDsSorted(t *testing.T) {
	set, _ := Load(storage.NewMemoryStore())
	set.Toggle("b")
	set.Toggle("a")
	set.Toggle("c")

	ids := set.IDs()
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("IDs() = %v, want sorted [a b c]", ids)
	}
}

func TestClear(t *testing.T) {
	mem := storage.NewMemoryStore()
	set, _ := Load(mem)
	set.Toggle("evt-1")
	set.Toggle("evt-2")

	if err := set.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("set should be empty after Clear")
	}
	if _, err := mem.Get(storage.KeyLikedEvents); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("persisted entry should be removed, got %v", err)
	}
}

func TestSurvivesReload(t *testing.T) {
	mem := storage.NewMemoryStore()

	first, _ := Load(mem)
	first.Toggle("evt-1")

	second, err := Load(mem)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !second.Liked("evt-1") {
		t.Errorf("reloaded set should contain evt-1")
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.KeyLikedEvents, []byte(`{"not":"an array"}`))

	if _, err := Load(mem); err == nil {
		t.Errorf("Load() should fail on a corrupt payload")
	}
}
