// Package likes tracks which events the user has marked as liked. The set
// is purely client-local: there is exactly one writer (this process) and
// every mutation is persisted to durable storage before it returns.
package likes

import (
	"encoding/json"
	"sort"

	"github.com/eventcal-io/eventcal/internal/errors"
	"github.com/eventcal-io/eventcal/internal/storage"
)

// Set is the liked-events set backed by durable storage under the
// likedEvents key. Membership is unique; order is irrelevant.
type Set struct {
	storage storage.Store
	ids     map[string]struct{}
}

// Load reads the persisted set from store. A missing key yields an empty
// set; a corrupt payload is an error so the caller can decide what to do
// with the stored data.
func Load(store storage.Store) (*Set, error) {
	s := &Set{
		storage: store,
		ids:     make(map[string]struct{}),
	}

	raw, err := store.Get(storage.KeyLikedEvents)
	if err == storage.ErrNotFound {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, "read liked events", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, "liked events payload is not a JSON string array", err)
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s, nil
}

// Toggle adds id if absent, removes it if present, and persists the
// resulting set. It returns whether id is liked after the toggle.
func (s *Set) Toggle(id string) (bool, error) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}

	if err := s.persist(); err != nil {
		return false, err
	}
	_, liked := s.ids[id]
	return liked, nil
}

// Liked reports whether id is in the set.
func (s *Set) Liked(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the members in sorted order for stable output.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of liked events.
func (s *Set) Len() int {
	return len(s.ids)
}

// Clear empties the set and removes the persisted entry.
func (s *Set) Clear() error {
	s.ids = make(map[string]struct{})
	if err := s.storage.Remove(storage.KeyLikedEvents); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "clear liked events", err)
	}
	return nil
}

func (s *Set) persist() error {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "encode liked events", err)
	}
	if err := s.storage.Set(storage.KeyLikedEvents, data); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "persist liked events", err)
	}
	return nil
}
