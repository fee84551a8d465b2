// Package events holds the client-local event catalog. Like the original
// calendar page, event data ships with the client; browsing and search
// never hit the backend.
package events

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/eventcal-io/eventcal/internal/errors"
)

//go:embed data/events.json
var embeddedData []byte

// Event is one calendar entry.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
}

// Catalog is an immutable set of events.
type Catalog struct {
	events []Event
	byID   map[string]Event
}

// New builds a catalog from events. Later duplicates of an id win, matching
// a plain map overwrite.
func New(events []Event) *Catalog {
	byID := make(map[string]Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	return &Catalog{events: sorted, byID: byID}
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return parse(embeddedData)
}

// LoadFile reads a catalog from a user-supplied JSON file with the same
// shape as the embedded data.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogInvalid, "read events file", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogInvalid, "events data is not a JSON event array", err)
	}
	return New(events), nil
}

// Events returns all events ordered by date.
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len returns the number of events.
func (c *Catalog) Len() int {
	return len(c.events)
}

// Get returns the event with the given id.
func (c *Catalog) Get(id string) (Event, error) {
	event, ok := c.byID[id]
	if !ok {
		return Event{}, errors.NewEventNotFoundError(id)
	}
	return event, nil
}

// Search returns events whose title or description contains query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []Event {
	if query == "" {
		return c.Events()
	}

	needle := strings.ToLower(query)
	var out []Event
	for _, event := range c.events {
		if strings.Contains(strings.ToLower(event.Title), needle) ||
			strings.Contains(strings.ToLower(event.Description), needle) {
			out = append(out, event)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, event := range c.events {
		if event.Category != "" {
			seen[event.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// FilterCategory returns events in the given category.
func (c *Catalog) FilterCategory(category string) []Event {
	var out []Event
	for _, event := range c.events {
		if strings.EqualFold(event.Category, category) {
			out = append(out, event)
		}
	}
	return out
}
