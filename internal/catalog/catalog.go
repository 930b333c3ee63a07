package catalog

import (
	"encoding/json"
	"os"

	"github.com/ar-vacations/pms-gateway/internal/domain"
)

// Property is one entry of the static marketing catalog. The PMS
// apartment ID is the join key against provider units and quotes.
type Property struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug,omitempty"`
	Name     string   `json:"name,omitempty"`
	Location string   `json:"location,omitempty"`
	Badges   []string `json:"badges,omitempty"`
	Images   []string `json:"images,omitempty"`
	Active   bool     `json:"active"`
	PMS      PMSRef   `json:"pms"`
}

// PMSRef links a catalog property to its PMS unit.
type PMSRef struct {
	Smoobu SmoobuRef `json:"smoobu"`
}

// SmoobuRef holds the Smoobu apartment reference.
type SmoobuRef struct {
	ApartmentID string `json:"apartmentId,omitempty"`
}

// Store reads the catalog file on every call so edits show up without a
// restart; the file is small and the site is low-traffic.
type Store struct {
	path string
}

// NewStore creates a catalog store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Properties returns the catalog's property list.
func (s *Store) Properties() ([]Property, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewNotFoundError("catalog file not readable: " + err.Error())
	}

	var payload struct {
		Properties []Property `json:"properties"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domain.NewConfigError("catalog file malformed: " + err.Error())
	}
	return payload.Properties, nil
}
