package booking

import (
	"encoding/json"

	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

// MenuSelection is one chosen menu item with its quantity and the display
// metadata captured when it was first selected.
type MenuSelection struct {
	ID          string        `json:"id"`
	Quantity    int           `json:"quantity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Category    string        `json:"category"`
	Price       catalog.Money `json:"price"`
}

// MenuItemMetadata is what a caller supplies alongside a new selection.
type MenuItemMetadata struct {
	Title       string
	Description string
	Image       string
	Category    string
	Price       catalog.Money
}

// MenuMetadata copies the display fields of a catalog item.
func MenuMetadata(item catalog.MenuItem) MenuItemMetadata {
	return MenuItemMetadata{
		Title:       item.Title,
		Description: item.Description,
		Image:       item.Image,
		Category:    item.Category,
		Price:       item.Price,
	}
}

// MenuSelectionSet keeps selections in insertion order, at most one per
// item id, and never holds an entry with a zero quantity.
type MenuSelectionSet struct {
	entries []MenuSelection
}

func (s *MenuSelectionSet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the selections in insertion order.
func (s *MenuSelectionSet) Entries() []MenuSelection {
	out := make([]MenuSelection, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *MenuSelectionSet) Get(id string) (MenuSelection, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i], true
	}
	return MenuSelection{}, false
}

// Quantity returns the selected quantity of id, 0 when not selected.
func (s *MenuSelectionSet) Quantity(id string) int {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Quantity
	}
	return 0
}

func (s *MenuSelectionSet) index(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *MenuSelectionSet) set(id string, quantity int, meta MenuItemMetadata) Outcome {
	if quantity < 0 {
		return rejected(ReasonNegativeQuantity)
	}

	i := s.index(id)
	switch {
	case quantity == 0 && i < 0:
		return rejected(ReasonNotSelected)
	case quantity == 0:
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	case i >= 0:
		s.entries[i].Quantity = quantity
	default:
		s.entries = append(s.entries, MenuSelection{
			ID:          id,
			Quantity:    quantity,
			Title:       meta.Title,
			Description: meta.Description,
			Image:       meta.Image,
			Category:    meta.Category,
			Price:       meta.Price,
		})
	}
	return applied()
}

func (s MenuSelectionSet) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

// UnmarshalJSON restores a set, dropping zero-quantity entries and keeping
// the first entry of any repeated id.
func (s *MenuSelectionSet) UnmarshalJSON(data []byte) error {
	var entries []MenuSelection
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	s.entries = nil
	for _, e := range entries {
		if e.Quantity <= 0 || s.index(e.ID) >= 0 {
			continue
		}
		s.entries = append(s.entries, e)
	}
	return nil
}
