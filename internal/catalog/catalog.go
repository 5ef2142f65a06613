package catalog

import (
	"fmt"
	"strings"
)

// Location is a bookable venue.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

type EventType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MenuItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       Money  `json:"price"`
}

// MenuCategory groups menu items under a tab. Name is the tab heading,
// Label the mixed-case form used in summaries.
type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// BeveragePackage is a bar-service tier priced per person for two or three hours.
type BeveragePackage struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Details             string `json:"details,omitempty"`
	Image               string `json:"image"`
	TwoHourPrice        Money  `json:"twoHourPrice"`
	ThreeHourPrice      Money  `json:"threeHourPrice"`
	AdditionalHourPrice Money  `json:"additionalHourPrice"`
}

// OfferedHours lists the durations every package can be booked for.
var OfferedHours = []int{2, 3}

// PriceFor returns the per-person price for the given duration.
func (p BeveragePackage) PriceFor(hours int) (Money, bool) {
	switch hours {
	case 2:
		return p.TwoHourPrice, true
	case 3:
		return p.ThreeHourPrice, true
	}
	return 0, false
}

// Catalog is the read-only set of venues, event types, menu and beverage
// tiers offered by the wizard. Build it with New, Default or Load.
type Catalog struct {
	Locations  []Location        `json:"locations"`
	EventTypes []EventType       `json:"eventTypes"`
	Categories []MenuCategory    `json:"categories"`
	Beverages  []BeveragePackage `json:"beveragePackages"`

	locations  map[string]Location
	eventTypes map[string]EventType
	categories map[string]MenuCategory
	items      map[string]MenuItem
	beverages  map[string]BeveragePackage
}

// New indexes the given entries. Ids must be unique within their kind;
// a menu item without a category inherits the one it is listed under.
func New(locations []Location, eventTypes []EventType, categories []MenuCategory, beverages []BeveragePackage) (*Catalog, error) {
	c := &Catalog{
		Locations:  locations,
		EventTypes: eventTypes,
		Categories: make([]MenuCategory, 0, len(categories)),
		Beverages:  beverages,
		locations:  make(map[string]Location, len(locations)),
		eventTypes: make(map[string]EventType, len(eventTypes)),
		categories: make(map[string]MenuCategory, len(categories)),
		items:      make(map[string]MenuItem),
		beverages:  make(map[string]BeveragePackage, len(beverages)),
	}

	for _, l := range locations {
		if err := checkID("location", l.ID, c.locations); err != nil {
			return nil, err
		}
		c.locations[l.ID] = l
	}
	for _, t := range eventTypes {
		if err := checkID("event type", t.ID, c.eventTypes); err != nil {
			return nil, err
		}
		c.eventTypes[t.ID] = t
	}
	for _, cat := range categories {
		if err := checkID("menu category", cat.ID, c.categories); err != nil {
			return nil, err
		}
		items := make([]MenuItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			if item.Category == "" {
				item.Category = cat.ID
			}
			if err := checkID("menu item", item.ID, c.items); err != nil {
				return nil, err
			}
			c.items[item.ID] = item
			items = append(items, item)
		}
		cat.Items = items
		if cat.Label == "" {
			cat.Label = cat.Name
		}
		c.categories[cat.ID] = cat
		c.Categories = append(c.Categories, cat)
	}
	for _, b := range beverages {
		if err := checkID("beverage package", b.ID, c.beverages); err != nil {
			return nil, err
		}
		c.beverages[b.ID] = b
	}

	return c, nil
}

func checkID[T any](kind, id string, seen map[string]T) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s with empty id", kind)
	}
	if _, ok := seen[id]; ok {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	return nil
}

func (c *Catalog) Location(id string) (Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

func (c *Catalog) EventType(id string) (EventType, bool) {
	t, ok := c.eventTypes[id]
	return t, ok
}

func (c *Catalog) Category(id string) (MenuCategory, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

func (c *Catalog) MenuItem(id string) (MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *Catalog) BeveragePackage(id string) (BeveragePackage, bool) {
	b, ok := c.beverages[id]
	return b, ok
}
