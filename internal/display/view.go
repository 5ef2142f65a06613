package display

import (
	"fmt"
	"strings"

	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

// OtherCategory collects menu selections that carry no category.
const OtherCategory = "other"

// CategoryGroup is the menu selections of one category in selection order.
type CategoryGroup struct {
	Category string
	Entries  []booking.MenuSelection
}

// GroupMenuSelectionsByCategory groups entries by category. Groups appear in
// the order their category is first seen and keep the entries' order.
func GroupMenuSelectionsByCategory(entries []booking.MenuSelection) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = OtherCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Renderer builds the preview, summary and overview panels from a session.
// All three share the same helpers so they never disagree on the same state.
type Renderer struct {
	catalog *catalog.Catalog
}

func NewRenderer(c *catalog.Catalog) *Renderer {
	return &Renderer{catalog: c}
}

// ResolveLocation looks up venue display data. Unknown ids have none.
func (r *Renderer) ResolveLocation(id string) (catalog.Location, bool) {
	return r.catalog.Location(id)
}

// ResolveEventTypeLabel returns the catalog label, or id itself when unknown.
func (r *Renderer) ResolveEventTypeLabel(id string) string {
	if t, ok := r.catalog.EventType(id); ok {
		return t.Label
	}
	return id
}

// CategoryLabel returns the catalog label, or the upper-cased id when unknown.
func (r *Renderer) CategoryLabel(id string) string {
	if c, ok := r.catalog.Category(id); ok && c.Label != "" {
		return c.Label
	}
	return strings.ToUpper(id)
}

type EventView struct {
	Location  *catalog.Location `json:"location,omitempty"`
	EventType string            `json:"eventType,omitempty" doc:"Event type label"`
	Date      string            `json:"date,omitempty" doc:"Long-form date"`
	Time      string            `json:"time,omitempty" doc:"12-hour time"`
	Guests    int               `json:"guests,omitempty"`
	Email     string            `json:"email,omitempty"`
}

type MenuLine struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Text     string `json:"text" doc:"Display line, e.g. (2) CHICKEN POTSTICKERS"`
}

type MenuGroupView struct {
	Category string     `json:"category"`
	Label    string     `json:"label"`
	Items    []MenuLine `json:"items"`
}

type BeverageView struct {
	Name           string  `json:"name"`
	Hours          int     `json:"hours"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Text           string  `json:"text" doc:"e.g. 3 hours, $65 per person"`
}

// Preview is the live event info panel of step 1.
type Preview struct {
	Event EventView `json:"event"`
}

// Summary is the sidebar shown on every step.
type Summary struct {
	Step      int                    `json:"step"`
	StepLabel string                 `json:"stepLabel"`
	Progress  []booking.StepProgress `json:"progress"`
	Event     EventView              `json:"event"`
	Menu      []MenuGroupView        `json:"menu"`
	Beverage  *BeverageView          `json:"beverage,omitempty"`
	Total     float64                `json:"total"`
	TotalText string                 `json:"totalText"`
}

// Overview is the review page shown before checkout.
type Overview struct {
	Event     EventView       `json:"event"`
	Menu      []MenuGroupView `json:"menu"`
	Beverage  *BeverageView   `json:"beverage,omitempty"`
	Total     float64         `json:"total"`
	TotalText string          `json:"totalText"`
	Breakdown string          `json:"breakdown,omitempty" doc:"e.g. $65 × 50 guests = $3250.00"`
}

func (r *Renderer) Preview(s *booking.Session) Preview {
	return Preview{Event: r.event(s.EventInfo())}
}

func (r *Renderer) Summary(s *booking.Session) Summary {
	total := s.TotalPrice()
	return Summary{
		Step:      s.Step(),
		StepLabel: booking.StepLabel(s.Step()),
		Progress:  s.Progress(),
		Event:     r.event(s.EventInfo()),
		Menu:      r.menu(s.MenuSelections()),
		Beverage:  beverage(s.Beverage()),
		Total:     total.Float(),
		TotalText: "$" + total.String(),
	}
}

func (r *Renderer) Overview(s *booking.Session) Overview {
	total := s.TotalPrice()
	return Overview{
		Event:     r.event(s.EventInfo()),
		Menu:      r.menu(s.MenuSelections()),
		Beverage:  beverage(s.Beverage()),
		Total:     total.Float(),
		TotalText: "$" + total.String(),
		Breakdown: breakdown(s, total),
	}
}

func (r *Renderer) event(info booking.EventInfo) EventView {
	v := EventView{
		Date:   FormatEventDate(info.Date),
		Time:   FormatEventTime(info.Time),
		Guests: info.Guests,
		Email:  info.Email,
	}
	if loc, ok := r.ResolveLocation(info.Location); ok {
		v.Location = &loc
	}
	if info.EventType != "" {
		v.EventType = r.ResolveEventTypeLabel(info.EventType)
	}
	if v.Guests < 0 {
		v.Guests = 0
	}
	return v
}

func (r *Renderer) menu(entries []booking.MenuSelection) []MenuGroupView {
	groups := GroupMenuSelectionsByCategory(entries)
	out := make([]MenuGroupView, 0, len(groups))
	for _, g := range groups {
		view := MenuGroupView{Category: g.Category, Label: r.CategoryLabel(g.Category)}
		for _, e := range g.Entries {
			view.Items = append(view.Items, MenuLine{
				ID:       e.ID,
				Title:    e.Title,
				Quantity: e.Quantity,
				Text:     fmt.Sprintf("(%d) %s", e.Quantity, e.Title),
			})
		}
		out = append(out, view)
	}
	return out
}

func beverage(b booking.BeverageSelection) *BeverageView {
	if !b.IsSet() {
		return nil
	}
	return &BeverageView{
		Name:           b.Name,
		Hours:          b.Hours,
		PricePerPerson: b.PricePerPerson.Float(),
		Text:           fmt.Sprintf("%d hours, %s per person", b.Hours, b.PricePerPerson.Display()),
	}
}

func breakdown(s *booking.Session, total catalog.Money) string {
	guests := s.EventInfo().Guests
	if guests <= 0 {
		return ""
	}
	perPerson := s.Beverage().PricePerPerson
	text := fmt.Sprintf("%s × %d guests", perPerson.Display(), guests)
	if food := total - perPerson.Times(guests); food > 0 {
		text += fmt.Sprintf(" + $%s menu", food.String())
	}
	return text + " = $" + total.String()
}
