package booking

import (
	"encoding/json"

	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

// Wizard steps.
const (
	StepEventInfo = 1
	StepMenu      = 2
	StepBeverage  = 3
	StepOverview  = 4

	FirstStep = StepEventInfo
	LastStep  = StepOverview
)

// Session is one user's in-progress booking. It owns its event info, menu
// selections and beverage selection; callers change them only through the
// methods below, each of which reports an Outcome instead of failing.
type Session struct {
	step      int
	eventInfo EventInfo
	menu      MenuSelectionSet
	beverage  BeverageSelection
	pricing   PricingStrategy
}

// NewSession returns a session at step 1 priced with BeverageOnly.
func NewSession() *Session {
	return &Session{step: FirstStep, pricing: BeverageOnly{}}
}

// UsePricing swaps the pricing strategy. A nil strategy restores BeverageOnly.
func (s *Session) UsePricing(p PricingStrategy) {
	if p == nil {
		p = BeverageOnly{}
	}
	s.pricing = p
}

func (s *Session) Step() int {
	return s.step
}

func (s *Session) EventInfo() EventInfo {
	return s.eventInfo
}

func (s *Session) MenuSelections() []MenuSelection {
	return s.menu.Entries()
}

// MenuQuantity returns the selected quantity of a menu item, 0 if absent.
func (s *Session) MenuQuantity(itemID string) int {
	return s.menu.Quantity(itemID)
}

func (s *Session) Beverage() BeverageSelection {
	return s.beverage
}

func (s *Session) Advance() Outcome {
	if s.step >= LastStep {
		return rejected(ReasonAtLastStep)
	}
	s.step++
	return applied()
}

func (s *Session) Retreat() Outcome {
	if s.step <= FirstStep {
		return rejected(ReasonAtFirstStep)
	}
	s.step--
	return applied()
}

func (s *Session) GoToStep(n int) Outcome {
	if n < FirstStep || n > LastStep {
		return rejected(ReasonStepOutOfRange)
	}
	s.step = n
	return applied()
}

// UpdateEventInfo merges the patch into the event info. Field values are
// not validated here.
func (s *Session) UpdateEventInfo(p EventInfoPatch) Outcome {
	if p.IsEmpty() {
		return rejected(ReasonEmptyPatch)
	}
	s.eventInfo = s.eventInfo.Merge(p)
	return applied()
}

// SetMenuItemQuantity removes the item when quantity is 0, updates the
// quantity of an existing entry, or inserts a new entry built from meta.
func (s *Session) SetMenuItemQuantity(itemID string, quantity int, meta MenuItemMetadata) Outcome {
	return s.menu.set(itemID, quantity, meta)
}

// AdjustMenuItem changes an item's quantity by delta, clamping at zero.
func (s *Session) AdjustMenuItem(item catalog.MenuItem, delta int) Outcome {
	quantity := s.menu.Quantity(item.ID) + delta
	if quantity < 0 {
		quantity = 0
	}
	return s.menu.set(item.ID, quantity, MenuMetadata(item))
}

// SetBeveragePackage replaces the beverage selection as a whole.
func (s *Session) SetBeveragePackage(sel BeverageSelection) Outcome {
	s.beverage = sel
	return applied()
}

// TotalPrice is derived on every call from the current state.
func (s *Session) TotalPrice() catalog.Money {
	if s.pricing == nil {
		return BeverageOnly{}.Total(s)
	}
	return s.pricing.Total(s)
}

// Reset returns the session to step 1 with empty models. The pricing
// strategy is kept.
func (s *Session) Reset() Outcome {
	s.step = FirstStep
	s.eventInfo = EventInfo{}
	s.menu = MenuSelectionSet{}
	s.beverage = BeverageSelection{}
	return applied()
}

type sessionJSON struct {
	CurrentStep     int               `json:"currentStep"`
	EventInfo       EventInfo         `json:"eventInfo"`
	MenuSelections  MenuSelectionSet  `json:"menuSelections"`
	BeveragePackage BeverageSelection `json:"beveragePackage"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionJSON{
		CurrentStep:     s.step,
		EventInfo:       s.eventInfo,
		MenuSelections:  s.menu,
		BeveragePackage: s.beverage,
	})
}

// UnmarshalJSON restores a snapshot. An out-of-range step restarts the
// wizard at step 1; the pricing strategy is left as it was.
func (s *Session) UnmarshalJSON(data []byte) error {
	var snap sessionJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	s.step = snap.CurrentStep
	if s.step < FirstStep || s.step > LastStep {
		s.step = FirstStep
	}
	s.eventInfo = snap.EventInfo
	s.menu = snap.MenuSelections
	s.beverage = snap.BeveragePackage
	if s.pricing == nil {
		s.pricing = BeverageOnly{}
	}
	return nil
}
