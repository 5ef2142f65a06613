package booking

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func potstickers() MenuItemMetadata {
	item, _ := catalog.Default().MenuItem("chicken-potstickers")
	return MenuMetadata(item)
}

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.Step() != StepEventInfo {
		t.Errorf("expected step 1, got %d", s.Step())
	}
	if s.EventInfo() != (EventInfo{}) {
		t.Errorf("expected empty event info, got %+v", s.EventInfo())
	}
	if len(s.MenuSelections()) != 0 {
		t.Errorf("expected no menu selections, got %d", len(s.MenuSelections()))
	}
	if s.Beverage().IsSet() {
		t.Error("expected no beverage package")
	}
	if s.TotalPrice() != 0 {
		t.Errorf("expected total 0, got %s", s.TotalPrice())
	}
}

func TestGoToStep_OutOfRange(t *testing.T) {
	for _, start := range []int{1, 2, 3, 4} {
		for _, target := range []int{-10, -1, 0, 5, 6, 100} {
			s := NewSession()
			s.GoToStep(start)

			out := s.GoToStep(target)
			if out.Applied {
				t.Errorf("GoToStep(%d) from %d: expected rejection", target, start)
			}
			if out.Reason != ReasonStepOutOfRange {
				t.Errorf("GoToStep(%d): expected reason %q, got %q", target, ReasonStepOutOfRange, out.Reason)
			}
			if s.Step() != start {
				t.Errorf("GoToStep(%d) from %d: step changed to %d", target, start, s.Step())
			}
		}
	}
}

func TestGoToStep_InRange(t *testing.T) {
	s := NewSession()
	for _, target := range []int{4, 2, 3, 1} {
		if out := s.GoToStep(target); !out.Applied {
			t.Errorf("GoToStep(%d): expected applied, got %+v", target, out)
		}
		if s.Step() != target {
			t.Errorf("expected step %d, got %d", target, s.Step())
		}
	}
}

func TestAdvanceRetreat(t *testing.T) {
	t.Run("IdentityAwayFromBoundaries", func(t *testing.T) {
		for _, start := range []int{1, 2, 3} {
			s := NewSession()
			s.GoToStep(start)
			s.Advance()
			s.Retreat()
			if s.Step() != start {
				t.Errorf("advance+retreat from %d ended at %d", start, s.Step())
			}
		}
		for _, start := range []int{2, 3, 4} {
			s := NewSession()
			s.GoToStep(start)
			s.Retreat()
			s.Advance()
			if s.Step() != start {
				t.Errorf("retreat+advance from %d ended at %d", start, s.Step())
			}
		}
	})

	t.Run("AdvanceStopsAtLastStep", func(t *testing.T) {
		s := NewSession()
		for i := 0; i < 3; i++ {
			if out := s.Advance(); !out.Applied {
				t.Fatalf("advance %d: expected applied", i+1)
			}
		}
		if s.Step() != 4 {
			t.Fatalf("expected step 4, got %d", s.Step())
		}

		out := s.Advance()
		if out.Applied || out.Reason != ReasonAtLastStep {
			t.Errorf("expected rejection at last step, got %+v", out)
		}
		if s.Step() != 4 {
			t.Errorf("expected step to remain 4, got %d", s.Step())
		}
	})

	t.Run("RetreatStopsAtFirstStep", func(t *testing.T) {
		s := NewSession()
		out := s.Retreat()
		if out.Applied || out.Reason != ReasonAtFirstStep {
			t.Errorf("expected rejection at first step, got %+v", out)
		}
		if s.Step() != 1 {
			t.Errorf("expected step 1, got %d", s.Step())
		}
	})
}

func TestUpdateEventInfo(t *testing.T) {
	s := NewSession()

	out := s.UpdateEventInfo(EventInfoPatch{Location: strPtr("lucky-strike-denver"), Guests: intPtr(50)})
	if !out.Applied {
		t.Fatalf("expected applied, got %+v", out)
	}

	s.UpdateEventInfo(EventInfoPatch{Email: strPtr("a@b.com")})

	info := s.EventInfo()
	if info.Location != "lucky-strike-denver" {
		t.Errorf("expected location to survive second patch, got %q", info.Location)
	}
	if info.Guests != 50 {
		t.Errorf("expected 50 guests, got %d", info.Guests)
	}
	if info.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %q", info.Email)
	}

	s.UpdateEventInfo(EventInfoPatch{Location: strPtr("")})
	if s.EventInfo().Location != "" {
		t.Errorf("expected explicit empty location to clear the field")
	}

	before := s.EventInfo()
	out = s.UpdateEventInfo(EventInfoPatch{})
	if out.Applied || out.Reason != ReasonEmptyPatch {
		t.Errorf("expected empty patch to be rejected, got %+v", out)
	}
	if s.EventInfo() != before {
		t.Error("expected empty patch to leave event info unchanged")
	}
}

func TestSetMenuItemQuantity(t *testing.T) {
	t.Run("InsertUpdateRemove", func(t *testing.T) {
		s := NewSession()
		meta := potstickers()

		if out := s.SetMenuItemQuantity("chicken-potstickers", 2, meta); !out.Applied {
			t.Fatalf("insert: expected applied, got %+v", out)
		}
		entry, ok := s.menu.Get("chicken-potstickers")
		if !ok {
			t.Fatal("expected entry after insert")
		}
		if entry.Quantity != 2 || entry.Title != "CHICKEN POTSTICKERS" || entry.Category != "starters" {
			t.Errorf("unexpected entry %+v", entry)
		}

		s.SetMenuItemQuantity("chicken-potstickers", 5, MenuItemMetadata{Title: "ignored"})
		entry, _ = s.menu.Get("chicken-potstickers")
		if entry.Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", entry.Quantity)
		}
		if entry.Title != "CHICKEN POTSTICKERS" {
			t.Errorf("expected metadata to be kept on update, got title %q", entry.Title)
		}

		s.SetMenuItemQuantity("chicken-potstickers", 0, meta)
		if _, ok := s.menu.Get("chicken-potstickers"); ok {
			t.Error("expected entry to be removed at quantity 0")
		}
		if s.menu.Len() != 0 {
			t.Errorf("expected empty set, got %d entries", s.menu.Len())
		}
	})

	t.Run("ZeroAlwaysRemoves", func(t *testing.T) {
		priors := map[string]func(s *Session){
			"absent":  func(s *Session) {},
			"present": func(s *Session) { s.SetMenuItemQuantity("nachos", 3, MenuItemMetadata{}) },
			"others":  func(s *Session) { s.SetMenuItemQuantity("cheesecake", 1, MenuItemMetadata{}) },
		}
		for name, prior := range priors {
			s := NewSession()
			prior(s)
			s.SetMenuItemQuantity("nachos", 0, MenuItemMetadata{})
			if _, ok := s.menu.Get("nachos"); ok {
				t.Errorf("%s: expected nachos to be absent", name)
			}
		}
	})

	t.Run("RemovingAbsentIsNoOp", func(t *testing.T) {
		s := NewSession()
		out := s.SetMenuItemQuantity("nachos", 0, MenuItemMetadata{})
		if out.Applied || out.Reason != ReasonNotSelected {
			t.Errorf("expected not-selected rejection, got %+v", out)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		s := NewSession()
		s.SetMenuItemQuantity("nachos", 4, MenuItemMetadata{Title: "NACHOS"})
		s.SetMenuItemQuantity("nachos", 4, MenuItemMetadata{Title: "NACHOS"})

		entries := s.MenuSelections()
		if len(entries) != 1 {
			t.Fatalf("expected a single entry, got %d", len(entries))
		}
		if entries[0].Quantity != 4 {
			t.Errorf("expected quantity 4, got %d", entries[0].Quantity)
		}
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		s := NewSession()
		s.SetMenuItemQuantity("nachos", 1, MenuItemMetadata{})
		out := s.SetMenuItemQuantity("nachos", -1, MenuItemMetadata{})
		if out.Applied || out.Reason != ReasonNegativeQuantity {
			t.Errorf("expected negative quantity rejection, got %+v", out)
		}
		if s.MenuQuantity("nachos") != 1 {
			t.Errorf("expected quantity to stay 1, got %d", s.MenuQuantity("nachos"))
		}
	})

	t.Run("InsertionOrder", func(t *testing.T) {
		s := NewSession()
		for _, id := range []string{"nachos", "cheesecake", "wings-buffalo", "caesar-salad"} {
			s.SetMenuItemQuantity(id, 1, MenuItemMetadata{})
		}
		s.SetMenuItemQuantity("cheesecake", 0, MenuItemMetadata{})
		s.SetMenuItemQuantity("nachos", 7, MenuItemMetadata{})

		var ids []string
		for _, e := range s.MenuSelections() {
			ids = append(ids, e.ID)
		}
		want := []string{"nachos", "wings-buffalo", "caesar-salad"}
		if !reflect.DeepEqual(ids, want) {
			t.Errorf("expected order %v, got %v", want, ids)
		}
	})

	t.Run("EntriesAreCopies", func(t *testing.T) {
		s := NewSession()
		s.SetMenuItemQuantity("nachos", 1, MenuItemMetadata{})
		entries := s.MenuSelections()
		entries[0].Quantity = 99
		if s.MenuQuantity("nachos") != 1 {
			t.Error("expected session state to be unaffected by caller mutation")
		}
	})
}

func TestAdjustMenuItem(t *testing.T) {
	item, _ := catalog.Default().MenuItem("wings-buffalo")
	s := NewSession()

	s.AdjustMenuItem(item, 1)
	s.AdjustMenuItem(item, 1)
	if s.MenuQuantity(item.ID) != 2 {
		t.Fatalf("expected quantity 2, got %d", s.MenuQuantity(item.ID))
	}

	s.AdjustMenuItem(item, -5)
	if s.MenuQuantity(item.ID) != 0 {
		t.Errorf("expected clamp to 0, got %d", s.MenuQuantity(item.ID))
	}
	if len(s.MenuSelections()) != 0 {
		t.Error("expected entry removed after clamping to 0")
	}

	out := s.AdjustMenuItem(item, -1)
	if out.Applied {
		t.Error("expected decrement of absent item to be a no-op")
	}
}

func TestSelectBeverage(t *testing.T) {
	pkg, _ := catalog.Default().BeveragePackage("premium")

	sel, ok := SelectBeverage(pkg, 3)
	if !ok {
		t.Fatal("expected 3 hours to be accepted")
	}
	if sel.PricePerPerson != catalog.Dollars(65) || sel.AdditionalHourPrice != catalog.Dollars(13) {
		t.Errorf("unexpected selection %+v", sel)
	}
	if sel.Name != "PREMIUM OPEN BAR" || sel.ID != "premium" || sel.Hours != 3 {
		t.Errorf("unexpected identity %+v", sel)
	}

	if _, ok := SelectBeverage(pkg, 4); ok {
		t.Error("expected 4 hours to be rejected")
	}
}

func TestSetBeveragePackage_Replaces(t *testing.T) {
	c := catalog.Default()
	premium, _ := c.BeveragePackage("premium")
	standard, _ := c.BeveragePackage("standard")

	s := NewSession()
	first, _ := SelectBeverage(premium, 3)
	second, _ := SelectBeverage(standard, 2)

	s.SetBeveragePackage(first)
	s.SetBeveragePackage(second)

	if s.Beverage() != second {
		t.Errorf("expected %+v, got %+v", second, s.Beverage())
	}
}

func TestTotalPrice(t *testing.T) {
	c := catalog.Default()

	for _, pkg := range c.Beverages {
		for _, hours := range catalog.OfferedHours {
			for _, guests := range []int{0, 1, 17, 50, 250} {
				s := NewSession()
				sel, _ := SelectBeverage(pkg, hours)
				s.SetBeveragePackage(sel)
				s.UpdateEventInfo(EventInfoPatch{Guests: intPtr(guests)})

				want := sel.PricePerPerson.Times(guests)
				if got := s.TotalPrice(); got != want {
					t.Errorf("%s/%dh/%d guests: expected %s, got %s", pkg.ID, hours, guests, want, got)
				}
			}
		}
	}

	t.Run("NoPackage", func(t *testing.T) {
		s := NewSession()
		s.UpdateEventInfo(EventInfoPatch{Guests: intPtr(40)})
		if s.TotalPrice() != 0 {
			t.Errorf("expected 0 without a package, got %s", s.TotalPrice())
		}
	})

	t.Run("IgnoresMenuByDefault", func(t *testing.T) {
		s := NewSession()
		s.UpdateEventInfo(EventInfoPatch{Guests: intPtr(10)})
		s.SetMenuItemQuantity("nachos", 2, MenuItemMetadata{Price: catalog.Dollars(30)})
		if s.TotalPrice() != 0 {
			t.Errorf("expected menu prices to be ignored, got %s", s.TotalPrice())
		}
	})

	t.Run("BeverageAndMenu", func(t *testing.T) {
		pkg, _ := c.BeveragePackage("beer-wine")
		sel, _ := SelectBeverage(pkg, 2)

		s := NewSession()
		s.UsePricing(BeverageAndMenu{})
		s.SetBeveragePackage(sel)
		s.UpdateEventInfo(EventInfoPatch{Guests: intPtr(10)})
		s.SetMenuItemQuantity("nachos", 2, MenuItemMetadata{Price: catalog.Money(2550)})

		want := catalog.Dollars(350) + catalog.Money(5100)
		if s.TotalPrice() != want {
			t.Errorf("expected %s, got %s", want, s.TotalPrice())
		}
	})
}

func TestPricingByName(t *testing.T) {
	if p, err := PricingByName(""); err != nil || p != (BeverageOnly{}) {
		t.Errorf("expected default BeverageOnly, got %v, %v", p, err)
	}
	if p, err := PricingByName(PricingBeverageAndMenu); err != nil || p != (BeverageAndMenu{}) {
		t.Errorf("expected BeverageAndMenu, got %v, %v", p, err)
	}
	if _, err := PricingByName("food-only"); err == nil {
		t.Error("expected unknown strategy to fail")
	}
}

func TestReset(t *testing.T) {
	c := catalog.Default()
	pkg, _ := c.BeveragePackage("standard")
	sel, _ := SelectBeverage(pkg, 3)

	s := NewSession()
	s.UpdateEventInfo(EventInfoPatch{
		Location:  strPtr("denver-coors-field"),
		EventType: strPtr("birthday"),
		Date:      strPtr("2030-06-01"),
		Time:      strPtr("19:30"),
		Email:     strPtr("x@y.z"),
		Guests:    intPtr(12),
	})
	s.SetMenuItemQuantity("nachos", 2, MenuItemMetadata{})
	s.SetMenuItemQuantity("nachos", 0, MenuItemMetadata{})
	s.SetMenuItemQuantity("cheesecake", 1, MenuItemMetadata{})
	s.SetBeveragePackage(sel)
	s.GoToStep(4)

	if out := s.Reset(); !out.Applied {
		t.Fatalf("expected reset to apply, got %+v", out)
	}

	if !reflect.DeepEqual(s, NewSession()) {
		t.Errorf("expected reset session to equal a new one, got %+v", s)
	}

	got, _ := json.Marshal(s)
	want, _ := json.Marshal(NewSession())
	if string(got) != string(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestProgress(t *testing.T) {
	s := NewSession()
	s.GoToStep(3)

	progress := s.Progress()
	if len(progress) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(progress))
	}
	wantStates := []StepState{StepCompleted, StepCompleted, StepCurrent, StepPending}
	for i, p := range progress {
		if p.State != wantStates[i] {
			t.Errorf("step %d: expected %s, got %s", p.Step, wantStates[i], p.State)
		}
	}
	if progress[2].Label != "Beverage Packages" {
		t.Errorf("expected step 3 label Beverage Packages, got %q", progress[2].Label)
	}
	if StepLabel(9) != "" {
		t.Error("expected empty label for unknown step")
	}
}

func TestSessionJSON(t *testing.T) {
	c := catalog.Default()
	pkg, _ := c.BeveragePackage("premium")
	sel, _ := SelectBeverage(pkg, 3)

	s := NewSession()
	s.UpdateEventInfo(EventInfoPatch{Location: strPtr("lucky-strike-denver"), Guests: intPtr(50)})
	s.SetMenuItemQuantity("chicken-potstickers", 2, potstickers())
	s.SetBeveragePackage(sel)
	s.Advance()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	restored := NewSession()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(s, restored) {
		t.Errorf("expected restored session to equal original\noriginal: %+v\nrestored: %+v", s, restored)
	}

	t.Run("EmptyMenuIsArray", func(t *testing.T) {
		data, _ := json.Marshal(NewSession())
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if string(raw["menuSelections"]) != "[]" {
			t.Errorf("expected empty array, got %s", raw["menuSelections"])
		}
	})

	t.Run("InvalidStepRestarts", func(t *testing.T) {
		restored := NewSession()
		if err := json.Unmarshal([]byte(`{"currentStep":9}`), restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if restored.Step() != 1 {
			t.Errorf("expected step 1, got %d", restored.Step())
		}
	})

	t.Run("DropsZeroAndDuplicateEntries", func(t *testing.T) {
		restored := NewSession()
		raw := `{"currentStep":2,"menuSelections":[{"id":"a","quantity":1},{"id":"b","quantity":0},{"id":"a","quantity":3}]}`
		if err := json.Unmarshal([]byte(raw), restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		entries := restored.MenuSelections()
		if len(entries) != 1 || entries[0].ID != "a" || entries[0].Quantity != 1 {
			t.Errorf("unexpected entries %+v", entries)
		}
	})
}
