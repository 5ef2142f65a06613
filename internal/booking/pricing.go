package booking

import (
	"fmt"

	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

// PricingStrategy derives the total price of a session.
type PricingStrategy interface {
	Total(s *Session) catalog.Money
}

// BeverageOnly charges the beverage price per person times the guest count.
// Food is treated as included in the venue price.
type BeverageOnly struct{}

func (BeverageOnly) Total(s *Session) catalog.Money {
	if s.eventInfo.Guests <= 0 {
		return 0
	}
	return s.beverage.PricePerPerson.Times(s.eventInfo.Guests)
}

// BeverageAndMenu adds each menu entry's price times its quantity to the
// beverage total.
type BeverageAndMenu struct{}

func (BeverageAndMenu) Total(s *Session) catalog.Money {
	total := BeverageOnly{}.Total(s)
	for _, e := range s.menu.entries {
		total = total.Plus(e.Price.Times(e.Quantity))
	}
	return total
}

const (
	PricingBeverage        = "beverage"
	PricingBeverageAndMenu = "beverage+menu"
)

// PricingByName maps a configuration value to a strategy.
func PricingByName(name string) (PricingStrategy, error) {
	switch name {
	case "", PricingBeverage:
		return BeverageOnly{}, nil
	case PricingBeverageAndMenu:
		return BeverageAndMenu{}, nil
	}
	return nil, fmt.Errorf("unknown pricing strategy %q", name)
}
