package checkout

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gdg-garage/venue-booking-api/internal/booking"
)

// Line item attribute keys, in the order they are submitted.
const (
	AttrLocation   = "Location"
	AttrEventType  = "Event Type"
	AttrDate       = "Date"
	AttrTime       = "Time"
	AttrEmail      = "Email"
	AttrGuests     = "Guests"
	AttrMenu       = "Menu"
	AttrBeverage   = "Beverage Package"
	AttrTotalPrice = "Calculated Total Price"
)

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LineItem is the single cart line a booking is submitted as.
type LineItem struct {
	MerchandiseID string      `json:"merchandiseId"`
	Quantity      int         `json:"quantity"`
	Attributes    []Attribute `json:"attributes"`
}

// Attribute returns the value stored under key.
func (l LineItem) Attribute(key string) (string, bool) {
	for _, a := range l.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// BuildLineItem serializes the session into cart line attributes. Incomplete
// sessions are serialized as they are; a missing package or guest count
// yields a total of 0.00.
func BuildLineItem(s *booking.Session, merchandiseID string) (LineItem, error) {
	info := s.EventInfo()

	menu, err := json.Marshal(s.MenuSelections())
	if err != nil {
		return LineItem{}, fmt.Errorf("encode menu selections: %w", err)
	}

	beverage, err := json.Marshal(s.Beverage())
	if err != nil {
		return LineItem{}, fmt.Errorf("encode beverage package: %w", err)
	}

	return LineItem{
		MerchandiseID: merchandiseID,
		Quantity:      1,
		Attributes: []Attribute{
			{Key: AttrLocation, Value: info.Location},
			{Key: AttrEventType, Value: info.EventType},
			{Key: AttrDate, Value: info.Date},
			{Key: AttrTime, Value: info.Time},
			{Key: AttrEmail, Value: info.Email},
			{Key: AttrGuests, Value: strconv.Itoa(info.Guests)},
			{Key: AttrMenu, Value: string(menu)},
			{Key: AttrBeverage, Value: string(beverage)},
			{Key: AttrTotalPrice, Value: s.TotalPrice().String()},
		},
	}, nil
}
