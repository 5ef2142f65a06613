package booking

import "github.com/gdg-garage/venue-booking-api/internal/catalog"

// BeverageSelection is the chosen package and duration. PricePerPerson is
// fixed when the selection is made and is not recomputed if the catalog
// changes afterwards.
type BeverageSelection struct {
	ID                  string        `json:"id,omitempty"`
	Name                string        `json:"name"`
	Hours               int           `json:"hours"`
	PricePerPerson      catalog.Money `json:"pricePerPerson"`
	AdditionalHourPrice catalog.Money `json:"additionalHourPrice,omitempty"`
}

func (b BeverageSelection) IsSet() bool {
	return b.ID != "" || b.Name != ""
}

// SelectBeverage prices pkg for the given duration. Only the durations in
// catalog.OfferedHours are accepted.
func SelectBeverage(pkg catalog.BeveragePackage, hours int) (BeverageSelection, bool) {
	price, ok := pkg.PriceFor(hours)
	if !ok {
		return BeverageSelection{}, false
	}
	return BeverageSelection{
		ID:                  pkg.ID,
		Name:                pkg.Name,
		Hours:               hours,
		PricePerPerson:      price,
		AdditionalHourPrice: pkg.AdditionalHourPrice,
	}, true
}
