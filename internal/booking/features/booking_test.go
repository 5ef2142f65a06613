package features

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"github.com/gdg-garage/venue-booking-api/internal/catalog"
)

type bookingTestContext struct {
	catalog *catalog.Catalog
	session *booking.Session
	last    booking.Outcome
}

func (c *bookingTestContext) reset() {
	c.catalog = catalog.Default()
	c.session = nil
	c.last = booking.Outcome{}
}

func (c *bookingTestContext) aNewBookingSession() error {
	c.session = booking.NewSession()
	return nil
}

func (c *bookingTestContext) iSetTheEventInfo(table *godog.Table) error {
	var patch booking.EventInfoPatch
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected key/value rows, got %d cells", len(row.Cells))
		}
		value := row.Cells[1].Value
		switch row.Cells[0].Value {
		case "location":
			patch.Location = &value
		case "eventType":
			patch.EventType = &value
		case "date":
			patch.Date = &value
		case "time":
			patch.Time = &value
		case "email":
			patch.Email = &value
		case "guests":
			guests, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			patch.Guests = &guests
		default:
			return fmt.Errorf("unknown event info field %q", row.Cells[0].Value)
		}
	}
	c.last = c.session.UpdateEventInfo(patch)
	return nil
}

func (c *bookingTestContext) iSelectTheBeveragePackageForHours(id string, hours int) error {
	pkg, ok := c.catalog.BeveragePackage(id)
	if !ok {
		return fmt.Errorf("unknown beverage package %q", id)
	}
	sel, ok := booking.SelectBeverage(pkg, hours)
	if !ok {
		return fmt.Errorf("package %q is not offered for %d hours", id, hours)
	}
	c.last = c.session.SetBeveragePackage(sel)
	return nil
}

func (c *bookingTestContext) iSetToQuantity(id string, quantity int) error {
	item, ok := c.catalog.MenuItem(id)
	if !ok {
		return fmt.Errorf("unknown menu item %q", id)
	}
	c.last = c.session.SetMenuItemQuantity(id, quantity, booking.MenuMetadata(item))
	return nil
}

func (c *bookingTestContext) iAdvanceTimes(n int) error {
	for i := 0; i < n; i++ {
		c.last = c.session.Advance()
	}
	return nil
}

func (c *bookingTestContext) iGoToStep(n int) error {
	c.last = c.session.GoToStep(n)
	return nil
}

func (c *bookingTestContext) iResetTheSession() error {
	c.last = c.session.Reset()
	return nil
}

func (c *bookingTestContext) thePricePerPersonIs(price int) error {
	if got := c.session.Beverage().PricePerPerson; got != catalog.Dollars(int64(price)) {
		return fmt.Errorf("expected price per person %d, got %s", price, got)
	}
	return nil
}

func (c *bookingTestContext) theTotalPriceIs(total string) error {
	if got := c.session.TotalPrice().String(); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	return nil
}

func (c *bookingTestContext) theMenuDoesNotContain(id string) error {
	for _, e := range c.session.MenuSelections() {
		if e.ID == id {
			return fmt.Errorf("expected %q to be absent, found quantity %d", id, e.Quantity)
		}
	}
	return nil
}

func (c *bookingTestContext) theMenuIsEmpty() error {
	if n := len(c.session.MenuSelections()); n != 0 {
		return fmt.Errorf("expected empty menu, got %d entries", n)
	}
	return nil
}

func (c *bookingTestContext) theCurrentStepIs(step int) error {
	if c.session.Step() != step {
		return fmt.Errorf("expected step %d, got %d", step, c.session.Step())
	}
	return nil
}

func (c *bookingTestContext) theLastOperationWasRejectedWith(reason string) error {
	if c.last.Applied {
		return fmt.Errorf("expected last operation to be rejected")
	}
	if c.last.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, c.last.Reason)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &bookingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a new booking session$`, tc.aNewBookingSession)

	// When steps
	ctx.Step(`^I set the event info:$`, tc.iSetTheEventInfo)
	ctx.Step(`^I select the "([^"]*)" beverage package for (\d+) hours$`, tc.iSelectTheBeveragePackageForHours)
	ctx.Step(`^I set "([^"]*)" to quantity (\d+)$`, tc.iSetToQuantity)
	ctx.Step(`^I advance (\d+) times$`, tc.iAdvanceTimes)
	ctx.Step(`^I go to step (-?\d+)$`, tc.iGoToStep)
	ctx.Step(`^I reset the session$`, tc.iResetTheSession)

	// Then steps
	ctx.Step(`^the price per person is (\d+)$`, tc.thePricePerPersonIs)
	ctx.Step(`^the total price is "([^"]*)"$`, tc.theTotalPriceIs)
	ctx.Step(`^the menu does not contain "([^"]*)"$`, tc.theMenuDoesNotContain)
	ctx.Step(`^the menu is empty$`, tc.theMenuIsEmpty)
	ctx.Step(`^the current step is (\d+)$`, tc.theCurrentStepIs)
	ctx.Step(`^the last operation was rejected with "([^"]*)"$`, tc.theLastOperationWasRejectedWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"booking.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
