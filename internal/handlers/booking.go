package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/venue-booking-api/internal/auth"
	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"github.com/gdg-garage/venue-booking-api/internal/catalog"
	"github.com/gdg-garage/venue-booking-api/internal/checkout"
	"github.com/gdg-garage/venue-booking-api/internal/display"
	"github.com/gdg-garage/venue-booking-api/internal/sessions"
	"go.uber.org/zap"
)

type BookingHandler struct {
	sessions      *sessions.Manager
	catalog       *catalog.Catalog
	renderer      *display.Renderer
	merchandiseID string
	logger        *zap.Logger
	now           func() time.Time
}

func NewBookingHandler(m *sessions.Manager, c *catalog.Catalog, merchandiseID string, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		sessions:      m,
		catalog:       c,
		renderer:      display.NewRenderer(c),
		merchandiseID: merchandiseID,
		logger:        logger,
		now:           time.Now,
	}
}

func sessionID(ctx context.Context) (string, error) {
	sid, ok := auth.SessionID(ctx)
	if !ok {
		return "", huma.Error401Unauthorized("No booking session")
	}
	return sid, nil
}

type MenuSelectionResponse struct {
	ID          string  `json:"id"`
	Quantity    int     `json:"quantity"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

type BeverageSelectionResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Hours               int     `json:"hours"`
	PricePerPerson      float64 `json:"pricePerPerson"`
	AdditionalHourPrice float64 `json:"additionalHourPrice"`
}

type SessionResponse struct {
	Step            int                        `json:"currentStep" minimum:"1" maximum:"4"`
	StepLabel       string                     `json:"stepLabel"`
	EventInfo       booking.EventInfo          `json:"eventInfo"`
	MenuSelections  []MenuSelectionResponse    `json:"menuSelections"`
	BeveragePackage *BeverageSelectionResponse `json:"beveragePackage,omitempty"`
	TotalPrice      float64                    `json:"totalPrice"`
}

type BookingBody struct {
	Session SessionResponse  `json:"session"`
	Outcome *booking.Outcome `json:"outcome,omitempty" doc:"Result of the requested change"`
}

type BookingOutput struct {
	Body BookingBody
}

func newSessionResponse(s *booking.Session) SessionResponse {
	res := SessionResponse{
		Step:           s.Step(),
		StepLabel:      booking.StepLabel(s.Step()),
		EventInfo:      s.EventInfo(),
		MenuSelections: []MenuSelectionResponse{},
		TotalPrice:     s.TotalPrice().Float(),
	}
	for _, e := range s.MenuSelections() {
		res.MenuSelections = append(res.MenuSelections, MenuSelectionResponse{
			ID:          e.ID,
			Quantity:    e.Quantity,
			Title:       e.Title,
			Description: e.Description,
			Image:       e.Image,
			Category:    e.Category,
			Price:       e.Price.Float(),
		})
	}
	if b := s.Beverage(); b.IsSet() {
		res.BeveragePackage = &BeverageSelectionResponse{
			ID:                  b.ID,
			Name:                b.Name,
			Hours:               b.Hours,
			PricePerPerson:      b.PricePerPerson.Float(),
			AdditionalHourPrice: b.AdditionalHourPrice.Float(),
		}
	}
	return res
}

func bookingOutput(s *booking.Session, out *booking.Outcome) *BookingOutput {
	return &BookingOutput{Body: BookingBody{Session: newSessionResponse(s), Outcome: out}}
}

func (h *BookingHandler) load(ctx context.Context) (*booking.Session, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	s, err := h.sessions.Get(ctx, sid)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("session_id", sid), zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to load booking session")
	}
	return s, nil
}

func (h *BookingHandler) mutate(ctx context.Context, fn func(*booking.Session) booking.Outcome) (*BookingOutput, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	s, out, err := h.sessions.Mutate(ctx, sid, fn)
	if err != nil {
		h.logger.Error("Failed to update session", zap.String("session_id", sid), zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to update booking session")
	}
	return bookingOutput(s, &out), nil
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *struct{}) (*BookingOutput, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return bookingOutput(s, nil), nil
}

type EventInfoInput struct {
	Body struct {
		Location  *string `json:"location,omitempty" doc:"Location id"`
		EventType *string `json:"eventType,omitempty" doc:"Event type id"`
		Date      *string `json:"date,omitempty" pattern:"^$|^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"Event date, today or later; empty clears it"`
		Time      *string `json:"time,omitempty" pattern:"^$|^([01][0-9]|2[0-3]):[0-5][0-9]$" doc:"Half-hour start slot, 09:00 to 23:30; empty clears it"`
		Email     *string `json:"email,omitempty" maxLength:"254"`
		Guests    *int    `json:"guests,omitempty" minimum:"0" maximum:"10000"`
	}
}

func (h *BookingHandler) HandleUpdateEventInfo(ctx context.Context, input *EventInfoInput) (*BookingOutput, error) {
	body := input.Body
	if body.Location != nil && *body.Location != "" {
		if _, ok := h.catalog.Location(*body.Location); !ok {
			return nil, huma.Error400BadRequest("Unknown location: " + *body.Location)
		}
	}
	if body.EventType != nil && *body.EventType != "" {
		if _, ok := h.catalog.EventType(*body.EventType); !ok {
			return nil, huma.Error400BadRequest("Unknown event type: " + *body.EventType)
		}
	}
	if body.Date != nil && *body.Date != "" {
		if !display.ValidDate(*body.Date) {
			return nil, huma.Error422UnprocessableEntity("Invalid event date: " + *body.Date)
		}
		if !display.DateSelectable(*body.Date, h.now()) {
			return nil, huma.Error400BadRequest("Event date cannot be in the past")
		}
	}
	if body.Time != nil && *body.Time != "" && !display.IsTimeSlot(*body.Time) {
		return nil, huma.Error400BadRequest("Event time must be a half-hour slot between 9:00am and 11:30pm")
	}

	patch := booking.EventInfoPatch{
		Location:  body.Location,
		EventType: body.EventType,
		Date:      body.Date,
		Time:      body.Time,
		Email:     body.Email,
		Guests:    body.Guests,
	}
	return h.mutate(ctx, func(s *booking.Session) booking.Outcome {
		return s.UpdateEventInfo(patch)
	})
}

type MenuItemPath struct {
	ItemID string `path:"itemId" doc:"Menu item id"`
}

type SetMenuQuantityInput struct {
	MenuItemPath
	Body struct {
		Quantity int `json:"quantity" minimum:"0" maximum:"1000" doc:"New quantity; 0 removes the item"`
	}
}

func (h *BookingHandler) menuItem(id string) (catalog.MenuItem, error) {
	item, ok := h.catalog.MenuItem(id)
	if !ok {
		return catalog.MenuItem{}, huma.Error404NotFound("Menu item not found: " + id)
	}
	return item, nil
}

func (h *BookingHandler) HandleSetMenuQuantity(ctx context.Context, input *SetMenuQuantityInput) (*BookingOutput, error) {
	item, err := h.menuItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	return h.mutate(ctx, func(s *booking.Session) booking.Outcome {
		return s.SetMenuItemQuantity(item.ID, input.Body.Quantity, booking.MenuMetadata(item))
	})
}

type AdjustMenuInput struct {
	MenuItemPath
	Body struct {
		Delta int `json:"delta" minimum:"-1000" maximum:"1000" doc:"Change in quantity, usually 1 or -1"`
	}
}

func (h *BookingHandler) HandleAdjustMenu(ctx context.Context, input *AdjustMenuInput) (*BookingOutput, error) {
	item, err := h.menuItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	return h.mutate(ctx, func(s *booking.Session) booking.Outcome {
		return s.AdjustMenuItem(item, input.Body.Delta)
	})
}

type SetBeverageInput struct {
	Body struct {
		PackageID string `json:"packageId" doc:"Beverage package id"`
		Hours     int    `json:"hours" enum:"2,3" doc:"Service duration in hours"`
	}
}

func (h *BookingHandler) HandleSetBeverage(ctx context.Context, input *SetBeverageInput) (*BookingOutput, error) {
	pkg, ok := h.catalog.BeveragePackage(input.Body.PackageID)
	if !ok {
		return nil, huma.Error400BadRequest("Unknown beverage package: " + input.Body.PackageID)
	}
	sel, ok := booking.SelectBeverage(pkg, input.Body.Hours)
	if !ok {
		return nil, huma.Error400BadRequest("Unsupported duration for beverage package")
	}
	return h.mutate(ctx, func(s *booking.Session) booking.Outcome {
		return s.SetBeveragePackage(sel)
	})
}

func (h *BookingHandler) HandleNextStep(ctx context.Context, input *struct{}) (*BookingOutput, error) {
	return h.mutate(ctx, (*booking.Session).Advance)
}

func (h *BookingHandler) HandlePreviousStep(ctx context.Context, input *struct{}) (*BookingOutput, error) {
	return h.mutate(ctx, (*booking.Session).Retreat)
}

type GoToStepInput struct {
	Body struct {
		Step int `json:"step" doc:"Target step, 1 to 4; other values are rejected in the outcome"`
	}
}

func (h *BookingHandler) HandleGoToStep(ctx context.Context, input *GoToStepInput) (*BookingOutput, error) {
	return h.mutate(ctx, func(s *booking.Session) booking.Outcome {
		return s.GoToStep(input.Body.Step)
	})
}

// HandleReset forgets the stored session, which leaves the caller with a
// fresh one on step 1.
func (h *BookingHandler) HandleReset(ctx context.Context, input *struct{}) (*BookingOutput, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	s, err := h.sessions.Discard(ctx, sid)
	if err != nil {
		h.logger.Error("Failed to reset session", zap.String("session_id", sid), zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to reset booking session")
	}
	return bookingOutput(s, &booking.Outcome{Applied: true}), nil
}

type PreviewOutput struct {
	Body display.Preview
}

func (h *BookingHandler) HandlePreview(ctx context.Context, input *struct{}) (*PreviewOutput, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return &PreviewOutput{Body: h.renderer.Preview(s)}, nil
}

type SummaryOutput struct {
	Body display.Summary
}

func (h *BookingHandler) HandleSummary(ctx context.Context, input *struct{}) (*SummaryOutput, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return &SummaryOutput{Body: h.renderer.Summary(s)}, nil
}

type OverviewOutput struct {
	Body display.Overview
}

func (h *BookingHandler) HandleOverview(ctx context.Context, input *struct{}) (*OverviewOutput, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return &OverviewOutput{Body: h.renderer.Overview(s)}, nil
}

type LineItemOutput struct {
	Body checkout.LineItem
}

func (h *BookingHandler) HandleCheckoutAttributes(ctx context.Context, input *struct{}) (*LineItemOutput, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	line, err := checkout.BuildLineItem(s, h.merchandiseID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to build line item: " + err.Error())
	}
	return &LineItemOutput{Body: line}, nil
}
