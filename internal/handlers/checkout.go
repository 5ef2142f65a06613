package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"github.com/gdg-garage/venue-booking-api/internal/checkout"
	"github.com/gdg-garage/venue-booking-api/internal/models"
	"github.com/gdg-garage/venue-booking-api/internal/notifier"
	"github.com/gdg-garage/venue-booking-api/internal/sessions"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	sessions      *sessions.Manager
	cart          checkout.Cart
	notifier      notifier.Notifier
	merchandiseID string
	resetAfter    bool
	logger        *zap.Logger
}

func NewCheckoutHandler(m *sessions.Manager, cart checkout.Cart, n notifier.Notifier, merchandiseID string, resetAfter bool, logger *zap.Logger) *CheckoutHandler {
	if n == nil {
		n = notifier.NopNotifier{}
	}
	return &CheckoutHandler{
		sessions:      m,
		cart:          cart,
		notifier:      n,
		merchandiseID: merchandiseID,
		resetAfter:    resetAfter,
		logger:        logger,
	}
}

type CheckoutOutput struct {
	Body struct {
		Receipt  checkout.Receipt  `json:"receipt"`
		LineItem checkout.LineItem `json:"lineItem"`
		Reset    bool              `json:"reset" doc:"Whether the booking session was cleared after submission"`
		Session  SessionResponse   `json:"session"`
	}
}

// HandleCheckout submits the session as a cart line. The session is left
// untouched when the cart refuses the line. Once the cart has accepted it,
// the request succeeds even if the session cannot be cleared; resubmitting
// the same booking reuses its idempotency key.
func (h *CheckoutHandler) HandleCheckout(ctx context.Context, input *struct{}) (*CheckoutOutput, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		line    checkout.LineItem
		receipt checkout.Receipt
	)
	s, discarded, err := h.sessions.Submit(ctx, sid, func(s *booking.Session) error {
		var err error
		line, err = checkout.BuildLineItem(s, h.merchandiseID)
		if err != nil {
			return fmt.Errorf("build line item: %w", err)
		}
		receipt, err = h.cart.AddLine(ctx, sid, line)
		return err
	}, h.resetAfter)
	if err != nil {
		h.logger.Error("Checkout failed", zap.String("session_id", sid), zap.Error(err))
		if errors.Is(err, checkout.ErrCartRejected) {
			return nil, huma.Error502BadGateway("Cart rejected the booking: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("Failed to submit booking: " + err.Error())
	}

	h.logger.Info("Booking submitted",
		zap.String("session_id", sid),
		zap.String("cart_id", receipt.CartID),
	)

	if err := h.notifier.NotifyBooking(receipt, line); err != nil {
		h.logger.Warn("Booking notification failed", zap.String("session_id", sid), zap.Error(err))
	}

	res := &CheckoutOutput{}
	res.Body.Receipt = receipt
	res.Body.LineItem = line
	res.Body.Reset = discarded
	res.Body.Session = newSessionResponse(s)
	return res, nil
}

// lineLister is implemented by carts that can list what a session submitted.
type lineLister interface {
	Lines(ctx context.Context, sessionID string) ([]models.CartLine, error)
}

type SubmittedLine struct {
	ID            uint                 `json:"id"`
	SubmittedAt   time.Time            `json:"submittedAt"`
	MerchandiseID string               `json:"merchandiseId"`
	TotalPrice    string               `json:"totalPrice"`
	Attributes    []checkout.Attribute `json:"attributes"`
}

type HistoryOutput struct {
	Body struct {
		History []SubmittedLine `json:"history"`
	}
}

// HandleHistory lists the bookings this session has submitted, newest first.
func (h *CheckoutHandler) HandleHistory(ctx context.Context, input *struct{}) (*HistoryOutput, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	lister, ok := h.cart.(lineLister)
	if !ok {
		return nil, huma.Error501NotImplemented("Booking history is not available for this cart backend")
	}

	lines, err := lister.Lines(ctx, sid)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch history: " + err.Error())
	}

	res := &HistoryOutput{}
	res.Body.History = make([]SubmittedLine, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		item := SubmittedLine{
			ID:            line.ID,
			SubmittedAt:   line.CreatedAt,
			MerchandiseID: line.MerchandiseID,
			TotalPrice:    line.TotalPrice,
			Attributes:    make([]checkout.Attribute, 0, len(line.Attributes)),
		}
		for _, a := range line.Attributes {
			item.Attributes = append(item.Attributes, checkout.Attribute{Key: a.Key, Value: a.Value})
		}
		res.Body.History = append(res.Body.History, item)
	}
	return res, nil
}
