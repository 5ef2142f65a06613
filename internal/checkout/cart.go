package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrCartRejected is returned when the cart service refuses a line.
var ErrCartRejected = errors.New("cart rejected line item")

// Receipt identifies where a submitted line ended up.
type Receipt struct {
	CartID      string `json:"cartId"`
	LineID      string `json:"lineId,omitempty"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}

// Cart accepts booking line items for checkout.
type Cart interface {
	AddLine(ctx context.Context, sessionID string, line LineItem) (Receipt, error)
}

var idempotencyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("venue-booking/cart-line"))

// IdempotencyKey identifies one submission of a line by a session. The same
// session submitting the same line again gets the same key.
func IdempotencyKey(sessionID string, line LineItem) string {
	var b strings.Builder
	b.WriteString(sessionID)
	b.WriteByte(0)
	b.WriteString(line.MerchandiseID)
	for _, a := range line.Attributes {
		b.WriteByte(0)
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value)
	}
	return uuid.NewSHA1(idempotencyNamespace, []byte(b.String())).String()
}
