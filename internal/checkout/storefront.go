package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

type StorefrontConfig struct {
	CartURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// StorefrontCart submits lines to an external storefront cart API,
// authenticating with an OAuth2 client-credentials token.
type StorefrontCart struct {
	client  *http.Client
	cartURL string
	logger  *zap.Logger
}

// NewStorefrontCart builds the cart client. ctx governs token refreshes for
// the lifetime of the client.
func NewStorefrontCart(ctx context.Context, cfg StorefrontConfig, logger *zap.Logger) *StorefrontCart {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	return &StorefrontCart{
		client:  cc.Client(ctx),
		cartURL: cfg.CartURL,
		logger:  logger,
	}
}

type storefrontRequest struct {
	BuyerIdentity struct {
		SessionID string `json:"sessionId"`
	} `json:"buyerIdentity"`
	Lines []LineItem `json:"lines"`
}

type storefrontResponse struct {
	CartID      string `json:"cartId"`
	LineID      string `json:"lineId"`
	CheckoutURL string `json:"checkoutUrl"`
}

func (c *StorefrontCart) AddLine(ctx context.Context, sessionID string, line LineItem) (Receipt, error) {
	var body storefrontRequest
	body.BuyerIdentity.SessionID = sessionID
	body.Lines = []LineItem{line}

	payload, err := json.Marshal(body)
	if err != nil {
		return Receipt{}, fmt.Errorf("encode cart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cartURL, bytes.NewReader(payload))
	if err != nil {
		return Receipt{}, fmt.Errorf("build cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", IdempotencyKey(sessionID, line))

	resp, err := c.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("submit cart line: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Storefront rejected cart line",
			zap.String("session_id", sessionID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("detail", detail),
		)
		return Receipt{}, fmt.Errorf("%w: status %d", ErrCartRejected, resp.StatusCode)
	}

	var out storefrontResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Receipt{}, fmt.Errorf("decode cart response: %w", err)
	}

	c.logger.Info("Storefront cart line added",
		zap.String("session_id", sessionID),
		zap.String("cart_id", out.CartID),
	)

	return Receipt{CartID: out.CartID, LineID: out.LineID, CheckoutURL: out.CheckoutURL}, nil
}
