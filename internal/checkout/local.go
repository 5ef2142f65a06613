package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdg-garage/venue-booking-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LocalCart keeps cart lines in the service's own database, one cart per
// booking session.
type LocalCart struct {
	db      *gorm.DB
	baseURL string
	logger  *zap.Logger
}

func NewLocalCart(db *gorm.DB, baseURL string, logger *zap.Logger) *LocalCart {
	return &LocalCart{db: db, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// AddLine stores the line. A line the session already submitted is not
// stored twice; the receipt of the earlier submission is returned instead.
func (c *LocalCart) AddLine(ctx context.Context, sessionID string, line LineItem) (Receipt, error) {
	key := IdempotencyKey(sessionID, line)

	var existing models.CartLine
	err := c.db.WithContext(ctx).Where("idempotency_key = ?", key).Limit(1).Find(&existing).Error
	if err != nil {
		return Receipt{}, fmt.Errorf("look up cart line: %w", err)
	}
	if existing.ID != 0 {
		c.logger.Info("Cart line already submitted",
			zap.String("session_id", sessionID),
			zap.Uint("line_id", existing.ID),
		)
		return c.receipt(sessionID, existing.ID), nil
	}

	total, _ := line.Attribute(AttrTotalPrice)
	record := models.CartLine{
		SessionID:      sessionID,
		IdempotencyKey: key,
		MerchandiseID:  line.MerchandiseID,
		Quantity:       line.Quantity,
		TotalPrice:     total,
	}
	for i, a := range line.Attributes {
		record.Attributes = append(record.Attributes, models.CartLineAttribute{
			Position: i,
			Key:      a.Key,
			Value:    a.Value,
		})
	}

	if err := c.db.WithContext(ctx).Create(&record).Error; err != nil {
		return Receipt{}, fmt.Errorf("save cart line: %w", err)
	}

	c.logger.Info("Cart line added",
		zap.String("session_id", sessionID),
		zap.Uint("line_id", record.ID),
		zap.String("total", total),
	)

	return c.receipt(sessionID, record.ID), nil
}

func (c *LocalCart) receipt(sessionID string, lineID uint) Receipt {
	return Receipt{
		CartID:      sessionID,
		LineID:      fmt.Sprintf("%d", lineID),
		CheckoutURL: fmt.Sprintf("%s/cart/%s", c.baseURL, sessionID),
	}
}

// Lines returns the lines of a session's cart, oldest first, with their
// attributes in submission order.
func (c *LocalCart) Lines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := c.db.WithContext(ctx).
		Preload("Attributes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}
