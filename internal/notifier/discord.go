package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/venue-booking-api/internal/checkout"
	"go.uber.org/zap"
)

type Notifier interface {
	NotifyBooking(receipt checkout.Receipt, line checkout.LineItem) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) NotifyBooking(checkout.Receipt, checkout.LineItem) error {
	return nil
}

// messageSender is the part of *discordgo.Session the notifier uses.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   messageSender
	channelID string
	logger    *zap.Logger
}

func NewDiscordNotifier(session *discordgo.Session, channelID string, logger *zap.Logger) *DiscordNotifier {
	n := &DiscordNotifier{channelID: channelID, logger: logger}
	if session != nil {
		n.session = session
	}
	return n
}

// NewFromConfig returns a Discord notifier when both a bot token and a
// channel are set, and a NopNotifier otherwise.
func NewFromConfig(botToken, channelID string, logger *zap.Logger) (Notifier, error) {
	if botToken == "" || channelID == "" {
		return NopNotifier{}, nil
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return NewDiscordNotifier(session, channelID, logger), nil
}

func (n *DiscordNotifier) NotifyBooking(receipt checkout.Receipt, line checkout.LineItem) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, BookingMessage(receipt, line))
	if err != nil {
		n.logger.Error("Failed to send discord message", zap.Error(err))
		return err
	}

	return nil
}

// BookingMessage renders a submitted booking for a chat channel.
func BookingMessage(receipt checkout.Receipt, line checkout.LineItem) string {
	attr := func(key string) string {
		v, _ := line.Attribute(key)
		if v == "" {
			return "-"
		}
		return v
	}

	var b strings.Builder
	b.WriteString("🎉 **New Event Booking**\n")
	fmt.Fprintf(&b, "**Location:** %s\n", attr(checkout.AttrLocation))
	fmt.Fprintf(&b, "**Event Type:** %s\n", attr(checkout.AttrEventType))
	fmt.Fprintf(&b, "**When:** %s %s\n", attr(checkout.AttrDate), attr(checkout.AttrTime))
	fmt.Fprintf(&b, "**Guests:** %s\n", attr(checkout.AttrGuests))
	fmt.Fprintf(&b, "**Contact:** %s\n", attr(checkout.AttrEmail))
	fmt.Fprintf(&b, "**Total:** $%s\n", attr(checkout.AttrTotalPrice))
	fmt.Fprintf(&b, "**Cart:** %s", receipt.CartID)
	if receipt.CheckoutURL != "" {
		fmt.Fprintf(&b, " (%s)", receipt.CheckoutURL)
	}
	return b.String()
}
