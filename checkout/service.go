// Package checkout hands the cart over to WhatsApp: it builds the order
// message, wraps it in a wa.me link, and reports the hand-off as an event.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shoaib/cart"
	"shoaib/models"
	"shoaib/mq"
	"shoaib/whatsapp"
)

const (
	ModeDetailed = "detailed"
	ModeQuick    = "quick"
	ModeBuyNow   = "buy-now"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrUnknownMode = errors.New("unknown checkout mode")
)

// Service builds checkout links. It never mutates the cart.
type Service struct {
	formatter whatsapp.Formatter
	linker    *whatsapp.Linker
	emitter   mq.Emitter
	log       *zap.Logger
	now       func() time.Time
}

func NewService(f whatsapp.Formatter, l *whatsapp.Linker, e mq.Emitter, log *zap.Logger) *Service {
	return &Service{formatter: f, linker: l, emitter: e, log: log, now: time.Now}
}

// Link builds the checkout link for lines without reporting a checkout.
// mode is ModeDetailed, ModeQuick or ModeBuyNow; details are used by the
// detailed message only.
func (s *Service) Link(mode string, lines []models.CartLine, details models.OrderDetails) (models.CheckoutLink, error) {
	if len(lines) == 0 {
		return models.CheckoutLink{}, ErrEmptyCart
	}
	total := cart.TotalPrice(lines)

	var msg string
	switch mode {
	case ModeDetailed:
		msg = s.formatter.FormatOrderMessage(lines, total, details)
	case ModeQuick, ModeBuyNow:
		msg = s.formatter.QuickOrderMessage(lines, total)
	default:
		return models.CheckoutLink{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return models.CheckoutLink{
		Mode:    mode,
		Message: msg,
		URL:     s.linker.BuildDeepLink(msg),
		Total:   total,
		Items:   cart.TotalItems(lines),
	}, nil
}

// Detailed builds the itemised message with the optional customer fields
// and reports the checkout.
func (s *Service) Detailed(ctx context.Context, sessionID string, lines []models.CartLine, details models.OrderDetails) (models.CheckoutLink, error) {
	return s.checkout(ctx, sessionID, ModeDetailed, lines, details)
}

// Quick builds the one-paragraph message for the whole cart and reports
// the checkout.
func (s *Service) Quick(ctx context.Context, sessionID string, lines []models.CartLine) (models.CheckoutLink, error) {
	return s.checkout(ctx, sessionID, ModeQuick, lines, models.OrderDetails{})
}

// BuyNow builds a quick message for a single product, leaving the cart alone.
// Quantities below 1 are treated as 1.
func (s *Service) BuyNow(ctx context.Context, sessionID string, p models.Product, quantity int) models.CheckoutLink {
	if quantity < 1 {
		quantity = 1
	}
	// one line is never empty
	link, _ := s.checkout(ctx, sessionID, ModeBuyNow, []models.CartLine{{Product: p, Quantity: quantity}}, models.OrderDetails{})
	return link
}

func (s *Service) checkout(ctx context.Context, sessionID, mode string, lines []models.CartLine, details models.OrderDetails) (models.CheckoutLink, error) {
	link, err := s.Link(mode, lines, details)
	if err != nil {
		return models.CheckoutLink{}, err
	}

	event := models.CheckoutEvent{
		SessionID: sessionID,
		Mode:      mode,
		Lines:     len(lines),
		Items:     link.Items,
		Total:     link.Total,
		CreatedAt: s.now().UTC(),
	}
	// the link is returned even when the event is lost
	if err := s.emitter.Emit(ctx, mq.EventCheckoutInitiated, event); err != nil {
		s.log.Warn("checkout event not delivered", zap.String("mode", mode), zap.Error(err))
	}

	s.log.Info("checkout link generated",
		zap.String("mode", mode),
		zap.Int("items", link.Items),
		zap.String("total", link.Total.StringFixed(2)))
	return link, nil
}
