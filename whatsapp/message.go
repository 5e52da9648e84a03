// Package whatsapp turns a cart into an order message and a wa.me link
// that opens a chat with the shop, the message already typed in.
package whatsapp

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shoaib/models"
	"shoaib/utils"
)

const shippingPlaceholder = "[Please provide your shipping address]"

// Formatter builds order messages. It holds no state beyond its settings.
type Formatter struct {
	ShopName string
	Currency string
}

func NewFormatter(shopName, currency string) Formatter {
	return Formatter{ShopName: shopName, Currency: currency}
}

func (f Formatter) price(d decimal.Decimal) string {
	return utils.FormatPrice(f.Currency, d)
}

// FormatOrderMessage is the detailed checkout message: a numbered item list
// in cart order, the total, and the customer fields that were given.
func (f Formatter) FormatOrderMessage(lines []models.CartLine, total decimal.Decimal, details models.OrderDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from %s*\n\n", f.ShopName)
	b.WriteString("*Order Details:*\n")
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s x%d - %s", i+1, l.Product.Name, l.Quantity, f.price(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\n\n*Total: %s*\n\n", f.price(total))

	if name := strings.TrimSpace(details.CustomerName); name != "" {
		fmt.Fprintf(&b, "*Customer:* %s\n", name)
	}
	if addr := strings.TrimSpace(details.ShippingAddress); addr != "" {
		fmt.Fprintf(&b, "*Shipping Address:* %s\n", addr)
	}

	b.WriteString("\n---\nPlease confirm this order and provide payment details.")
	return b.String()
}

// QuickOrderMessage is the one-paragraph variant used by quick checkout and
// buy-now. The recipient is asked to supply shipping details.
func (f Formatter) QuickOrderMessage(lines []models.CartLine, total decimal.Decimal) string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, fmt.Sprintf("%s (x%d)", l.Product.Name, l.Quantity))
	}
	return fmt.Sprintf("Hello %s, I would like to order: %s. Total: %s. My shipping details are: %s",
		f.ShopName, strings.Join(names, ", "), f.price(total), shippingPlaceholder)
}
