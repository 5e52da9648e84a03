package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoaib/models"
)

var lines = []models.CartLine{
	{Product: models.Product{ID: "royal-red-bridal", Name: "Royal Red Bridal Lehenga", Price: decimal.NewFromInt(85000)}, Quantity: 1},
	{Product: models.Product{ID: "pink-reception", Name: "Blush Pink Reception Lehenga", Price: decimal.NewFromInt(65000)}, Quantity: 2},
}

var total = decimal.NewFromInt(215000)

func TestFormatOrderMessage(t *testing.T) {
	f := NewFormatter("Shoaib", "₹")

	got := f.FormatOrderMessage(lines, total, models.OrderDetails{
		CustomerName:    "Ayesha",
		ShippingAddress: "12 Park Street, Kolkata",
	})

	want := "🛒 *New Order from Shoaib*\n\n" +
		"*Order Details:*\n" +
		"1. Royal Red Bridal Lehenga x1 - ₹85000.00\n" +
		"2. Blush Pink Reception Lehenga x2 - ₹130000.00\n\n" +
		"*Total: ₹215000.00*\n\n" +
		"*Customer:* Ayesha\n" +
		"*Shipping Address:* 12 Park Street, Kolkata\n" +
		"\n---\nPlease confirm this order and provide payment details."
	assert.Equal(t, want, got)
}

func TestFormatOrderMessageOmitsBlankCustomerFields(t *testing.T) {
	f := NewFormatter("Shoaib", "₹")

	got := f.FormatOrderMessage(lines[:1], decimal.NewFromInt(85000), models.OrderDetails{CustomerName: "  "})

	assert.NotContains(t, got, "*Customer:*")
	assert.NotContains(t, got, "*Shipping Address:*")
	assert.Contains(t, got, "*Total: ₹85000.00*\n\n\n---")
}

func TestFormatOrderMessageEmptyCart(t *testing.T) {
	f := NewFormatter("Shoaib", "₹")

	got := f.FormatOrderMessage(nil, decimal.Zero, models.OrderDetails{})

	assert.Contains(t, got, "*Order Details:*\n\n\n*Total: ₹0.00*")
}

func TestQuickOrderMessage(t *testing.T) {
	f := NewFormatter("Shoaib", "₹")

	got := f.QuickOrderMessage(lines, total)

	assert.Equal(t,
		"Hello Shoaib, I would like to order: Royal Red Bridal Lehenga (x1), Blush Pink Reception Lehenga (x2). "+
			"Total: ₹215000.00. My shipping details are: [Please provide your shipping address]",
		got)
	assert.Contains(t, got, "215000.00")
}

func TestQuickOrderMessageEmptyCart(t *testing.T) {
	got := NewFormatter("Shoaib", "₹").QuickOrderMessage(nil, decimal.Zero)
	assert.Contains(t, got, "I would like to order: . Total: ₹0.00.")
}

func TestNewLinkerValidatesNumber(t *testing.T) {
	for _, bad := range []string{"", "+911234567890", "91 12345", "91-12345", "९१"} {
		_, err := NewLinker(bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, bad)
	}

	l, err := NewLinker("911234567890")
	require.NoError(t, err)
	assert.Equal(t, "911234567890", l.Number())
}

func TestBuildDeepLinkRoundTrips(t *testing.T) {
	l, err := NewLinker("1234567890")
	require.NoError(t, err)

	messages := []string{
		"Hello, Shoaib! Total: $100.00\n— end —",
		"a+b=c & d?e#f/g%h",
		"🛒 *New Order*\n\n1. Lehenga x1 - ₹85000.00",
		"",
	}
	for _, msg := range messages {
		link := l.BuildDeepLink(msg)

		require.True(t, strings.HasPrefix(link, "https://wa.me/1234567890?text="))
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, msg, u.Query().Get("text"))

		raw := strings.TrimPrefix(link, "https://wa.me/1234567890?text=")
		decoded, err := url.PathUnescape(raw)
		require.NoError(t, err)
		assert.Equal(t, msg, decoded)
	}
}

func TestBuildDeepLinkEncoding(t *testing.T) {
	l, err := NewLinker("1234567890")
	require.NoError(t, err)

	link := l.BuildDeepLink("a b+c\n&")

	assert.Equal(t, "https://wa.me/1234567890?text=a%20b%2Bc%0A%26", link)
	assert.NotContains(t, strings.TrimPrefix(link, BaseURL), " ")
}
