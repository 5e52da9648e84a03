package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// BaseURL is the click-to-chat endpoint.
const BaseURL = "https://wa.me/"

var ErrInvalidNumber = errors.New("whatsapp number must be digits only, country code first")

// Linker builds deep links to one destination number.
type Linker struct {
	number string
}

// NewLinker validates number: digits only, no "+", spaces or dashes.
func NewLinker(number string) (*Linker, error) {
	if number == "" {
		return nil, fmt.Errorf("empty number: %w", ErrInvalidNumber)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%q: %w", number, ErrInvalidNumber)
		}
	}
	return &Linker{number: number}, nil
}

func (l *Linker) Number() string {
	return l.number
}

// BuildDeepLink returns https://wa.me/<number>?text=<message>, with the
// message percent-encoded as UTF-8. Spaces become %20 rather than "+".
func (l *Linker) BuildDeepLink(message string) string {
	return BaseURL + l.number + "?text=" + encodeComponent(message)
}

// encodeComponent escapes everything outside the unreserved set. QueryEscape
// already turns a literal "+" into %2B, so any "+" left stands for a space.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
