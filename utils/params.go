package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shoaib/catalog"
)

// ParseSearchQuery reads the listing filters from the query string:
// q, category, min, max and sort. Unparseable bounds are ignored.
func ParseSearchQuery(r *http.Request) catalog.Query {
	q := r.URL.Query()

	return catalog.Query{
		Text:     strings.TrimSpace(q.Get("q")),
		Category: string(catalog.ParseCategory(q.Get("category"))),
		MinPrice: parseBound(q.Get("min")),
		MaxPrice: parseBound(q.Get("max")),
		Sort:     catalog.ParseSort(q.Get("sort")),
	}
}

func parseBound(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseIntParam returns the integer query value for key, or def when it is
// missing or malformed.
func ParseIntParam(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
