package db

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"shoaib/models"
)

func TestProductDocDecodes(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"id":          "mint-fresh",
		"name":        "Mint Fresh Collection",
		"description": "Refreshing mint green lehenga",
		"price":       "35000.50",
		"category":    "mehendi",
		"specs":       bson.A{"Chiffon Fabric"},
		"featured":    false,
		"stock":       12,
		"position":    10,
	})
	require.NoError(t, err)

	var doc productDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))

	p, err := doc.toProduct()
	require.NoError(t, err)
	assert.Equal(t, "mint-fresh", p.ID)
	assert.Equal(t, models.CategoryMehendi, p.Category)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("35000.5")))
	assert.Equal(t, []string{"Chiffon Fabric"}, p.Specs)
	assert.Equal(t, 12, p.Stock)
}

func priceValue(t *testing.T, v interface{}) bson.RawValue {
	t.Helper()
	raw, err := bson.Marshal(bson.M{"price": v})
	require.NoError(t, err)
	return bson.Raw(raw).Lookup("price")
}

func TestParsePriceEncodings(t *testing.T) {
	for _, v := range []interface{}{"85000", int32(85000), int64(85000), float64(85000)} {
		got, err := parsePrice(priceValue(t, v))
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(85000)), "%T", v)
	}

	_, err := parsePrice(priceValue(t, true))
	assert.Error(t, err)
}

func TestToProductsRejectsBadPrice(t *testing.T) {
	_, err := toProducts([]productDoc{
		{ID: "ok", Price: priceValue(t, "100")},
		{ID: "bad", Price: priceValue(t, "a lot")},
	})
	assert.ErrorContains(t, err, `product "bad"`)
}
