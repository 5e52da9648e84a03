package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoaib/models"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func product(id string, category models.Category, price int64) models.Product {
	return models.Product{ID: id, Name: id, Category: category, Price: decimal.NewFromInt(price)}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c := defaultCatalog(t)
	assert.Equal(t, 12, c.Len())

	p, ok := c.FindByID("royal-red-bridal")
	require.True(t, ok)
	assert.Equal(t, "Royal Red Bridal Lehenga", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(85000)))
	assert.Equal(t, models.CategoryBridal, p.Category)
	assert.Len(t, p.Specs, 4)
}

func TestFindByIDMissing(t *testing.T) {
	c := defaultCatalog(t)

	_, ok := c.FindByID("no-such-lehenga")
	assert.False(t, ok)

	_, ok = c.FindByID("")
	assert.False(t, ok)
}

func TestFilterByCategory(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t,
		[]string{"royal-red-bridal", "golden-elegance", "maroon-maharani"},
		ids(c.FilterByCategory("bridal")))
	assert.Len(t, c.FilterByCategory("all"), 12)
	assert.Empty(t, c.FilterByCategory("haldi"))
	assert.Empty(t, c.FilterByCategory("Bridal"))
}

func TestFeatured(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, []string{
		"royal-red-bridal", "golden-elegance", "maroon-maharani",
		"pink-reception", "yellow-sunshine", "green-mehendi",
	}, ids(c.Featured()))
}

func TestRelated(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, []string{"golden-elegance", "maroon-maharani"}, ids(c.Related("royal-red-bridal", 4)))
	assert.Equal(t, []string{"champagne-dreams"}, ids(c.Related("pink-reception", 1)))
	assert.Empty(t, c.Related("missing", 4))
}

func TestNewRejectsBadProducts(t *testing.T) {
	_, err := New([]models.Product{
		product("a", models.CategoryBridal, 1),
		product("a", models.CategorySangeet, 2),
	})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = New([]models.Product{product("", models.CategoryBridal, 1)})
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = New([]models.Product{product("x", "haldi", 1)})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = New([]models.Product{product("x", models.CategoryMehendi, -1)})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{"id":`))
	assert.Error(t, err)
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	c := defaultCatalog(t)

	all := c.All()
	all[0] = models.Product{ID: "changed"}

	first := c.All()[0]
	assert.Equal(t, "royal-red-bridal", first.ID)
}

func TestSpecsDoNotAliasCatalog(t *testing.T) {
	c := defaultCatalog(t)

	p, ok := c.FindByID("royal-red-bridal")
	require.True(t, ok)
	want := p.Specs[0]
	p.Specs[0] = "changed"

	c.FilterByCategory("bridal")[0].Specs[0] = "changed"
	c.Featured()[0].Specs[0] = "changed"
	c.Search(Query{Text: "royal"})[0].Specs[0] = "changed"
	c.Related("golden-elegance", 4)[0].Specs[0] = "changed"

	again, _ := c.FindByID("royal-red-bridal")
	assert.Equal(t, want, again.Specs[0])
}

func TestNewCopiesSpecs(t *testing.T) {
	specs := []string{"Silk"}
	p := product("x", models.CategoryBridal, 1)
	p.Specs = specs
	c, err := New([]models.Product{p})
	require.NoError(t, err)

	specs[0] = "changed"
	got, _ := c.FindByID("x")
	assert.Equal(t, []string{"Silk"}, got.Specs)
}
