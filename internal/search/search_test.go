package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func testCatalog() *models.Catalog {
	c := models.NewCatalog()
	c.Put(models.Product{ID: "M1", Name: "Classic Hoodie", Category: "Men", Desc: "Fleece hoodie", Price: "$40", ImagePath: "images/m1.png"})
	c.Put(models.Product{ID: "W1", Name: "Crop Top", Category: "Women", Desc: "Summer top", Keywords: models.StringList{"hoodie-free"}})
	c.Put(models.Product{ID: "K1", Name: "Kids Hoodie", Category: "Kids", Desc: "Small hoodie", ImagePath: "https://cdn.example.com/k1.png"})
	return c
}

func TestRun_ShortQueriesAreEmpty(t *testing.T) {
	c := testCatalog()
	for _, q := range []string{"", "a", "  h  "} {
		res := Run(c, q, "1")
		assert.NotNil(t, res)
		assert.Empty(t, res, "query %q", q)
	}
}

func TestRun_MatchesNameDescKeywordsInOrder(t *testing.T) {
	res := Run(testCatalog(), "HOODIE", "")
	require.Len(t, res, 3)
	assert.Equal(t, []string{"M1", "W1", "K1"}, []string{res[0].ID, res[1].ID, res[2].ID})

	assert.Equal(t, "/static/images/m1.png", res[0].Image)
	assert.Equal(t, "/static/images/logo.png", res[1].Image)
	assert.Equal(t, "https://cdn.example.com/k1.png", res[2].Image)
	assert.Equal(t, "/shop-details?id=M1", res[0].URL)
	assert.Equal(t, "$40", res[0].Price)
}

func TestRun_CategoryFilter(t *testing.T) {
	c := testCatalog()

	res := Run(c, "hoodie", "4")
	require.Len(t, res, 1)
	assert.Equal(t, "K1", res[0].ID)

	// "women" contains "men"
	res = Run(c, "hoodie", "2")
	assert.Len(t, res, 2)

	assert.Len(t, Run(c, "hoodie", "1"), 3)
	assert.Len(t, Run(c, "hoodie", "99"), 3, "unknown category means no filter")
}

func TestRun_CapsAtEight(t *testing.T) {
	c := models.NewCatalog()
	for i := 0; i < 20; i++ {
		c.Put(models.Product{ID: fmt.Sprint(i), Name: "Tee"})
	}
	res := Run(c, "tee", "")
	require.Len(t, res, MaxResults)
	assert.Equal(t, "7", res[7].ID)
}

func TestRun_TruncatesDesc(t *testing.T) {
	c := models.NewCatalog()
	c.Put(models.Product{ID: "L", Name: "Long", Desc: strings.Repeat("é", 150)})

	res := Run(c, "long", "")
	require.Len(t, res, 1)
	assert.Equal(t, strings.Repeat("é", 100)+"...", res[0].Desc)
}

func TestRun_NilCatalog(t *testing.T) {
	assert.Empty(t, Run(nil, "tee", ""))
}

func TestRun_UnnamedProductGetsDisplayName(t *testing.T) {
	c := models.NewCatalog()
	c.Put(models.Product{ID: "X9", Desc: "blue tee"})

	res := Run(c, "blue", "1")
	require.Len(t, res, 1)
	assert.Equal(t, "Product X9", res[0].Name)
}
