package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_PreservesKeyOrder(t *testing.T) {
	raw := `{
		"Z9": {"name": "Zed", "price": "$10"},
		"A1": {"name": "Ay", "price": 12.5},
		"M5": {"name": "Em", "Sizes": ["S", "M"]}
	}`

	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	require.Equal(t, 3, c.Len())
	var ids []string
	for _, p := range c.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"Z9", "A1", "M5"}, ids)

	a1, ok := c.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "12.5", a1.Price.String())

	m5, _ := c.Get("M5")
	assert.Equal(t, StringList{"S", "M"}, m5.Sizes)
}

func TestCatalog_PutReplaceKeepsPosition(t *testing.T) {
	c := NewCatalog()
	c.Put(Product{ID: "1", Name: "first"})
	c.Put(Product{ID: "2", Name: "second"})
	c.Put(Product{ID: "1", Name: "replaced"})

	products := c.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "replaced", products[0].Name)
	assert.Equal(t, "second", products[1].Name)
}

func TestProduct_DisplayName(t *testing.T) {
	assert.Equal(t, "Tee", Product{ID: "1", Name: "Tee"}.DisplayName())
	assert.Equal(t, "Product X9", Product{ID: "X9"}.DisplayName())
}

func TestCatalog_RejectsNonObject(t *testing.T) {
	var c Catalog
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &c))
}

func TestCatalog_RoundTripOrder(t *testing.T) {
	c := NewCatalog()
	c.Put(Product{ID: "b", Name: "B"})
	c.Put(Product{ID: "a", Name: "A"})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Catalog
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "b", back.Products()[0].ID)
}

func TestRichTextFrom(t *testing.T) {
	var blocks any
	require.NoError(t, json.Unmarshal([]byte(`[{"children":[{"text":"Hello"}]}, {"children":[{"text":"World"}]}]`), &blocks))

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "Just text", "Just text"},
		{"blocks", blocks, "Hello World"},
		{"nil", nil, ""},
		{"number", 42.0, ""},
		{"block without children", []any{map[string]any{"type": "paragraph"}}, ""},
		{"non-object blocks skipped", []any{"x", map[string]any{"children": []any{map[string]any{"text": " hi "}}}}, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RichTextFrom(tt.in).Text)
		})
	}
}

func TestProduct_DescriptionBlocks(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"description":[{"type":"paragraph","children":[{"type":"text","text":"Soft cotton"}]}]}`), &p))
	assert.True(t, p.Description.Blocks)
	assert.Equal(t, "Soft cotton", p.Description.String())
}

func TestToStringList(t *testing.T) {
	assert.Equal(t, StringList{"S", "M", "L"}, ToStringList("S, M ,,L"))
	assert.Equal(t, StringList{"1", "XL"}, ToStringList([]any{json.Number("1"), "XL", nil}))
	assert.Nil(t, ToStringList(map[string]any{"a": 1}))
	assert.Nil(t, ToStringList(nil))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "nope"))
}
