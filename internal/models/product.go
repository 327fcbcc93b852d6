package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductImage — одна картинка товара в конкретном цвете
type ProductImage struct {
	ImagePath string `json:"image_path"`
	ImageAlt  string `json:"image_alt"`
	Color     string `json:"color"`
}

// Product — запись каталога (shop.json или нормализованная запись Strapi)
type Product struct {
	ID              string         `json:"id,omitempty"`
	Source          string         `json:"_cms_source,omitempty"`
	ExternalID      string         `json:"external_id,omitempty"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Keywords        StringList     `json:"keywords"`
	Desc            string         `json:"desc"`
	Description     RichText       `json:"description"`
	Price           FlexString     `json:"price"`
	Sizes           StringList     `json:"Sizes"`
	ExtendedSizes   StringList     `json:"extended_sizes"`
	ExtendedMOQ     FlexString     `json:"extended_moq"`
	ImagePath       string         `json:"image_path"`
	ImageAlt        string         `json:"image_alt"`
	Images          []ProductImage `json:"images"`
	Decorations     StringList     `json:"decorations"`
	Instructions    StringList     `json:"instructions"`
	ProductDetails  StringList     `json:"product_details"`
	DeliveryTime    FlexString     `json:"delivery_time"`
	Discount        FlexString     `json:"discount"`
	ColorsAvailable FlexString     `json:"colors_available"`
	CustomColor     FlexString     `json:"custom_color"`
}

// DisplayName — имя для витрины: у записей без имени показываем "Product <id>".
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "Product " + p.ID
}

// Catalog — товары по id в порядке, в котором они пришли (порядок ключей shop.json важен для витрины).
type Catalog struct {
	order []string
	byID  map[string]*Product
}

func NewCatalog() *Catalog {
	return &Catalog{byID: map[string]*Product{}}
}

// Put добавляет товар; повторный id заменяет запись, но сохраняет её позицию.
func (c *Catalog) Put(p Product) {
	if c.byID == nil {
		c.byID = map[string]*Product{}
	}
	if _, ok := c.byID[p.ID]; !ok {
		c.order = append(c.order, p.ID)
	}
	cp := p
	c.byID[p.ID] = &cp
}

// Get возвращает копию товара.
func (c *Catalog) Get(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	p, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Products — все товары по порядку.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// UnmarshalJSON читает объект {"id": {...}} потоково, чтобы не потерять порядок ключей.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	*c = Catalog{byID: map[string]*Product{}}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, _ := tok.(string)
		var p Product
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("catalog: product %q: %w", id, err)
		}
		p.ID = id
		c.Put(p)
	}
	_, err = dec.Token()
	return err
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
