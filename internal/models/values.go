package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString принимает и строку, и число: цена в CMS бывает числом.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*f = FlexString(Stringify(v))
	return nil
}

func (f FlexString) String() string { return string(f) }

// StringList — массив строк; строка через запятую тоже считается списком, всё прочее — пустой список.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*l = ToStringList(v)
	return nil
}

// ToStringList приводит произвольное JSON-значение к списку строк.
func ToStringList(v any) StringList {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make(StringList, 0, len(t))
		for _, item := range t {
			if item == nil {
				continue
			}
			out = append(out, Stringify(item))
		}
		return out
	case string:
		var out StringList
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	case map[string]any:
		return nil
	default:
		return StringList{Stringify(t)}
	}
}

// Stringify — строковое представление скаляра из JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

// RichText — описание: либо обычная строка, либо список блоков Strapi.
type RichText struct {
	Blocks bool
	Text   string
}

// RichTextFrom разбирает значение: строка как есть, список блоков — текст всех children через пробел.
func RichTextFrom(v any) RichText {
	switch t := v.(type) {
	case string:
		return RichText{Text: t}
	case []any:
		var chunks []string
		for _, block := range t {
			b, ok := block.(map[string]any)
			if !ok {
				continue
			}
			children, ok := b["children"].([]any)
			if !ok {
				continue
			}
			for _, child := range children {
				ch, ok := child.(map[string]any)
				if !ok {
					continue
				}
				if text := Stringify(ch["text"]); text != "" {
					chunks = append(chunks, text)
				}
			}
		}
		return RichText{Blocks: true, Text: strings.TrimSpace(strings.Join(chunks, " "))}
	default:
		return RichText{}
	}
}

func (r *RichText) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*r = RichTextFrom(v)
	return nil
}

func (r RichText) MarshalJSON() ([]byte, error) { return json.Marshal(r.Text) }

func (r RichText) String() string { return r.Text }
