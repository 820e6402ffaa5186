package domain

import (
	"encoding/json"
	"fmt"
)

// Decoders for records that arrive untyped, e.g. from json.Decoder with UseNumber
// or yaml.Unmarshal into an interface{}. Shape problems are TypeErrors; value
// problems are RangeErrors.

// DecodeRecords decodes each element of a list with decode.
func DecodeRecords[T any](field string, raw any, decode func(any) (T, error)) ([]T, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, NewTypeError(field, "expected iterable", raw)
	}
	out := make([]T, 0, len(list))
	for i, el := range list {
		r, err := decode(el)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// DecodeCatalogRecord decodes a {sku, description, price} object.
func DecodeCatalogRecord(raw any) (CatalogRecord, error) {
	m, ok := asRecord(raw)
	if !ok {
		return CatalogRecord{}, NewTypeError("record", "CatalogRecord expected", raw)
	}
	sku, ok := m["sku"].(string)
	if !ok {
		return CatalogRecord{}, NewTypeError("sku", "must be a string", m["sku"])
	}
	desc, ok := m["description"].(string)
	if !ok {
		return CatalogRecord{}, NewTypeError("description", "must be a string", m["description"])
	}
	price, err := asNumber("price", m["price"])
	if err != nil {
		return CatalogRecord{}, err
	}
	r := CatalogRecord{SKU: sku, Description: desc, Price: price}
	if _, err := r.catalogItem(); err != nil {
		return CatalogRecord{}, err
	}
	return r, nil
}

// DecodeInventoryRecord decodes a {sku, stock} object.
func DecodeInventoryRecord(raw any) (InventoryRecord, error) {
	m, ok := asRecord(raw)
	if !ok {
		return InventoryRecord{}, NewTypeError("record", "InventoryRecord expected", raw)
	}
	s, err := ParseSKU(m["sku"])
	if err != nil {
		return InventoryRecord{}, err
	}
	q, err := ParseQuantity(m["stock"])
	if err != nil {
		return InventoryRecord{}, err
	}
	return InventoryRecord{SKU: s.Code(), Stock: q.Value()}, nil
}

func asRecord(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	}
	return nil, false
}

func asNumber(field string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, NewTypeError(field, "must be a real number", v)
		}
		return f, nil
	}
	return 0, NewTypeError(field, "must be a real number", v)
}
