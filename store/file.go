package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"shopcart/domain"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSeedSource reads a seed from a JSON, NDJSON or YAML file. The format is
// chosen by extension.
type FileSeedSource struct {
	path string
}

// compile-time assertion
var _ SeedSource = (*FileSeedSource)(nil)

// NewFileSeedSource constructs a FileSeedSource for path.
func NewFileSeedSource(path string) (*FileSeedSource, error) {
	switch formatOf(path) {
	case "json", "ndjson", "yaml":
	default:
		return nil, fmt.Errorf("unsupported seed file extension: %s", filepath.Ext(path))
	}
	return &FileSeedSource{path: path}, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".ndjson", ".jsonl":
		return "ndjson"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

func (s *FileSeedSource) Load(ctx context.Context) (*Seed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", s.path, err)
	}
	return ParseSeed(formatOf(s.path), b)
}

// ParseSeed decodes seed data in the given format ("json", "ndjson" or "yaml").
// An empty document is an empty seed.
func ParseSeed(format string, b []byte) (*Seed, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return &Seed{}, nil
	}
	switch format {
	case "json":
		raw, err := decodeJSON(b)
		if err != nil {
			return nil, err
		}
		return seedFromDocument(raw)
	case "yaml":
		var raw any
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
		}
		return seedFromDocument(raw)
	case "ndjson":
		return parseNDJSON(b)
	default:
		return nil, fmt.Errorf("unknown seed format: %q", format)
	}
}

// decodeJSON keeps numbers as json.Number so 10 and 10.0 stay distinguishable.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to parse seed JSON: unexpected data after the document")
	}
	return raw, nil
}

func seedFromDocument(raw any) (*Seed, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, domain.NewTypeError("seed", "expected an object with catalogue and inventory", raw)
	}
	seed := &Seed{}
	if v, ok := doc["catalogue"]; ok && v != nil {
		recs, err := domain.DecodeRecords("catalogue", v, domain.DecodeCatalogRecord)
		if err != nil {
			return nil, err
		}
		seed.Catalogue = recs
	}
	if v, ok := doc["inventory"]; ok && v != nil {
		recs, err := domain.DecodeRecords("inventory", v, domain.DecodeInventoryRecord)
		if err != nil {
			return nil, err
		}
		seed.Inventory = recs
	}
	return seed, nil
}

// parseNDJSON reads one record per line. Catalogue records carry a price,
// inventory records carry a stock.
func parseNDJSON(b []byte) (*Seed, error) {
	seed := &Seed{}
	scanner := bufio.NewScanner(bytes.NewReader(b))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		raw, err := decodeJSON(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("line %d: %w", lineNo, domain.NewTypeError("record", "expected an object", raw))
		}
		_, hasPrice := m["price"]
		_, hasStock := m["stock"]
		switch {
		case hasPrice && !hasStock:
			r, err := domain.DecodeCatalogRecord(m)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			seed.Catalogue = append(seed.Catalogue, r)
		case hasStock && !hasPrice:
			r, err := domain.DecodeInventoryRecord(m)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			seed.Inventory = append(seed.Inventory, r)
		default:
			return nil, fmt.Errorf("line %d: %w", lineNo, domain.NewTypeError("record", "unrecognized record shape", string(line)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seed, nil
}
