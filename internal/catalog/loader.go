// Package catalog loads and models the product catalog produced by the
// ingestion/merge batch job. The loader tolerates malformed entries: anything
// failing validation is logged and skipped, never fatal.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"quotation-engine/internal/common/logger"
)

// itemSchema is the minimum shape an entry must have to be usable. Everything
// beyond name degrades to empty substitutions downstream.
const itemSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1}
	},
	"required": ["name"]
}`

var compiledItemSchema = gojsonschema.NewStringLoader(itemSchema)

// Load reads a products JSON file. The file may hold either an object with a
// "products" key or a bare list of items.
func Load(path string, log logger.Logger) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	items, err := Parse(raw, log)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	log.Info("catalog loaded", map[string]interface{}{
		"path":  path,
		"items": len(items),
	})
	return items, nil
}

// Parse decodes catalog JSON from memory. Exposed separately for the merge
// job's output and for tests.
func Parse(raw []byte, log logger.Logger) ([]Item, error) {
	var rawItems []json.RawMessage

	var wrapper struct {
		Products []json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Products != nil {
		rawItems = wrapper.Products
	} else if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, fmt.Errorf("unexpected JSON structure: %w", err)
	}

	items := make([]Item, 0, len(rawItems))
	for idx, entry := range rawItems {
		result, err := gojsonschema.Validate(compiledItemSchema, gojsonschema.NewBytesLoader(entry))
		if err != nil || !result.Valid() {
			log.Warn("skipping malformed catalog entry", map[string]interface{}{
				"index":  idx,
				"errors": schemaErrors(result, err),
			})
			continue
		}

		var item Item
		if err := json.Unmarshal(entry, &item); err != nil {
			log.Warn("skipping undecodable catalog entry", map[string]interface{}{
				"index": idx,
				"error": err.Error(),
			})
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func schemaErrors(result *gojsonschema.Result, err error) []string {
	if err != nil {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		out = append(out, e.String())
	}
	return out
}
