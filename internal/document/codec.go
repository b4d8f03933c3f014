package document

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Parse decodes a JSON document tree. Leaves stay strings; the high/low/pred
// triples stay nested mappings, so Encode(Parse(b)) is lossless.
func Parse(data []byte) (model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// Encode serializes a document back to indented JSON.
func Encode(doc model.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Leaf is one addressable value of the document.
type Leaf struct {
	Path  model.FieldPath
	Value string
}

// Leaves enumerates every leaf of the document in deterministic key order.
// String leaves carry their value; triple-object leaves (high/low/pred) are
// carried with their compact JSON form, since rules that care about them
// read the document directly.
func Leaves(doc model.Document) []Leaf {
	var leaves []Leaf
	keys := sortedKeys(map[string]any(doc))
	for _, k := range keys {
		switch v := doc[k].(type) {
		case string:
			leaves = append(leaves, Leaf{Path: model.FieldPath{k}, Value: v})
		case map[string]any:
			if isTriple(v) {
				leaves = append(leaves, Leaf{Path: model.FieldPath{k}, Value: compactJSON(v)})
				continue
			}
			for _, fk := range sortedKeys(v) {
				switch fv := v[fk].(type) {
				case string:
					leaves = append(leaves, Leaf{Path: model.FieldPath{k, fk}, Value: fv})
				case map[string]any:
					leaves = append(leaves, Leaf{Path: model.FieldPath{k, fk}, Value: compactJSON(fv)})
				}
			}
		}
	}
	return leaves
}

// isTriple reports whether a mapping is a high/low/pred numeric triple
// rather than a section of named fields.
func isTriple(m map[string]any) bool {
	if len(m) != 3 {
		return false
	}
	for _, k := range []string{"high", "low", "pred"} {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
