// Package document implements the nested field store an appraisal review
// operates on: path-addressed reads, copy-on-write writes, and the
// one-level deep merge used when extraction results arrive.
package document

import (
	"strings"

	"github.com/reviewdesk/appraisalint/internal/model"
)

// Get returns the value at path, or nil when any segment is absent.
func Get(doc model.Document, path model.FieldPath) any {
	if len(path) == 0 {
		return nil
	}
	var current any = map[string]any(doc)
	for _, seg := range path {
		m, ok := current.(map[string]any)
		if !ok {
			if d, isDoc := current.(model.Document); isDoc {
				m = map[string]any(d)
			} else {
				return nil
			}
		}
		current = m[seg]
		if current == nil {
			return nil
		}
	}
	return current
}

// GetString returns the string value at path; non-string and missing
// leaves read as "".
func GetString(doc model.Document, path ...string) string {
	v := Get(doc, model.FieldPath(path))
	s, _ := v.(string)
	return s
}

// Section returns the nested mapping stored under key, or nil.
func Section(doc model.Document, key string) map[string]any {
	switch v := doc[key].(type) {
	case map[string]any:
		return v
	case model.Document:
		return map[string]any(v)
	default:
		return nil
	}
}

// Set returns a new document with value stored at path. Only the nodes
// along path are copied; siblings are shared with the input, and the
// caller's document is never mutated. Missing intermediate mappings are
// created along the way.
func Set(doc model.Document, path model.FieldPath, value any) model.Document {
	if len(path) == 0 {
		return doc
	}
	return model.Document(setIn(map[string]any(doc), path, value))
}

func setIn(m map[string]any, path model.FieldPath, value any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if len(path) == 1 {
		out[path[0]] = value
		return out
	}
	child, _ := out[path[0]].(map[string]any)
	if child == nil {
		if d, ok := out[path[0]].(model.Document); ok {
			child = map[string]any(d)
		} else {
			child = map[string]any{}
		}
	}
	out[path[0]] = setIn(child, path[1:], value)
	return out
}

// Merge folds an extracted fields subtree into the document and returns the
// result as a new document. Shallow keys overwrite; mapping-valued keys
// merge one level deep so a partial section extraction does not wipe the
// rest of the section. A top-level "SUBJECT" key (any casing) is normalized
// to the canonical Subject grid column.
func Merge(doc model.Document, fields map[string]any) model.Document {
	out := make(model.Document, len(doc)+len(fields))
	for k, v := range doc {
		out[k] = v
	}
	for k, v := range fields {
		key := k
		if strings.EqualFold(k, model.SectionSubject) {
			key = model.SectionSubject
		}
		incoming, ok := v.(map[string]any)
		if !ok {
			out[key] = v
			continue
		}
		existing := Section(out, key)
		merged := make(map[string]any, len(existing)+len(incoming))
		for ek, ev := range existing {
			merged[ek] = ev
		}
		for ik, iv := range incoming {
			merged[ik] = iv
		}
		out[key] = merged
	}
	return out
}
