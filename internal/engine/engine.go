// Package engine dispatches field edits across the ordered rule catalogue
// and reduces the outcomes to a single verdict per field.
package engine

import (
	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/model"
	"github.com/reviewdesk/appraisalint/internal/rules"
)

// Engine evaluates candidate field values against a fixed rule catalogue.
// It is stateless after construction and safe for concurrent use: rules are
// pure and the document snapshot is read-only.
type Engine struct {
	catalogue []rules.Rule
}

// New returns an engine over the default catalogue.
func New() *Engine {
	return &Engine{catalogue: rules.Catalogue()}
}

// NewWithRules returns an engine over an explicit ordered rule list.
func NewWithRules(list []rules.Rule) *Engine {
	return &Engine{catalogue: list}
}

// Evaluate runs the catalogue in order against one (field, value, snapshot)
// triple. The first rule reporting a violation decides the verdict and
// later rules are not consulted. With no violation, any rule match yields
// Match and silence yields NoOpinion. Evaluate never mutates doc and never
// fails: indeterminate data degrades to NoOpinion.
func (e *Engine) Evaluate(field, value string, doc model.Document, path model.FieldPath) model.Verdict {
	in := rules.Input{
		Field:   field,
		Value:   value,
		Doc:     doc,
		Path:    path,
		CompKey: model.ComparableKeyOf(path),
	}

	anyMatch := false
	for _, r := range e.catalogue {
		out := r.Check(in)
		if out == nil {
			continue
		}
		if out.Error {
			return model.Errorf("%s", out.Message)
		}
		if out.Match {
			anyMatch = true
		}
	}
	if anyMatch {
		return model.Match()
	}
	return model.NoOpinion()
}

// EvaluatePath evaluates the value currently stored at path.
func (e *Engine) EvaluatePath(doc model.Document, path model.FieldPath) model.Verdict {
	return e.Evaluate(path.Field(), document.GetString(doc, path...), doc, path)
}
