package analyzer

import (
	"strings"

	"github.com/itchyny/gojq"

	"github.com/crmarques/driftscan/faults"
	"github.com/crmarques/driftscan/resource"
)

// CompareRules reshape both sides of a comparison before diffing. Identity
// resolution is unaffected; only the diffed payloads change.
type CompareRules struct {
	// IgnoreAttributes removes top-level attributes by name.
	IgnoreAttributes []string
	// SuppressAttributes removes nested attributes by dotted path.
	SuppressAttributes []string
	// JQExpression, when set, replaces the payload with the expression's
	// output. Applied after ignore and suppress rules.
	JQExpression string
}

func (r *CompareRules) IsZero() bool {
	return r == nil ||
		(len(r.IgnoreAttributes) == 0 && len(r.SuppressAttributes) == 0 && strings.TrimSpace(r.JQExpression) == "")
}

func (r *CompareRules) Apply(res resource.Resource) (resource.Resource, error) {
	if r.IsZero() {
		return res, nil
	}

	current := res.Clone()

	if obj, ok := current.AsObject(); ok {
		for _, attr := range r.IgnoreAttributes {
			key := strings.TrimSpace(attr)
			if key == "" {
				continue
			}
			delete(obj, key)
		}
		for _, attr := range r.SuppressAttributes {
			suppressAttribute(obj, strings.Split(strings.TrimSpace(attr), "."))
		}
		current.V = obj
	}

	if expr := strings.TrimSpace(r.JQExpression); expr != "" {
		value, err := executeJQ(current.V, expr)
		if err != nil {
			return resource.Resource{}, faults.NewTypedError(faults.ValidationError, "compare jq expression failed", err)
		}
		return resource.NewResource(value)
	}

	return current, nil
}

func suppressAttribute(obj map[string]any, segments []string) {
	if len(segments) == 0 || segments[0] == "" {
		return
	}
	if len(segments) == 1 {
		delete(obj, segments[0])
		return
	}

	child, ok := obj[segments[0]].(map[string]any)
	if !ok {
		return
	}
	suppressAttribute(child, segments[1:])
}

func executeJQ(input any, expression string) (any, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, err
	}
	iter := query.Run(input)

	var results []any
	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := value.(error); ok {
			return nil, err
		}
		results = append(results, value)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}
