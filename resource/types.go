package resource

import "encoding/json"

// Value is an arbitrary JSON-like structured value: a map[string]any, a
// []any, a scalar, or nil.
type Value = any

// Resource is one structured configuration record, observed or declared.
// The payload is normalized on construction so that shape dispatch during
// comparison only ever sees map[string]any, []any, or normalized scalars.
type Resource struct {
	V Value
}

func NewResource(value Value) (Resource, error) {
	normalized, err := Normalize(value)
	if err != nil {
		return Resource{}, err
	}
	return Resource{V: normalized}, nil
}

// EmptyObject is the explicit "no declared counterpart" marker used in report
// entries for missing resources.
func EmptyObject() Resource {
	return Resource{V: map[string]any{}}
}

func (r Resource) AsObject() (map[string]any, bool) {
	obj, ok := r.V.(map[string]any)
	return obj, ok
}

func (r Resource) AsList() ([]any, bool) {
	list, ok := r.V.([]any)
	return list, ok
}

func (r Resource) Clone() Resource {
	return Resource{V: CloneValue(r.V)}
}

// CloneValue deep-copies a normalized payload value.
func CloneValue(value Value) Value {
	switch typed := value.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(typed))
		for key, item := range typed {
			cloned[key] = CloneValue(item)
		}
		return cloned
	case []any:
		cloned := make([]any, len(typed))
		for idx, item := range typed {
			cloned[idx] = CloneValue(item)
		}
		return cloned
	default:
		return typed
	}
}

func (r Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.V)
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	normalized, err := Normalize(raw)
	if err != nil {
		return err
	}
	r.V = normalized
	return nil
}

func (r Resource) MarshalYAML() (any, error) {
	return r.V, nil
}

func (r *Resource) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	normalized, err := Normalize(raw)
	if err != nil {
		return err
	}
	r.V = normalized
	return nil
}
