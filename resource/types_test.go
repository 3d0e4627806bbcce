package resource

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResourceJSONRoundTrip(t *testing.T) {
	t.Parallel()

	res, err := NewResource(map[string]any{"id": "a1", "size": 10})
	if err != nil {
		t.Fatalf("NewResource: %v", err)
	}

	encoded, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Resource
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(res.V, decoded.V) {
		t.Fatalf("expected %#v, got %#v", res.V, decoded.V)
	}
}

func TestEmptyObjectMarshalsAsEmptyMapping(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal(EmptyObject())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != "{}" {
		t.Fatalf("expected {}, got %s", encoded)
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	res, err := NewResource(map[string]any{"cfg": map[string]any{"port": 80}, "tags": []any{"a"}})
	if err != nil {
		t.Fatalf("NewResource: %v", err)
	}

	cloned := res.Clone()
	obj, _ := cloned.AsObject()
	obj["cfg"].(map[string]any)["port"] = int64(443)
	obj["tags"].([]any)[0] = "b"

	original, _ := res.AsObject()
	if original["cfg"].(map[string]any)["port"] != int64(80) {
		t.Fatalf("clone mutated the original map: %#v", original)
	}
	if original["tags"].([]any)[0] != "a" {
		t.Fatalf("clone mutated the original list: %#v", original)
	}
}

func TestScalarKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input any
		want  string
		ok    bool
	}{
		{"web", "web", true},
		{int64(42), "42", true},
		{float64(42), "42", true},
		{true, "true", true},
		{nil, "", false},
		{map[string]any{}, "", false},
		{[]any{}, "", false},
	}

	for _, testCase := range cases {
		got, ok := ScalarKey(testCase.input)
		if got != testCase.want || ok != testCase.ok {
			t.Fatalf("ScalarKey(%#v) = (%#v, %#v), expected (%#v, %#v)",
				testCase.input, got, ok, testCase.want, testCase.ok)
		}
	}
}
