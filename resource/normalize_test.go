package resource

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/crmarques/driftscan/faults"
)

func TestNormalizeCanonicalScalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  any
	}{
		{"int", 7, int64(7)},
		{"uint", uint(7), int64(7)},
		{"integral float", 10.0, int64(10)},
		{"fractional float", 10.5, 10.5},
		{"json number int", json.Number("42"), int64(42)},
		{"json number float", json.Number("42.5"), 42.5},
		{"bool", true, true},
		{"string", "x", "x"},
		{"nil", nil, nil},
	}

	for _, testCase := range cases {
		got, err := Normalize(testCase.input)
		if err != nil {
			t.Fatalf("%s: Normalize: %v", testCase.name, err)
		}
		if !reflect.DeepEqual(got, testCase.want) {
			t.Fatalf("%s: expected %#v, got %#v", testCase.name, testCase.want, got)
		}
	}
}

func TestNormalizeNestedStructures(t *testing.T) {
	t.Parallel()

	got, err := Normalize(map[string]any{
		"tags": []any{1, "two", 3.0},
		"cfg":  map[string]any{"port": json.Number("80")},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := map[string]any{
		"tags": []any{int64(1), "two", int64(3)},
		"cfg":  map[string]any{"port": int64(80)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestNormalizeYAMLStyleMaps(t *testing.T) {
	t.Parallel()

	got, err := Normalize(map[any]any{"key": "value"})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := map[string]any{"key": "value"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestNormalizeRejectsNonStringMapKeys(t *testing.T) {
	t.Parallel()

	_, err := Normalize(map[any]any{1: "value"})
	if !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error, got %#v", err)
	}
}

func TestNormalizeRejectsNonDataTypes(t *testing.T) {
	t.Parallel()

	_, err := Normalize(func() {})
	if !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for non-data payload, got %#v", err)
	}
}
