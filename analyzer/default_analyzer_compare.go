package analyzer

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/crmarques/driftscan/resource"
)

// compareValues recursively diffs two values and returns one record per
// leaf-level or structural difference, in deterministic order: mapping keys
// sorted, sequence indices ascending.
func compareValues(observed resource.Value, declared resource.Value, path string) []ChangeRecord {
	changes := make([]ChangeRecord, 0)
	collectChanges(&changes, path, observed, declared)
	return changes
}

func collectChanges(changes *[]ChangeRecord, path string, observed any, declared any) {
	if reflect.DeepEqual(observed, declared) {
		return
	}

	observedObject, observedIsObject := observed.(map[string]any)
	declaredObject, declaredIsObject := declared.(map[string]any)
	if observedIsObject && declaredIsObject {
		keys := make([]string, 0, len(observedObject)+len(declaredObject))
		seen := make(map[string]struct{}, len(observedObject)+len(declaredObject))
		for key := range observedObject {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		for key := range declaredObject {
			if _, found := seen[key]; found {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			observedValue, observedFound := observedObject[key]
			declaredValue, declaredFound := declaredObject[key]

			switch {
			case !observedFound:
				appendChange(changes, childPath, nil, declaredValue)
			case !declaredFound:
				appendChange(changes, childPath, observedValue, nil)
			default:
				collectChanges(changes, childPath, observedValue, declaredValue)
			}
		}
		return
	}

	observedList, observedIsList := observed.([]any)
	declaredList, declaredIsList := declared.([]any)
	if observedIsList && declaredIsList {
		maxLength := len(observedList)
		if len(declaredList) > maxLength {
			maxLength = len(declaredList)
		}

		// Positional comparison: an insertion near the head of one side shows
		// up as differences at every subsequent index.
		for idx := 0; idx < maxLength; idx++ {
			childPath := path + "[" + strconv.Itoa(idx) + "]"

			switch {
			case idx >= len(observedList):
				appendChange(changes, childPath, nil, declaredList[idx])
			case idx >= len(declaredList):
				appendChange(changes, childPath, observedList[idx], nil)
			default:
				collectChanges(changes, childPath, observedList[idx], declaredList[idx])
			}
		}
		return
	}

	// Scalars, nils, and mismatched shapes: one leaf record, never expanded.
	appendChange(changes, path, observed, declared)
}

func appendChange(changes *[]ChangeRecord, path string, observed any, declared any) {
	*changes = append(*changes, ChangeRecord{
		Path:     path,
		Observed: observed,
		Declared: declared,
	})
}
