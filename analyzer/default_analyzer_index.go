package analyzer

import (
	"strconv"

	"github.com/crmarques/driftscan/resource"
)

const (
	idAttribute   = "id"
	nameAttribute = "name"

	// syntheticKeyPrefix contains NUL bytes, which never appear in string
	// identities decoded from JSON or YAML documents, so positional keys
	// cannot collide with real ids.
	syntheticKeyPrefix = "\x00idx\x00"
)

// identityIndex maps identity keys to declared resources. The two maps are
// separate namespaces: a value used as an id can never be confused with the
// same literal used as a name. The index is immutable after construction.
type identityIndex struct {
	byID   map[string]resource.Resource
	byName map[string]resource.Resource
}

// buildIdentityIndex makes a single pass over the declared list. Duplicate
// keys follow last-write-wins and emit an event; resources with neither
// identity attribute are indexed under a synthetic positional key so every
// declared resource stays reachable.
func buildIdentityIndex(declared []resource.Resource, emit func(IndexEvent)) identityIndex {
	index := identityIndex{
		byID:   make(map[string]resource.Resource, len(declared)),
		byName: make(map[string]resource.Resource),
	}

	for position, current := range declared {
		indexed := false

		if key, ok := identityKey(current, idAttribute); ok {
			if _, exists := index.byID[key]; exists && emit != nil {
				emit(IndexEvent{Kind: IndexEventDuplicateID, Key: key, Position: position})
			}
			index.byID[key] = current
			indexed = true
		}

		if key, ok := identityKey(current, nameAttribute); ok {
			if _, exists := index.byName[key]; exists && emit != nil {
				emit(IndexEvent{Kind: IndexEventDuplicateName, Key: key, Position: position})
			}
			index.byName[key] = current
			indexed = true
		}

		if !indexed {
			index.byID[syntheticKey(position)] = current
		}
	}

	return index
}

// resolve finds the declared counterpart for an observed resource. The id is
// tried first and wins outright on a hit; on a miss or an absent id the name
// is tried. A resource with neither attribute never matches.
func (idx identityIndex) resolve(observed resource.Resource) (resource.Resource, bool) {
	if key, ok := identityKey(observed, idAttribute); ok {
		if match, found := idx.byID[key]; found {
			return match, true
		}
	}

	if key, ok := identityKey(observed, nameAttribute); ok {
		if match, found := idx.byName[key]; found {
			return match, true
		}
	}

	return resource.Resource{}, false
}

func identityKey(res resource.Resource, attribute string) (string, bool) {
	obj, ok := res.AsObject()
	if !ok {
		return "", false
	}

	value, exists := obj[attribute]
	if !exists {
		return "", false
	}

	return resource.ScalarKey(value)
}

func syntheticKey(position int) string {
	return syntheticKeyPrefix + strconv.Itoa(position)
}
