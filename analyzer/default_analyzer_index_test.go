package analyzer

import (
	"testing"

	"github.com/crmarques/driftscan/resource"
)

func mustResource(t *testing.T, value any) resource.Resource {
	t.Helper()
	res, err := resource.NewResource(value)
	if err != nil {
		t.Fatalf("NewResource: %v", err)
	}
	return res
}

func TestBuildIdentityIndexIndexesBothNamespaces(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "a1", "name": "web", "size": 10}),
	}

	index := buildIdentityIndex(declared, nil)

	if _, found := index.byID["a1"]; !found {
		t.Fatalf("expected id a1 in byID, got %#v", index.byID)
	}
	if _, found := index.byName["web"]; !found {
		t.Fatalf("expected name web in byName, got %#v", index.byName)
	}
}

func TestBuildIdentityIndexNamespacesAreDisjoint(t *testing.T) {
	t.Parallel()

	// The same literal used as an id on one resource and a name on another
	// must never collide.
	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "shared", "size": 1}),
		mustResource(t, map[string]any{"name": "shared", "size": 2}),
	}

	index := buildIdentityIndex(declared, nil)

	byID, _ := index.byID["shared"].AsObject()
	byName, _ := index.byName["shared"].AsObject()
	if byID["size"] != int64(1) {
		t.Fatalf("expected id entry to hold the first resource, got %#v", byID)
	}
	if byName["size"] != int64(2) {
		t.Fatalf("expected name entry to hold the second resource, got %#v", byName)
	}
}

func TestBuildIdentityIndexSyntheticKeyForAnonymousResources(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "a1"}),
		mustResource(t, map[string]any{"size": 10}),
	}

	index := buildIdentityIndex(declared, nil)

	if len(index.byID) != 2 {
		t.Fatalf("expected both resources reachable via byID, got %#v", index.byID)
	}
	anonymous, found := index.byID[syntheticKey(1)]
	if !found {
		t.Fatalf("expected synthetic key for position 1, got %#v", index.byID)
	}
	obj, _ := anonymous.AsObject()
	if obj["size"] != int64(10) {
		t.Fatalf("unexpected resource under synthetic key: %#v", obj)
	}
}

func TestBuildIdentityIndexLastWriteWinsEmitsEvents(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "dup", "rev": 1}),
		mustResource(t, map[string]any{"id": "dup", "rev": 2}),
		mustResource(t, map[string]any{"name": "dup-name", "rev": 3}),
		mustResource(t, map[string]any{"name": "dup-name", "rev": 4}),
	}

	var events []IndexEvent
	index := buildIdentityIndex(declared, func(event IndexEvent) {
		events = append(events, event)
	})

	winner, _ := index.byID["dup"].AsObject()
	if winner["rev"] != int64(2) {
		t.Fatalf("expected later resource to win byID, got %#v", winner)
	}
	namedWinner, _ := index.byName["dup-name"].AsObject()
	if namedWinner["rev"] != int64(4) {
		t.Fatalf("expected later resource to win byName, got %#v", namedWinner)
	}

	if len(events) != 2 {
		t.Fatalf("expected two duplicate events, got %#v", events)
	}
	if events[0].Kind != IndexEventDuplicateID || events[0].Key != "dup" || events[0].Position != 1 {
		t.Fatalf("unexpected first event: %#v", events[0])
	}
	if events[1].Kind != IndexEventDuplicateName || events[1].Key != "dup-name" || events[1].Position != 3 {
		t.Fatalf("unexpected second event: %#v", events[1])
	}
}

func TestResolveIDTakesPriorityOverName(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "a1", "name": "other", "rev": 1}),
		mustResource(t, map[string]any{"id": "b2", "name": "web", "rev": 2}),
	}
	index := buildIdentityIndex(declared, nil)

	// Observed shares its name with the second declared resource, but its id
	// matches the first; the id match must win.
	match, found := index.resolve(mustResource(t, map[string]any{"id": "a1", "name": "web"}))
	if !found {
		t.Fatalf("expected a match")
	}
	obj, _ := match.AsObject()
	if obj["rev"] != int64(1) {
		t.Fatalf("expected id match to win over name, got %#v", obj)
	}
}

func TestResolveFallsBackToNameWhenIDMisses(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": "b2", "name": "web", "rev": 2}),
	}
	index := buildIdentityIndex(declared, nil)

	match, found := index.resolve(mustResource(t, map[string]any{"id": "unknown", "name": "web"}))
	if !found {
		t.Fatalf("expected a name match after the id lookup missed")
	}
	obj, _ := match.AsObject()
	if obj["rev"] != int64(2) {
		t.Fatalf("unexpected match: %#v", obj)
	}
}

func TestResolveNoIdentityNeverMatches(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"size": 10}),
	}
	index := buildIdentityIndex(declared, nil)

	if _, found := index.resolve(mustResource(t, map[string]any{"size": 10})); found {
		t.Fatalf("resources without id and name must never match silently")
	}
}

func TestResolveNonScalarIdentityIsIgnored(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"name": "web"}),
	}
	index := buildIdentityIndex(declared, nil)

	observed := mustResource(t, map[string]any{"id": map[string]any{"nested": true}, "name": "web"})
	match, found := index.resolve(observed)
	if !found {
		t.Fatalf("expected structured id to be treated as absent")
	}
	obj, _ := match.AsObject()
	if obj["name"] != "web" {
		t.Fatalf("unexpected match: %#v", obj)
	}
}

func TestResolveNumericIdentityKeys(t *testing.T) {
	t.Parallel()

	declared := []resource.Resource{
		mustResource(t, map[string]any{"id": 42, "rev": 1}),
	}
	index := buildIdentityIndex(declared, nil)

	// Numeric ids normalize to the same key regardless of decoder type.
	match, found := index.resolve(mustResource(t, map[string]any{"id": float64(42)}))
	if !found {
		t.Fatalf("expected numeric id to match across decoder representations")
	}
	obj, _ := match.AsObject()
	if obj["rev"] != int64(1) {
		t.Fatalf("unexpected match: %#v", obj)
	}
}
