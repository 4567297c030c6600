// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"testing"

	"github.com/plugorder/plugorder/pkg/manifest"
)

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func TestDependencyOrdersLoad(t *testing.T) {
	t.Parallel()

	core := desc(t, manifest.Manifest{ID: "core", Name: "Core", Version: "1.5.0"})
	addon := desc(t, manifest.Manifest{
		ID: "addon", Name: "Addon", Version: "9.0.0",
		Dependencies: map[string]string{"core": ">=1.0.0 <2.0.0"},
	})

	s := NewSession(nil)
	// addon has the higher version but must still load after core.
	s.Resolve([]*manifest.Descriptor{addon, core}, nil)

	got := identities(s.Accepted())
	if indexOf(got, "core") > indexOf(got, "addon") || indexOf(got, "addon") == -1 {
		t.Fatalf("accepted = %v, want core before addon", got)
	}
	if len(addon.ResolvedDeps) != 1 || addon.ResolvedDeps[0] != core {
		t.Errorf("ResolvedDeps = %v, want [core]", addon.ResolvedDeps)
	}
}

func TestLoadBeforeAndAfterHints(t *testing.T) {
	t.Parallel()

	early := desc(t, manifest.Manifest{
		ID: "early", Name: "Early", Version: "0.1.0",
		LoadBefore: []string{"mid"},
	})
	mid := desc(t, manifest.Manifest{ID: "mid", Name: "Mid", Version: "5.0.0"})
	late := desc(t, manifest.Manifest{
		ID: "late", Name: "Late", Version: "9.0.0",
		LoadAfter: []string{"mid"},
	})

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{mid, late, early}, nil)

	got := identities(s.Accepted())
	if len(got) != 3 {
		t.Fatalf("accepted = %v, want all three", got)
	}
	if indexOf(got, "early") > indexOf(got, "mid") {
		t.Errorf("loadBefore violated: %v", got)
	}
	if indexOf(got, "late") < indexOf(got, "mid") {
		t.Errorf("loadAfter violated: %v", got)
	}
}

func TestOrderingHintNamingAbsentIDIsInert(t *testing.T) {
	t.Parallel()

	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		LoadAfter:  []string{"nonexistent"},
		LoadBefore: []string{"also-nonexistent"},
	})

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a}, nil)

	if len(s.Accepted()) != 1 {
		t.Fatalf("hint to absent id must not force absence: %v", s.Reports())
	}
}

func TestMissingDependencyIgnored(t *testing.T) {
	t.Parallel()

	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		Dependencies: map[string]string{"b": ">=1.0.0"},
	})
	oldB := desc(t, manifest.Manifest{ID: "b", Name: "B", Version: "0.9.0"})

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a, oldB}, nil)

	got := identities(s.Accepted())
	if indexOf(got, "a") != -1 {
		t.Fatalf("a must not be accepted: %v", got)
	}
	if indexOf(got, "b") == -1 {
		t.Fatalf("b itself is fine: %v", got)
	}
	if !hasReport(s.Reports(), UnsatisfiedDependency, "a") {
		t.Errorf("missing UnsatisfiedDependency report: %v", s.Reports())
	}
	if indexOf(identities(s.Ignored()), "a") == -1 {
		t.Errorf("a must be ignored, not disabled: ignored=%v disabled=%v",
			identities(s.Ignored()), identities(s.Disabled()))
	}
}

func TestCascadeDisable(t *testing.T) {
	t.Parallel()

	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		Dependencies: map[string]string{"b": ">=1.0.0"},
	})
	b := desc(t, manifest.Manifest{ID: "b", Name: "B", Version: "1.0.0"})
	store := NewMemoryStore("b")

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a, b}, store)

	if indexOf(identities(s.Disabled()), "a") == -1 {
		t.Fatalf("a must be cascade-disabled: disabled=%v ignored=%v",
			identities(s.Disabled()), identities(s.Ignored()))
	}
	if len(store.Appended) != 1 || store.Appended[0] != "a" {
		t.Errorf("store must gain a's identity, appended = %v", store.Appended)
	}
	if !hasReport(s.Reports(), UnsatisfiedDependency, "a") {
		t.Errorf("cascade still reports UnsatisfiedDependency: %v", s.Reports())
	}
}

func TestCascadeChains(t *testing.T) {
	t.Parallel()

	// b is externally disabled; a needs b; c needs a. Both cascade.
	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		Dependencies: map[string]string{"b": ">=1.0.0"},
	})
	b := desc(t, manifest.Manifest{ID: "b", Name: "B", Version: "1.0.0"})
	c := desc(t, manifest.Manifest{
		ID: "c", Name: "C", Version: "1.0.0",
		Dependencies: map[string]string{"a": ">=1.0.0"},
	})
	store := NewMemoryStore("b")

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a, b, c}, store)

	disabled := identities(s.Disabled())
	if indexOf(disabled, "a") == -1 || indexOf(disabled, "c") == -1 {
		t.Fatalf("disabled = %v, want a and c cascaded", disabled)
	}
	if len(store.Appended) != 2 {
		t.Errorf("appended = %v, want [a c]", store.Appended)
	}
}

func TestCascadeRequiresSatisfyingVersion(t *testing.T) {
	t.Parallel()

	// The disabled copy of b is too old to satisfy a's range, so a is
	// ignored (missing dependency), not cascade-disabled.
	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		Dependencies: map[string]string{"b": ">=2.0.0"},
	})
	b := desc(t, manifest.Manifest{ID: "b", Name: "B", Version: "1.0.0"})
	store := NewMemoryStore("b")

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a, b}, store)

	if indexOf(identities(s.Ignored()), "a") == -1 {
		t.Fatalf("a must be ignored: ignored=%v disabled=%v",
			identities(s.Ignored()), identities(s.Disabled()))
	}
	if len(store.Appended) != 0 {
		t.Errorf("no cascade should have been persisted: %v", store.Appended)
	}
}

func TestCycleDetection(t *testing.T) {
	t.Parallel()

	a := desc(t, manifest.Manifest{
		ID: "a", Name: "A", Version: "1.0.0",
		LoadAfter: []string{"b"},
	})
	b := desc(t, manifest.Manifest{
		ID: "b", Name: "B", Version: "1.0.0",
		LoadAfter: []string{"a"},
	})
	c := desc(t, manifest.Manifest{ID: "c", Name: "C", Version: "1.0.0"})

	s := NewSession(nil)
	s.Resolve([]*manifest.Descriptor{a, b, c}, nil)

	if len(s.Accepted()) != 1 || s.Accepted()[0] != c {
		t.Fatalf("resolution must proceed with the remainder: %v", identities(s.Accepted()))
	}
	if !hasReport(s.Reports(), CircularConstraint, "a") || !hasReport(s.Reports(), CircularConstraint, "b") {
		t.Errorf("both cycle members must be reported: %v", s.Reports())
	}
}

func TestPartitionsAreExhaustive(t *testing.T) {
	t.Parallel()

	catalog := []*manifest.Descriptor{
		desc(t, manifest.Manifest{ID: "ok", Name: "OK", Version: "1.0.0"}),
		desc(t, manifest.Manifest{ID: "dup", Name: "Dup", Version: "1.0.0"}),
		desc(t, manifest.Manifest{ID: "dup", Name: "Dup", Version: "2.0.0"}),
		desc(t, manifest.Manifest{ID: "off", Name: "Off", Version: "1.0.0"}),
		desc(t, manifest.Manifest{
			ID: "needs-off", Name: "NeedsOff", Version: "1.0.0",
			Dependencies: map[string]string{"off": ">=1.0.0"},
		}),
		desc(t, manifest.Manifest{
			ID: "orphan", Name: "Orphan", Version: "1.0.0",
			Dependencies: map[string]string{"gone": ">=1.0.0"},
		}),
		desc(t, manifest.Manifest{ID: "loop1", Name: "L1", Version: "1.0.0", LoadAfter: []string{"loop2"}}),
		desc(t, manifest.Manifest{ID: "loop2", Name: "L2", Version: "1.0.0", LoadAfter: []string{"loop1"}}),
	}
	store := NewMemoryStore("off")

	s := NewSession(nil)
	s.Resolve(catalog, store)

	total := len(s.Accepted()) + len(s.Disabled()) + len(s.Ignored())
	if total != len(catalog) {
		t.Fatalf("partitions cover %d of %d descriptors\naccepted=%v\ndisabled=%v\nignored=%v",
			total, len(catalog),
			identities(s.Accepted()), identities(s.Disabled()), identities(s.Ignored()))
	}
}
