package attachpipe

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func matchAll(Entry) bool { return true }

func TestRegistryFirstHonorsPriority(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "low", "low-impl", 10)
	r.Register(KindLoader, "high", "high-impl", 20)

	entry, ok := r.First(KindLoader, matchAll)
	if !ok {
		t.Fatal("First returned no match")
	}
	if entry.Name != "high" {
		t.Errorf("First returned %q, want the priority-20 entry", entry.Name)
	}
}

func TestRegistryFirstTiesByInsertionOrder(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "first", 1, DefaultPriority)
	r.Register(KindLoader, "second", 2, DefaultPriority)

	entry, _ := r.First(KindLoader, matchAll)
	if entry.Name != "first" {
		t.Errorf("First returned %q, want insertion-order winner %q", entry.Name, "first")
	}
}

func TestRegistryFirstMissIsNotAnError(t *testing.T) {
	r := NewRegistry(discardLogger())
	if _, ok := r.First(KindLoader, matchAll); ok {
		t.Error("First on empty registry reported a match")
	}
	r.Register(KindLoader, "a", 1, DefaultPriority)
	if _, ok := r.First(KindLoader, func(Entry) bool { return false }); ok {
		t.Error("First with never-matching predicate reported a match")
	}
}

func TestRegistryRoundTripRestoresState(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindTransform, "keep", 1, DefaultPriority)
	before := r.All(KindTransform)

	r.Register(KindTransform, "temp", 2, 200)
	if entry, _ := r.First(KindTransform, matchAll); entry.Name != "temp" {
		t.Fatalf("expected temp registration to win, got %q", entry.Name)
	}
	r.Unregister(KindTransform, "temp")

	after := r.All(KindTransform)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("registry state changed across register/unregister: %v != %v", before, after)
	}
}

func TestRegistryDuplicateRejected(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "dup", 1, DefaultPriority)
	r.Register(KindLoader, "dup", 2, 999)

	all := r.All(KindLoader)
	if len(all) != 1 {
		t.Fatalf("duplicate registration was not rejected, have %d entries", len(all))
	}
	if all[0].Impl != 1 || all[0].Priority != DefaultPriority {
		t.Errorf("original entry was replaced: %+v", all[0])
	}
}

func TestRegistryBumpPriority(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "a", nil, 10)
	r.Register(KindLoader, "b", nil, 20)

	r.BumpPriority(KindLoader, "a", 30)
	if entry, _ := r.First(KindLoader, matchAll); entry.Name != "a" {
		t.Errorf("after bump, First returned %q, want %q", entry.Name, "a")
	}

	// Unknown name is a warned no-op.
	r.BumpPriority(KindLoader, "missing", 99)
	if len(r.All(KindLoader)) != 2 {
		t.Error("bumping an unknown plugin changed the registry")
	}
}

func TestRegistryTempScopedRegistration(t *testing.T) {
	r := NewRegistry(discardLogger())

	func() {
		release := r.Temp(KindDeliverer, "scoped", nil, DefaultPriority)
		defer release()
		if _, ok := r.First(KindDeliverer, matchAll); !ok {
			t.Error("temp registration not visible inside scope")
		}
	}()

	if _, ok := r.First(KindDeliverer, matchAll); ok {
		t.Error("temp registration survived its scope")
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "a", nil, DefaultPriority)
	r.Register(KindTransform, "b", nil, DefaultPriority)
	r.Clear()

	if len(r.All(KindLoader))+len(r.All(KindTransform)) != 0 {
		t.Error("Clear left entries behind")
	}
}

func TestRegistryAllIsPriorityOrdered(t *testing.T) {
	r := NewRegistry(discardLogger())
	r.Register(KindLoader, "mid", nil, 50)
	r.Register(KindLoader, "high", nil, 100)
	r.Register(KindLoader, "low", nil, 10)

	var names []string
	for _, e := range r.All(KindLoader) {
		names = append(names, e.Name)
	}
	want := []string{"high", "mid", "low"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("All order = %v, want %v", names, want)
	}
}
