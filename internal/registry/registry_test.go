package registry

import (
	"errors"
	"testing"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/events"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/settings"
)

func newTestRegistry(t *testing.T) (*Registry, *events.Recorder) {
	t.Helper()
	rec := &events.Recorder{}
	return New(WithNotifier(rec)), rec
}

func mustAssign(t *testing.T, r *Registry, c model.Category, name string, id int16) {
	t.Helper()
	if err := r.Assign(c, name, id); err != nil {
		t.Fatalf("Assign(%s, %q, %d) failed: %v", c, name, id, err)
	}
}

func TestRegistry_AssignAndResolve(t *testing.T) {
	r, rec := newTestRegistry(t)

	mustAssign(t, r, model.CategoryGroup, "A", 7)

	name, err := r.ResolveName(model.CategoryGroup, 7)
	if err != nil || name != "A" {
		t.Errorf("ResolveName = %q, %v; want A", name, err)
	}
	id, err := r.ResolveID(model.CategoryGroup, "A")
	if err != nil || id != 7 {
		t.Errorf("ResolveID = %d, %v; want 7", id, err)
	}
	if !r.IsDirty() {
		t.Error("Expected registry to be dirty after Assign")
	}

	got := rec.Events()
	want := []events.Event{events.Created(model.CategoryGroup, "A", 7)}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Expected events %v, got %v", want, got)
	}
}

func TestRegistry_CategoriesAreIndependent(t *testing.T) {
	r, _ := newTestRegistry(t)

	mustAssign(t, r, model.CategoryGroup, "A", 1)
	mustAssign(t, r, model.CategoryColor, "A", 2)

	if id, _ := r.ResolveID(model.CategoryGroup, "A"); id != 1 {
		t.Errorf("group A = %d, want 1", id)
	}
	if id, _ := r.ResolveID(model.CategoryColor, "A"); id != 2 {
		t.Errorf("color A = %d, want 2", id)
	}
	if _, err := r.ResolveName(model.CategoryTimer, 1); !nidserr.IsNotFound(err) {
		t.Errorf("Expected not found in timer, got %v", err)
	}
}

func TestRegistry_AssignValidation(t *testing.T) {
	r, rec := newTestRegistry(t)

	for _, id := range []int16{0, -3} {
		err := r.Assign(model.CategoryGroup, "A", id)
		if !errors.Is(err, nidserr.ErrInvalidID) {
			t.Errorf("Assign with id %d: expected ErrInvalidID, got %v", id, err)
		}
		if !nidserr.IsValidationError(err) {
			t.Errorf("Assign with id %d: expected validation error", id)
		}
	}

	err := r.Assign(model.CategoryGroup, "bad|name", 3)
	if !errors.Is(err, nidserr.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
	var verr *nidserr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Errorf("Expected ValidationError on name, got %#v", err)
	}

	if !r.IsEmpty() || r.IsDirty() || len(rec.Events()) != 0 {
		t.Error("Failed assigns must not change state or notify")
	}
}

func TestRegistry_CustomSanitizer(t *testing.T) {
	sentinel := errors.New("reserved word")
	r := New(WithSanitizer(func(name string) error {
		if name == "root" {
			return sentinel
		}
		return nil
	}))

	err := r.Assign(model.CategoryGroup, "root", 1)
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected sanitizer error to be wrapped, got %v", err)
	}
	if err := r.Assign(model.CategoryGroup, "leaf", 1); err != nil {
		t.Errorf("Assign(leaf) failed: %v", err)
	}
}

func TestRegistry_DetachOnReassign(t *testing.T) {
	r, rec := newTestRegistry(t)

	mustAssign(t, r, model.CategoryGroup, "A", 5)
	mustAssign(t, r, model.CategoryGroup, "B", 5)

	if _, err := r.ResolveID(model.CategoryGroup, "A"); !nidserr.IsNotFound(err) {
		t.Errorf("Expected A to be detached, got %v", err)
	}
	if name, _ := r.ResolveName(model.CategoryGroup, 5); name != "B" {
		t.Errorf("ResolveName(5) = %q, want B", name)
	}
	if n := len(r.Entries(model.CategoryGroup)); n != 1 {
		t.Errorf("Expected 1 binding, got %d", n)
	}
	if n := len(rec.Events()); n != 2 {
		t.Errorf("Expected 2 created events, got %d", n)
	}
}

func TestRegistry_AssignSameNameUpdatesID(t *testing.T) {
	r, _ := newTestRegistry(t)

	mustAssign(t, r, model.CategoryCounter, "score", 1)
	mustAssign(t, r, model.CategoryCounter, "score", 2)

	if _, err := r.ResolveName(model.CategoryCounter, 1); !nidserr.IsNotFound(err) {
		t.Errorf("Old ID should be free, got %v", err)
	}
	if id, _ := r.ResolveID(model.CategoryCounter, "score"); id != 2 {
		t.Errorf("score = %d, want 2", id)
	}
}

func TestRegistry_AssignSamePairIsStable(t *testing.T) {
	r, _ := newTestRegistry(t)

	mustAssign(t, r, model.CategoryGroup, "A", 1)
	mustAssign(t, r, model.CategoryGroup, "B", 2)
	mustAssign(t, r, model.CategoryGroup, "A", 1)

	if got := r.Dump(); got != "A:1,B:2|||||" {
		t.Errorf("Expected A:1,B:2|||||, got %q", got)
	}
}

func TestRegistry_RemoveByName(t *testing.T) {
	r, rec := newTestRegistry(t)
	mustAssign(t, r, model.CategoryEffect, "spark", 3)
	r.MarkClean()
	rec.Reset()

	if err := r.RemoveByName(model.CategoryEffect, "spark"); err != nil {
		t.Fatalf("RemoveByName failed: %v", err)
	}
	if _, err := r.ResolveName(model.CategoryEffect, 3); !nidserr.IsNotFound(err) {
		t.Errorf("Expected binding gone, got %v", err)
	}
	if !r.IsDirty() {
		t.Error("Expected dirty after remove")
	}
	got := rec.Events()
	if len(got) != 1 || got[0] != events.Removed(model.CategoryEffect, "spark", 3) {
		t.Errorf("Unexpected events: %v", got)
	}
}

func TestRegistry_RemoveByID(t *testing.T) {
	r, rec := newTestRegistry(t)
	mustAssign(t, r, model.CategoryColor, "sky", 10)
	rec.Reset()

	if err := r.RemoveByID(model.CategoryColor, 10); err != nil {
		t.Fatalf("RemoveByID failed: %v", err)
	}
	if !r.IsEmpty() {
		t.Error("Expected registry to be empty")
	}
	got := rec.Events()
	if len(got) != 1 || got[0] != events.Removed(model.CategoryColor, "sky", 10) {
		t.Errorf("Unexpected events: %v", got)
	}
}

func TestRegistry_RemoveMissIsNoop(t *testing.T) {
	r, rec := newTestRegistry(t)
	mustAssign(t, r, model.CategoryGroup, "A", 1)
	r.MarkClean()
	rec.Reset()
	before := r.Dump()

	if err := r.RemoveByName(model.CategoryGroup, "X"); !nidserr.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
	if err := r.RemoveByID(model.CategoryGroup, 99); !nidserr.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}

	if r.IsDirty() {
		t.Error("Remove miss must not mark dirty")
	}
	if len(rec.Events()) != 0 {
		t.Error("Remove miss must not notify")
	}
	if r.Dump() != before {
		t.Errorf("State changed: %q -> %q", before, r.Dump())
	}
}

func TestRegistry_EmptyAndReset(t *testing.T) {
	r, rec := newTestRegistry(t)
	if !r.IsEmpty() {
		t.Fatal("Fresh registry should be empty")
	}

	mustAssign(t, r, model.CategoryTimer, "t", 1)
	if r.IsEmpty() {
		t.Error("Registry should not be empty after Assign")
	}

	rec.Reset()
	if err := r.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !r.IsEmpty() || r.IsDirty() {
		t.Error("Reset should empty the registry and clear dirty")
	}
	if len(rec.Events()) != 0 {
		t.Error("Reset must not notify")
	}
}

func TestRegistry_LegacyAlias(t *testing.T) {
	r, rec := newTestRegistry(t)

	mustAssign(t, r, model.CategoryDynamicCounterTimer, "X", 9)

	name, err := r.ResolveName(model.CategoryCounter, 9)
	if err != nil || name != "X" {
		t.Errorf("ResolveName(counter, 9) = %q, %v; want X", name, err)
	}
	if got := rec.Events()[0].Category; got != model.CategoryCounter {
		t.Errorf("Event category should be normalized, got %s", got)
	}
	if err := r.RemoveByID(model.CategoryDynamicCounterTimer, 9); err != nil {
		t.Errorf("RemoveByID through alias failed: %v", err)
	}
}

func TestRegistry_NotificationSeesCommittedState(t *testing.T) {
	var r *Registry
	var seen string
	r = New(WithNotifier(events.NotifierFunc(func(e events.Event) {
		seen, _ = r.ResolveName(e.Category, e.ID)
	})))

	mustAssign(t, r, model.CategoryGroup, "A", 4)
	if seen != "A" {
		t.Errorf("Listener should observe the new binding, saw %q", seen)
	}
}

func TestRegistry_ReentrantMutationRejected(t *testing.T) {
	var r *Registry
	var inner []error
	r = New(WithNotifier(events.NotifierFunc(func(e events.Event) {
		inner = append(inner,
			r.Assign(model.CategoryGroup, "other", 2),
			r.RemoveByName(model.CategoryGroup, e.Name),
			r.Load("||"),
			r.Reset(),
		)
	})))

	mustAssign(t, r, model.CategoryGroup, "A", 1)

	for i, err := range inner {
		if !errors.Is(err, nidserr.ErrReentrant) {
			t.Errorf("inner call %d: expected ErrReentrant, got %v", i, err)
		}
	}
	if got := r.Dump(); got != "A:1|||||" {
		t.Errorf("Listener mutations must not apply, got %q", got)
	}

	// The guard is released once delivery finishes.
	if err := r.Assign(model.CategoryGroup, "B", 2); err != nil {
		t.Errorf("Assign after notification failed: %v", err)
	}
}

func TestRegistry_Entries(t *testing.T) {
	r, _ := newTestRegistry(t)
	mustAssign(t, r, model.CategoryGroup, "b", 2)
	mustAssign(t, r, model.CategoryGroup, "a", 1)

	got := r.Entries(model.CategoryGroup)
	want := []model.NamedID{
		{Category: model.CategoryGroup, Name: "b", ID: 2},
		{Category: model.CategoryGroup, Name: "a", ID: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRegistry_MoreNumericIDsCachedUntilRefresh(t *testing.T) {
	flags := settings.Static{model.SettingMoreNumericIDs: true}
	r := New(WithSettings(flags))

	if !r.MoreNumericIDs() {
		t.Fatal("Expected flag read at construction")
	}

	flags[model.SettingMoreNumericIDs] = false
	if !r.MoreNumericIDs() {
		t.Error("Flag should stay cached until refreshed")
	}

	r.RefreshMoreNumericIDs()
	if r.MoreNumericIDs() {
		t.Error("Expected refreshed flag to be false")
	}
}

func TestRegistry_SnapshotRestore(t *testing.T) {
	r, rec := newTestRegistry(t)
	mustAssign(t, r, model.CategoryGroup, "A", 1)
	snap := r.Snapshot()

	mustAssign(t, r, model.CategoryGroup, "B", 2)
	r.MarkClean()
	rec.Reset()

	if err := r.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := r.Dump(); got != "A:1|||||" {
		t.Errorf("Expected restored dump, got %q", got)
	}
	if !r.IsDirty() {
		t.Error("Restore should bring back the snapshot's dirty flag")
	}
	if len(rec.Events()) != 0 {
		t.Error("Restore must not notify")
	}

	// Mutating after restore must not leak into the snapshot.
	mustAssign(t, r, model.CategoryGroup, "C", 3)
	if err := r.Restore(snap); err != nil {
		t.Fatalf("second Restore failed: %v", err)
	}
	if got := r.Dump(); got != "A:1|||||" {
		t.Errorf("Snapshot was modified, got %q", got)
	}
}
