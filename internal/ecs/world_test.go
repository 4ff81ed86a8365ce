package ecs

import (
	"slices"
	"testing"
)

const (
	hpType   ComponentType = 1
	tagType  ComponentType = 2
	unusedCT ComponentType = 99
)

type hp struct{ n int }

func (hp) Type() ComponentType { return hpType }

type tag struct{}

func (tag) Type() ComponentType { return tagType }

func TestCreateEntityNeverHandsOutNil(t *testing.T) {
	w := NewWorld()
	seen := map[EntityID]bool{}
	for range 10 {
		id := w.CreateEntity()
		if id == NilEntity {
			t.Fatal("CreateEntity returned NilEntity")
		}
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
		if !w.Alive(id) {
			t.Fatalf("entity %d not alive after creation", id)
		}
	}
	if w.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", w.Len())
	}
}

func TestAddReplacesComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, hp{n: 3})
	w.Add(id, hp{n: 42})

	got, ok := w.Get(id, hpType).(hp)
	if !ok {
		t.Fatalf("Get returned %T, want hp", w.Get(id, hpType))
	}
	if got.n != 42 {
		t.Fatalf("hp = %d, want the replacement 42", got.n)
	}
}

func TestGetMissingComponentIsNil(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if c := w.Get(id, hpType); c != nil {
		t.Fatalf("Get on a bare entity = %v, want nil", c)
	}
	if w.Has(id, hpType) {
		t.Fatal("Has reported a component that was never added")
	}
}

func TestHasAfterAdd(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, hp{n: 1})
	if !w.Has(id, hpType) {
		t.Fatal("Has = false after Add")
	}
	if w.Has(id, unusedCT) {
		t.Fatal("Has = true for a type with no store")
	}
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, hp{n: 7})
	w.Add(id, tag{})

	if !w.DestroyEntity(id) {
		t.Fatal("DestroyEntity = false for a live entity")
	}
	if w.Alive(id) {
		t.Fatal("entity alive after DestroyEntity")
	}
	if w.Has(id, hpType) || w.Has(id, tagType) {
		t.Fatal("components survived DestroyEntity")
	}
	if w.DestroyEntity(id) {
		t.Fatal("second DestroyEntity = true")
	}
	if w.DestroyEntity(NilEntity) {
		t.Fatal("DestroyEntity(NilEntity) = true")
	}
	if w.Len() != 0 {
		t.Fatalf("Len() = %d after destroying the only entity", w.Len())
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	both := w.CreateEntity()
	w.Add(both, hp{})
	w.Add(both, tag{})
	onlyHP := w.CreateEntity()
	w.Add(onlyHP, hp{})
	dead := w.CreateEntity()
	w.Add(dead, hp{})
	w.Add(dead, tag{})
	w.DestroyEntity(dead)

	tests := []struct {
		name  string
		types []ComponentType
		want  []EntityID
	}{
		{"no types", nil, nil},
		{"single type", []ComponentType{hpType}, []EntityID{both, onlyHP}},
		{"intersection", []ComponentType{hpType, tagType}, []EntityID{both}},
		{"order of types does not matter", []ComponentType{tagType, hpType}, []EntityID{both}},
		{"unknown type", []ComponentType{unusedCT}, nil},
		{"known and unknown", []ComponentType{hpType, unusedCT}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Query(tt.types...)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Query(%v) = %v, want %v", tt.types, got, tt.want)
			}
		})
	}
}

func TestQueryIsOrderedByID(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for range 50 {
		id := w.CreateEntity()
		w.Add(id, hp{})
		ids = append(ids, id)
	}
	for run := range 5 {
		if got := w.Query(hpType); !slices.Equal(got, ids) {
			t.Fatalf("run %d: Query = %v, want ascending %v", run, got, ids)
		}
	}
}

func TestClearDropsEveryComponentOfType(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Add(a, hp{})
	w.Add(b, hp{})
	w.Add(b, tag{})

	w.Clear(hpType)

	if w.Has(a, hpType) || w.Has(b, hpType) {
		t.Fatal("Clear left a component behind")
	}
	if !w.Has(b, tagType) {
		t.Fatal("Clear touched another component type")
	}
	// The store is recreated on the next Add.
	w.Add(a, hp{n: 1})
	if !w.Has(a, hpType) {
		t.Fatal("Add after Clear did not stick")
	}
}
