package ecs

import "slices"

// store holds every component of one type, keyed by owner.
type store map[EntityID]Component

// World owns the entity table and one component store per type.
// Entity IDs start at 1 and are never reused, so 0 can mean "no entity".
type World struct {
	nextID EntityID
	living map[EntityID]struct{}
	stores map[ComponentType]store
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		living: make(map[EntityID]struct{}),
		stores: make(map[ComponentType]store),
	}
}

// CreateEntity allocates a new, component-less entity.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.living[id] = struct{}{}
	return id
}

// DestroyEntity removes the entity and all its components. It reports false
// when id was not alive.
func (w *World) DestroyEntity(id EntityID) bool {
	if !w.Alive(id) {
		return false
	}
	delete(w.living, id)
	for _, s := range w.stores {
		delete(s, id)
	}
	return true
}

// Alive reports whether id names a live entity.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.living[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.living) }

// Add attaches c to id, replacing any component of the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	s, ok := w.stores[t]
	if !ok {
		s = make(store)
		w.stores[t] = s
	}
	s[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Clear detaches every component of type t from every entity.
func (w *World) Clear(t ComponentType) {
	delete(w.stores, t)
}

// Query returns the live entities that carry every listed type, in
// ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Scan the smallest store and probe the others.
	pivot := types[0]
	for _, t := range types[1:] {
		if len(w.stores[t]) < len(w.stores[pivot]) {
			pivot = t
		}
	}

	var out []EntityID
	for id := range w.stores[pivot] {
		if w.Alive(id) && w.hasAll(id, types) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}
