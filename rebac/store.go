package rebac

import (
	"sort"
	"sync"
)

// Store holds the object graph. It is the only mutable component; everything
// downstream reads through immutable snapshots.
//
// Writes are copy-on-write: Put clones the entity map and swaps it in under
// the lock, so a snapshot taken before a write keeps observing the old,
// internally consistent graph. Arbitrarily many checks may therefore run
// concurrently with writes without further locking.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{current: &Snapshot{entities: map[Ref]*Entity{}}}
}

// Put upserts an entity, keyed by type+id. The entity is cloned, so the
// caller keeps ownership of its argument. Re-putting the same entity is
// idempotent.
func (s *Store) Put(e *Entity) {
	if e == nil || e.Type == "" || e.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[Ref]*Entity, len(s.current.entities)+1)
	for k, v := range s.current.entities {
		next[k] = v
	}
	next[e.Ref()] = e.clone()
	s.current = &Snapshot{entities: next}
}

// Get returns the entity with the given type and id from the current
// snapshot. The returned entity must be treated as read-only.
func (s *Store) Get(objectType, id string) (*Entity, bool) {
	return s.Snapshot().Get(objectType, id)
}

// Snapshot returns the current immutable view of the graph. Each check runs
// against one snapshot for its whole evaluation.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Len returns the number of entities in the current snapshot.
func (s *Store) Len() int {
	return len(s.Snapshot().entities)
}

// Snapshot is an immutable view of the graph at one point in time.
type Snapshot struct {
	entities map[Ref]*Entity
}

// Get returns the entity with the given type and id.
func (sn *Snapshot) Get(objectType, id string) (*Entity, bool) {
	e, ok := sn.entities[Ref{Type: objectType, ID: id}]
	return e, ok
}

// GetRef returns the entity the reference points to.
func (sn *Snapshot) GetRef(ref Ref) (*Entity, bool) {
	e, ok := sn.entities[ref]
	return e, ok
}

// OfType returns all entities of a type, sorted by id for deterministic
// iteration.
func (sn *Snapshot) OfType(objectType string) []*Entity {
	var out []*Entity
	for ref, e := range sn.entities {
		if ref.Type == objectType {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entities in the snapshot.
func (sn *Snapshot) Len() int {
	return len(sn.entities)
}
