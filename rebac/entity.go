package rebac

import "slices"

// Entity is one node of the object graph: a user, a container in the
// hierarchy, or a leaf resource. The graph carries only facts — named
// relation memberships and containment edges — never derived authorization
// results.
//
// Entities are constructed during setup and treated as read-only once they
// have been handed to a Store.
type Entity struct {
	// Type and ID form the entity key, e.g. ("account", "acc1").
	Type string
	ID   string

	// Name is a human-readable display name.
	Name string

	// Attrs holds descriptive metadata (role, email, balance, status...).
	// Attributes never gate permissions; all gating is via relations.
	Attrs map[string]string

	// Content is the gated payload returned by filtered reads, e.g. a
	// document body or a query response.
	Content string

	// Parents holds named upward containment edges, keyed by the parent
	// relation name ("parent_branch", "parent_kb", ...). An entity may have
	// more than one parent edge (a RAG session references both a knowledge
	// base and a model).
	Parents map[string]Ref

	// Relations holds named user-id sets (owners, editors, tellers, ...).
	// Set semantics: re-adding a member is a no-op.
	Relations map[string][]string

	// Links holds named object-valued relations (e.g. the documents cited
	// by a query).
	Links map[string][]Ref
}

// NewEntity creates an entity with the given type and id.
func NewEntity(objectType, id string) *Entity {
	return &Entity{Type: objectType, ID: id}
}

// Ref returns the entity's typed reference.
func (e *Entity) Ref() Ref {
	return Ref{Type: e.Type, ID: e.ID}
}

// WithName sets the display name and returns the receiver.
func (e *Entity) WithName(name string) *Entity {
	e.Name = name
	return e
}

// WithContent sets the gated content payload and returns the receiver.
func (e *Entity) WithContent(content string) *Entity {
	e.Content = content
	return e
}

// SetAttr sets a metadata attribute and returns the receiver.
func (e *Entity) SetAttr(key, value string) *Entity {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

// Attr returns a metadata attribute, or "" if unset.
func (e *Entity) Attr(key string) string {
	return e.Attrs[key]
}

// SetParent records a named upward containment edge and returns the receiver.
func (e *Entity) SetParent(relation string, parent Ref) *Entity {
	if e.Parents == nil {
		e.Parents = make(map[string]Ref)
	}
	e.Parents[relation] = parent
	return e
}

// Parent returns the named parent edge.
func (e *Entity) Parent(relation string) (Ref, bool) {
	ref, ok := e.Parents[relation]
	return ref, ok
}

// AddRelation adds user ids to a named relation list. Duplicates are
// dropped, so re-adding a member is a no-op.
func (e *Entity) AddRelation(relation string, userIDs ...string) *Entity {
	if e.Relations == nil {
		e.Relations = make(map[string][]string)
	}
	for _, id := range userIDs {
		if id == "" || slices.Contains(e.Relations[relation], id) {
			continue
		}
		e.Relations[relation] = append(e.Relations[relation], id)
	}
	return e
}

// HasRelation reports whether a user id is a member of a named relation list.
func (e *Entity) HasRelation(relation, userID string) bool {
	return slices.Contains(e.Relations[relation], userID)
}

// RelationsEmpty reports whether every named relation list is empty.
func (e *Entity) RelationsEmpty(relations ...string) bool {
	for _, rel := range relations {
		if len(e.Relations[rel]) > 0 {
			return false
		}
	}
	return true
}

// AddLink appends object references to a named object-valued relation.
func (e *Entity) AddLink(relation string, refs ...Ref) *Entity {
	if e.Links == nil {
		e.Links = make(map[string][]Ref)
	}
	for _, ref := range refs {
		if ref.IsZero() || slices.Contains(e.Links[relation], ref) {
			continue
		}
		e.Links[relation] = append(e.Links[relation], ref)
	}
	return e
}

// clone returns a deep copy. Stores clone on Put so that later mutation of
// the caller's entity cannot leak into a published snapshot.
func (e *Entity) clone() *Entity {
	c := &Entity{Type: e.Type, ID: e.ID, Name: e.Name, Content: e.Content}
	if e.Attrs != nil {
		c.Attrs = make(map[string]string, len(e.Attrs))
		for k, v := range e.Attrs {
			c.Attrs[k] = v
		}
	}
	if e.Parents != nil {
		c.Parents = make(map[string]Ref, len(e.Parents))
		for k, v := range e.Parents {
			c.Parents[k] = v
		}
	}
	if e.Relations != nil {
		c.Relations = make(map[string][]string, len(e.Relations))
		for k, v := range e.Relations {
			c.Relations[k] = slices.Clone(v)
		}
	}
	if e.Links != nil {
		c.Links = make(map[string][]Ref, len(e.Links))
		for k, v := range e.Links {
			c.Links[k] = slices.Clone(v)
		}
	}
	return c
}
