package rebac

import "iter"

// Tuples returns a lazy, finite, restartable sequence of relationship
// triples derived from the snapshot. For every entity it yields:
//
//   - one tuple per containment edge: (parent-ref, parent_<name>, entity-ref)
//   - one tuple per link edge: (linked-ref, <link-name>, entity-ref)
//   - one tuple per relation member: (user:<id>, <relation>, entity-ref)
//
// Identifiers are always formatted "type:id". Iteration order follows the
// store's map order and is non-normative; consumers must depend only on set
// membership. The permission evaluator never consults this stream — it
// exists for export, audit, and interop with external tuple stores.
func (sn *Snapshot) Tuples() iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		for _, e := range sn.entities {
			object := e.Ref().String()
			for relation, parent := range e.Parents {
				if !yield(Tuple{User: parent.String(), Relation: relation, Object: object}) {
					return
				}
			}
			for relation, refs := range e.Links {
				for _, ref := range refs {
					if !yield(Tuple{User: ref.String(), Relation: relation, Object: object}) {
						return
					}
				}
			}
			for relation, members := range e.Relations {
				for _, id := range members {
					if !yield(Tuple{User: UserRef(id).String(), Relation: relation, Object: object}) {
						return
					}
				}
			}
		}
	}
}

// CollectTuples materializes the full tuple stream into a slice.
func (sn *Snapshot) CollectTuples() []Tuple {
	var out []Tuple
	for t := range sn.Tuples() {
		out = append(out, t)
	}
	return out
}
