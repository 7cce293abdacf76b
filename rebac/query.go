package rebac

// AccessDenied is the fixed sentinel returned by FilteredRead when the
// content-gating check fails. Returning a sentinel instead of an error keeps
// protected content from leaking through an error path in a calling API
// layer.
const AccessDenied = "Access denied: insufficient permissions to view this content"

// ListAccessible returns the references of every entity of the given type
// for which the permission check passes, sorted by id.
//
// This is an O(N) scan over all objects of the type; the module deliberately
// carries no reverse index, so it does not scale to very large graphs.
func (c *Checker) ListAccessible(user, permission, objectType string) []Ref {
	subject, err := ParseRef(user)
	if err != nil {
		return nil
	}
	ec := evalContext{snap: c.store.Snapshot()}

	var out []Ref
	for _, e := range ec.snap.OfType(objectType) {
		if d := c.check(ec, subject, permission, e.Ref()); d.Allowed {
			out = append(out, e.Ref())
		}
	}
	return out
}

// FilteredRead evaluates the content-gating permission registered for the
// object's type and returns either the entity's content or the AccessDenied
// sentinel. It never fails: malformed references, unknown objects and types
// without a registered read permission all yield the sentinel.
func (c *Checker) FilteredRead(user, object string) string {
	subject, err := ParseRef(user)
	if err != nil {
		return AccessDenied
	}
	obj, err := ParseRef(object)
	if err != nil {
		return AccessDenied
	}
	permission, ok := c.rules.ReadPermission(obj.Type)
	if !ok {
		return AccessDenied
	}

	// One snapshot for both the check and the read, so the content returned
	// is the content the decision was made about.
	ec := evalContext{snap: c.store.Snapshot()}
	if d := c.check(ec, subject, permission, obj); !d.Allowed {
		return AccessDenied
	}
	entity, ok := ec.snap.GetRef(obj)
	if !ok {
		return AccessDenied
	}
	return entity.Content
}
