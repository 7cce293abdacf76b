package rebac

import (
	"strings"

	"github.com/kbukum/authzkit/errors"
)

// Ref is a typed reference to a graph entity.
// The canonical string form is "type:id", e.g. "account:acc1".
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// String returns the canonical string representation: "type:id".
func (r Ref) String() string {
	return r.Type + ":" + r.ID
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// NewRef creates a Ref from a type and id.
func NewRef(objectType, id string) Ref {
	return Ref{Type: objectType, ID: id}
}

// ParseRef parses a "type:id" string. Both segments must be non-empty.
func ParseRef(s string) (Ref, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok || typ == "" || id == "" {
		return Ref{}, errors.InvalidRef(s)
	}
	return Ref{Type: typ, ID: id}, nil
}

// UserRef creates a reference to a user entity.
func UserRef(id string) Ref {
	return Ref{Type: TypeUser, ID: id}
}

// TypeUser is the entity type of subjects.
const TypeUser = "user"

// Tuple is one (user, relation, object) fact describing an edge in the
// relation graph. The field names and type:id formatting match the wire
// format of external Zanzibar-style authorization stores, so materialized
// tuples can be written to such a store unmodified.
type Tuple struct {
	User     string `json:"user"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

// String returns "user relation object", for logs and debugging.
func (t Tuple) String() string {
	return t.User + " " + t.Relation + " " + t.Object
}

// Decision is the result of a permission check. Reason is diagnostic only;
// callers must branch on Allowed and nothing else.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Allowed: false, Reason: reason} }
