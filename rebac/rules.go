package rebac

// Predicate is one tagged rule variant. A permission's rule list is an
// ordered set of predicates combined by OR; evaluation short-circuits on the
// first predicate that holds. If none holds, the result is deny.
type Predicate interface {
	isPredicate()
}

// DirectRelation holds when the subject is a member of the object's named
// relation list.
type DirectRelation struct {
	Relation string
}

// ParentDelegate holds when a different permission check succeeds against
// the object's named parent edge. Delegation always moves upward (or to a
// distinct related object), never back down.
type ParentDelegate struct {
	Parent     string
	Permission string
}

// SelfDelegate holds when a different permission check succeeds against the
// same object. It expresses permission aliasing and counts against the
// recursion-depth budget like any other delegation.
type SelfDelegate struct {
	Permission string
}

// ConditionalDelegate chooses between two delegated permissions based on a
// guard over the object's own state. The reference domains use it with a
// RelationsEmpty guard to implement confidential-default: a resource whose
// explicit grant lists are all empty delegates to the container's stricter
// permission, so absence of a grant never implies openness.
type ConditionalDelegate struct {
	Guard   Guard
	Parent  string
	IfTrue  string
	IfFalse string
}

// Conjunction holds when both predicates hold.
type Conjunction struct {
	A Predicate
	B Predicate
}

// AllLinked holds when every object in the named link list independently
// passes the given permission check. An empty link list holds vacuously;
// pair it with a Conjunction when empty must not imply access on its own.
type AllLinked struct {
	Link       string
	Permission string
}

func (DirectRelation) isPredicate()      {}
func (ParentDelegate) isPredicate()      {}
func (SelfDelegate) isPredicate()        {}
func (ConditionalDelegate) isPredicate() {}
func (Conjunction) isPredicate()         {}
func (AllLinked) isPredicate()           {}

// Guard is a predicate over an entity's own state, used by
// ConditionalDelegate to pick a delegated permission.
type Guard interface {
	Holds(e *Entity) bool
}

// RelationsEmpty is a Guard that holds when every named relation list on the
// entity is empty.
type RelationsEmpty []string

// Holds implements Guard.
func (g RelationsEmpty) Holds(e *Entity) bool {
	return e.RelationsEmpty(g...)
}

// RuleKey identifies one rule list.
type RuleKey struct {
	ObjectType string
	Permission string
}

// RuleSet is a declarative policy: a mapping from (object type, permission)
// to an ordered predicate list, plus an optional content-gating permission
// per object type for filtered reads. Each domain registers its own
// independent RuleSet; nothing forces identical semantics across domains.
type RuleSet struct {
	rules map[RuleKey][]Predicate
	reads map[string]string
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		rules: make(map[RuleKey][]Predicate),
		reads: make(map[string]string),
	}
}

// Register sets the ordered predicate list for a (object type, permission)
// pair, replacing any previous registration.
func (rs *RuleSet) Register(objectType, permission string, preds ...Predicate) *RuleSet {
	rs.rules[RuleKey{ObjectType: objectType, Permission: permission}] = preds
	return rs
}

// SetReadPermission registers the permission that gates content reads for an
// object type.
func (rs *RuleSet) SetReadPermission(objectType, permission string) *RuleSet {
	rs.reads[objectType] = permission
	return rs
}

// Lookup returns the predicate list for a pair. A missing pair means the
// combination is unmodeled and must deny.
func (rs *RuleSet) Lookup(objectType, permission string) ([]Predicate, bool) {
	preds, ok := rs.rules[RuleKey{ObjectType: objectType, Permission: permission}]
	return preds, ok
}

// ReadPermission returns the content-gating permission for an object type.
func (rs *RuleSet) ReadPermission(objectType string) (string, bool) {
	perm, ok := rs.reads[objectType]
	return perm, ok
}
