package rebac

import (
	"fmt"

	"github.com/kbukum/authzkit/logger"
)

// DefaultMaxDepth is the default recursion cap for a single check.
// Delegation only ever moves up the containment hierarchy, so a well-formed
// graph terminates long before this; the cap defends against a corrupted
// graph with a cyclic parent edge.
const DefaultMaxDepth = 32

// Advisory deny reasons. Diagnostic only — no caller may branch on them.
const (
	ReasonUnknownPermission = "unknown permission"
	ReasonMalformedRef      = "malformed reference"
	ReasonObjectNotFound    = "object not found"
	ReasonRecursionLimit    = "recursion limit exceeded"
	ReasonNoRuleMatched     = "no rule matched"
)

// Checker resolves permission checks against the current graph snapshot by
// interpreting a declarative rule set. Checks are synchronous, stateless and
// side-effect free; any number may run concurrently.
type Checker struct {
	store    *Store
	rules    *RuleSet
	maxDepth int
	log      *logger.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxDepth sets the recursion cap for a single check.
func WithMaxDepth(depth int) Option {
	return func(c *Checker) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithLogger attaches a logger for debug-level decision logging. Logging
// never influences decisions.
func WithLogger(log *logger.Logger) Option {
	return func(c *Checker) {
		c.log = log.WithComponent("rebac")
	}
}

// NewChecker creates a checker over a store and a rule set.
func NewChecker(store *Store, rules *RuleSet, opts ...Option) *Checker {
	c := &Checker{
		store:    store,
		rules:    rules,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check resolves whether the user may exercise the permission on the object.
// Both user and object are "type:id" strings. The function is pure and
// total: it never fails, it only allows or denies. Malformed references,
// dangling edges and unmodeled permissions all deny.
func (c *Checker) Check(user, permission, object string) Decision {
	subject, err := ParseRef(user)
	if err != nil {
		return deny(ReasonMalformedRef)
	}
	obj, err := ParseRef(object)
	if err != nil {
		return deny(ReasonMalformedRef)
	}
	return c.CheckRef(subject, permission, obj)
}

// CheckRef is Check with pre-parsed references. The whole evaluation,
// including every delegated sub-check, runs against one snapshot.
func (c *Checker) CheckRef(subject Ref, permission string, object Ref) Decision {
	ec := evalContext{snap: c.store.Snapshot()}
	d := c.check(ec, subject, permission, object)
	c.log.Debug("permission check", map[string]interface{}{
		logger.FieldSubject:    subject.String(),
		logger.FieldPermission: permission,
		logger.FieldObject:     object.String(),
		logger.FieldAllowed:    d.Allowed,
		logger.FieldReason:     d.Reason,
	})
	return d
}

// evalContext threads the snapshot and the recursion-depth counter through
// a single evaluation.
type evalContext struct {
	snap  *Snapshot
	depth int
}

func (ec evalContext) descend() evalContext {
	return evalContext{snap: ec.snap, depth: ec.depth + 1}
}

func (c *Checker) check(ec evalContext, subject Ref, permission string, object Ref) Decision {
	if ec.depth > c.maxDepth {
		return deny(ReasonRecursionLimit)
	}

	// Fail-closed dispatch: an unregistered (permission, object type) pair
	// is an unmodeled combination and must deny.
	preds, ok := c.rules.Lookup(object.Type, permission)
	if !ok {
		return deny(ReasonUnknownPermission)
	}

	entity, ok := ec.snap.GetRef(object)
	if !ok {
		return deny(ReasonObjectNotFound)
	}

	for _, p := range preds {
		if d := c.evalPredicate(ec, p, subject, entity); d.Allowed {
			return d
		}
	}
	return deny(ReasonNoRuleMatched)
}

func (c *Checker) evalPredicate(ec evalContext, p Predicate, subject Ref, entity *Entity) Decision {
	switch p := p.(type) {
	case DirectRelation:
		// Relation lists hold bare user ids; only user subjects can match.
		if subject.Type == TypeUser && entity.HasRelation(p.Relation, subject.ID) {
			return allow(fmt.Sprintf("direct %s relation", p.Relation))
		}
		return deny(ReasonNoRuleMatched)

	case ParentDelegate:
		return c.delegate(ec, subject, p.Permission, entity, p.Parent)

	case SelfDelegate:
		d := c.check(ec.descend(), subject, p.Permission, entity.Ref())
		if d.Allowed {
			return d
		}
		return deny(d.Reason)

	case ConditionalDelegate:
		permission := p.IfFalse
		if p.Guard != nil && p.Guard.Holds(entity) {
			permission = p.IfTrue
		}
		return c.delegate(ec, subject, permission, entity, p.Parent)

	case Conjunction:
		a := c.evalPredicate(ec, p.A, subject, entity)
		if !a.Allowed {
			return a
		}
		b := c.evalPredicate(ec, p.B, subject, entity)
		if !b.Allowed {
			return b
		}
		return allow(a.Reason + " and " + b.Reason)

	case AllLinked:
		for _, ref := range entity.Links[p.Link] {
			if d := c.check(ec.descend(), subject, p.Permission, ref); !d.Allowed {
				return deny(fmt.Sprintf("%s not allowed on linked %s", p.Permission, ref))
			}
		}
		return allow(fmt.Sprintf("%s allowed on all %s links", p.Permission, p.Link))

	default:
		// Unknown predicate kinds fail closed.
		return deny(ReasonNoRuleMatched)
	}
}

// delegate re-evaluates a different permission one level up the containment
// hierarchy. A missing parent edge or a dangling reference denies; the
// dangling case surfaces as ReasonObjectNotFound from the nested check.
func (c *Checker) delegate(ec evalContext, subject Ref, permission string, entity *Entity, parent string) Decision {
	ref, ok := entity.Parent(parent)
	if !ok {
		return deny(ReasonObjectNotFound)
	}
	d := c.check(ec.descend(), subject, permission, ref)
	if d.Allowed {
		return allow(fmt.Sprintf("%s via %s", d.Reason, parent))
	}
	return deny(d.Reason)
}
