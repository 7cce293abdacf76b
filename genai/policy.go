package genai

import "github.com/kbukum/authzkit/rebac"

// Object types.
const (
	TypeOrganization  = "organization"
	TypeKnowledgeBase = "knowledge_base"
	TypeDocument      = "document"
	TypeModel         = "ai_model"
	TypeSession       = "rag_session"
	TypeQuery         = "rag_query"
)

// Relation names.
const (
	RelAdmin       = "admin"
	RelMember      = "member"
	RelCurator     = "curator"
	RelContributor = "contributor"
	RelReader      = "reader"
	RelOwner       = "owner"
	RelEditor      = "editor"
	RelViewer      = "viewer"
	RelOperator    = "operator"
	RelUser        = "user"
	RelParticipant = "participant"
	RelInitiatedBy = "initiated_by"

	RelParentOrg     = "parent_org"
	RelParentKB      = "parent_kb"
	RelParentModel   = "parent_model"
	RelParentSession = "parent_session"
	RelQueriedDocs   = "queried_documents"
)

// Permissions.
const (
	PermAccess        = "can_access"
	PermAdminister    = "can_administer"
	PermView          = "can_view"
	PermContribute    = "can_contribute"
	PermCurate        = "can_curate"
	PermAdmin         = "can_admin"
	PermEdit          = "can_edit"
	PermDelete        = "can_delete"
	PermUseInRAG      = "can_use_in_rag"
	PermUse           = "can_use"
	PermConfigure     = "can_configure"
	PermQuery         = "can_query"
	PermAccessDocs    = "can_access_documents"
	PermAccessResults = "can_access_results"
)

// Rules returns the genai rule set.
//
// Knowledge-base view inheritance deliberately stops at organization
// membership: holding a KB reader role grants nothing on confidential
// documents, and org members never gain curation rights.
func Rules() *rebac.RuleSet {
	rs := rebac.NewRuleSet()

	rs.Register(TypeOrganization, PermAccess,
		rebac.DirectRelation{Relation: RelMember},
		rebac.DirectRelation{Relation: RelAdmin},
	)
	rs.Register(TypeOrganization, PermAdminister,
		rebac.DirectRelation{Relation: RelAdmin},
	)

	rs.Register(TypeKnowledgeBase, PermView,
		rebac.DirectRelation{Relation: RelCurator},
		rebac.DirectRelation{Relation: RelContributor},
		rebac.DirectRelation{Relation: RelReader},
		rebac.ParentDelegate{Parent: RelParentOrg, Permission: PermAccess},
	)
	rs.Register(TypeKnowledgeBase, PermContribute,
		rebac.DirectRelation{Relation: RelCurator},
		rebac.DirectRelation{Relation: RelContributor},
	)
	rs.Register(TypeKnowledgeBase, PermCurate,
		rebac.DirectRelation{Relation: RelCurator},
	)
	rs.Register(TypeKnowledgeBase, PermAdmin,
		rebac.DirectRelation{Relation: RelCurator},
		rebac.ParentDelegate{Parent: RelParentOrg, Permission: PermAdminister},
	)

	rs.Register(TypeDocument, PermView,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelEditor},
		rebac.DirectRelation{Relation: RelViewer},
		// Confidential-default: no explicit grants means only KB curators
		// inherit; otherwise ordinary KB view rights suffice.
		rebac.ConditionalDelegate{
			Guard:   rebac.RelationsEmpty{RelViewer, RelEditor},
			Parent:  RelParentKB,
			IfTrue:  PermCurate,
			IfFalse: PermView,
		},
	)
	rs.Register(TypeDocument, PermEdit,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelEditor},
		rebac.ParentDelegate{Parent: RelParentKB, Permission: PermContribute},
	)
	rs.Register(TypeDocument, PermDelete,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.ParentDelegate{Parent: RelParentKB, Permission: PermCurate},
	)
	rs.Register(TypeDocument, PermUseInRAG,
		rebac.SelfDelegate{Permission: PermView},
	)

	rs.Register(TypeModel, PermUse,
		rebac.DirectRelation{Relation: RelOperator},
		rebac.DirectRelation{Relation: RelUser},
		rebac.ParentDelegate{Parent: RelParentOrg, Permission: PermAccess},
	)
	rs.Register(TypeModel, PermConfigure,
		rebac.DirectRelation{Relation: RelOperator},
		rebac.ParentDelegate{Parent: RelParentOrg, Permission: PermAdminister},
	)
	rs.Register(TypeModel, PermAdmin,
		rebac.DirectRelation{Relation: RelOperator},
	)

	rs.Register(TypeSession, PermView,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelParticipant},
	)
	rs.Register(TypeSession, PermQuery,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelParticipant},
	)
	rs.Register(TypeSession, PermAccessDocs,
		rebac.Conjunction{
			A: rebac.SelfDelegate{Permission: PermView},
			B: rebac.ParentDelegate{Parent: RelParentKB, Permission: PermView},
		},
	)

	rs.Register(TypeQuery, PermView,
		rebac.DirectRelation{Relation: RelInitiatedBy},
		rebac.ParentDelegate{Parent: RelParentSession, Permission: PermView},
	)
	rs.Register(TypeQuery, PermAccessResults,
		rebac.Conjunction{
			A: rebac.SelfDelegate{Permission: PermView},
			B: rebac.AllLinked{Link: RelQueriedDocs, Permission: PermUseInRAG},
		},
	)

	// Gated content: query responses and document bodies.
	rs.SetReadPermission(TypeQuery, PermAccessResults)
	rs.SetReadPermission(TypeDocument, PermView)

	return rs
}
