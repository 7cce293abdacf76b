package genai

import (
	"fmt"

	"github.com/kbukum/authzkit/rebac"
)

// Graph wraps a store with builders for genai entities.
type Graph struct {
	store *rebac.Store
}

// NewGraph creates a builder over the given store.
func NewGraph(store *rebac.Store) *Graph {
	return &Graph{store: store}
}

// Store returns the underlying store.
func (g *Graph) Store() *rebac.Store {
	return g.store
}

// AddUser adds a user. Role and email are descriptive metadata only.
func (g *Graph) AddUser(id, name, email, role string) {
	g.store.Put(rebac.NewEntity(rebac.TypeUser, id).
		WithName(name).
		SetAttr("email", email).
		SetAttr("role", role))
}

// AddOrganization adds a root container with admin and member lists.
func (g *Graph) AddOrganization(id, name string, admins, members []string) {
	g.store.Put(rebac.NewEntity(TypeOrganization, id).
		WithName(name).
		AddRelation(RelAdmin, admins...).
		AddRelation(RelMember, members...))
}

// AddKnowledgeBase adds a mid-tier container under an organization.
func (g *Graph) AddKnowledgeBase(id, name, description, orgID string, curators, contributors, readers []string) {
	g.store.Put(rebac.NewEntity(TypeKnowledgeBase, id).
		WithName(name).
		SetAttr("description", description).
		SetParent(RelParentOrg, rebac.NewRef(TypeOrganization, orgID)).
		AddRelation(RelCurator, curators...).
		AddRelation(RelContributor, contributors...).
		AddRelation(RelReader, readers...))
}

// Document describes a document to add.
type Document struct {
	ID      string
	Title   string
	Content string
	KBID    string
	OwnerID string
	Editors []string
	Viewers []string
	Tags    []string
}

// AddDocument adds a leaf document under a knowledge base. The body is the
// document's gated content.
func (g *Graph) AddDocument(d Document) {
	e := rebac.NewEntity(TypeDocument, d.ID).
		WithName(d.Title).
		WithContent(d.Content).
		SetParent(RelParentKB, rebac.NewRef(TypeKnowledgeBase, d.KBID)).
		AddRelation(RelOwner, d.OwnerID).
		AddRelation(RelEditor, d.Editors...).
		AddRelation(RelViewer, d.Viewers...)
	for i, tag := range d.Tags {
		e.SetAttr(fmt.Sprintf("tag_%d", i), tag)
	}
	g.store.Put(e)
}

// AddModel adds an AI model under an organization.
func (g *Graph) AddModel(id, name, modelType, orgID string, operators, users []string) {
	g.store.Put(rebac.NewEntity(TypeModel, id).
		WithName(name).
		SetAttr("model_type", modelType).
		SetParent(RelParentOrg, rebac.NewRef(TypeOrganization, orgID)).
		AddRelation(RelOperator, operators...).
		AddRelation(RelUser, users...))
}

// AddSession adds a RAG session. A session has two parent edges: the
// knowledge base it draws from and the model it runs on.
func (g *Graph) AddSession(id, name, kbID, modelID, ownerID string, participants []string) {
	g.store.Put(rebac.NewEntity(TypeSession, id).
		WithName(name).
		SetAttr("status", "active").
		SetParent(RelParentKB, rebac.NewRef(TypeKnowledgeBase, kbID)).
		SetParent(RelParentModel, rebac.NewRef(TypeModel, modelID)).
		AddRelation(RelOwner, ownerID).
		AddRelation(RelParticipant, participants...))
}

// Query describes a RAG query to add.
type Query struct {
	ID          string
	SessionID   string
	InitiatedBy string
	QueryText   string
	DocumentIDs []string
	Response    string
	Confidence  float64
}

// AddQuery adds a query under a session, linking every cited document. The
// response text is the query's gated content.
func (g *Graph) AddQuery(q Query) {
	e := rebac.NewEntity(TypeQuery, q.ID).
		WithName(q.QueryText).
		WithContent(q.Response).
		SetAttr("confidence_score", fmt.Sprintf("%.2f", q.Confidence)).
		SetParent(RelParentSession, rebac.NewRef(TypeSession, q.SessionID)).
		AddRelation(RelInitiatedBy, q.InitiatedBy)
	for _, docID := range q.DocumentIDs {
		e.AddLink(RelQueriedDocs, rebac.NewRef(TypeDocument, docID))
	}
	g.store.Put(e)
}
