package genai

import (
	"strings"
	"testing"

	"github.com/kbukum/authzkit/rebac"
)

func newChecker(t *testing.T) (*rebac.Store, *rebac.Checker) {
	t.Helper()
	store := rebac.NewStore()
	Seed(store)
	return store, rebac.NewChecker(store, Rules())
}

func TestKnowledgeBasePermissions(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		name       string
		user       string
		permission string
		want       bool
	}{
		{"curator can view", "user:alice", PermView, true},
		{"contributor can view", "user:bob", PermView, true},
		{"reader can view", "user:charlie", PermView, true},
		{"org member can view", "user:eve", PermView, true},
		{"org admin can view", "user:diana", PermView, true},

		{"curator can contribute", "user:alice", PermContribute, true},
		{"contributor can contribute", "user:bob", PermContribute, true},
		{"reader cannot contribute", "user:charlie", PermContribute, false},
		{"org member cannot contribute", "user:eve", PermContribute, false},

		{"curator can curate", "user:alice", PermCurate, true},
		{"contributor cannot curate", "user:bob", PermCurate, false},
		{"org admin cannot curate", "user:diana", PermCurate, false},

		{"curator can admin", "user:alice", PermAdmin, true},
		{"org admin can admin", "user:diana", PermAdmin, true},
		{"contributor cannot admin", "user:bob", PermAdmin, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, tc.permission, "knowledge_base:kb1")
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, %s, kb1).Allowed = %v, want %v",
					tc.user, tc.permission, got.Allowed, tc.want)
			}
		})
	}
}

func TestDocumentPermissions(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		name       string
		user       string
		permission string
		object     string
		want       bool
	}{
		{"owner can view", "user:alice", PermView, "document:doc1", true},
		{"editor can view", "user:bob", PermView, "document:doc1", true},
		{"viewer can view", "user:charlie", PermView, "document:doc1", true},
		{"org member can view open doc", "user:eve", PermView, "document:doc1", true},

		{"editor can edit", "user:bob", PermEdit, "document:doc1", true},
		{"viewer cannot edit", "user:charlie", PermEdit, "document:doc1", false},
		{"kb contributor can edit other doc", "user:bob", PermEdit, "document:doc2", true},
		{"org member cannot edit", "user:eve", PermEdit, "document:doc2", false},

		{"owner can delete", "user:alice", PermDelete, "document:doc2", true},
		{"kb curator can delete", "user:alice", PermDelete, "document:doc3", true},
		{"editor cannot delete", "user:bob", PermDelete, "document:doc1", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, tc.permission, tc.object)
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, %s, %s).Allowed = %v, want %v",
					tc.user, tc.permission, tc.object, got.Allowed, tc.want)
			}
		})
	}
}

func TestConfidentialDefault(t *testing.T) {
	_, c := newChecker(t)

	// doc3 has empty viewer and editor lists: ordinary KB or org rights do
	// not widen into it, only its owner and KB curators get through.
	tests := []struct {
		name string
		user string
		want bool
	}{
		{"owner", "user:diana", true},
		{"kb curator", "user:alice", true},
		{"kb contributor", "user:bob", false},
		{"kb reader", "user:charlie", false},
		{"org member", "user:eve", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, PermView, "document:doc3")
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, can_view, doc3).Allowed = %v, want %v",
					tc.user, got.Allowed, tc.want)
			}
		})
	}
}

func TestConfidentialDefaultWideningGuard(t *testing.T) {
	store, c := newChecker(t)

	// With empty grant lists bob (contributor) is denied...
	if c.Check("user:bob", PermView, "document:doc3").Allowed {
		t.Fatal("bob must not see the confidential doc")
	}

	// ...but the same graph with a non-empty viewer list would admit him
	// through ordinary KB view inheritance.
	g := NewGraph(store)
	g.AddDocument(Document{
		ID: "doc3", Title: "Internal Process",
		Content: "Internal company processes - confidential",
		KBID:    "kb1", OwnerID: "diana",
		Viewers: []string{"diana"},
	})
	if !c.Check("user:bob", PermView, "document:doc3").Allowed {
		t.Error("non-empty grant lists should fall back to KB view inheritance")
	}
}

func TestModelPermissions(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		name       string
		user       string
		permission string
		want       bool
	}{
		{"operator can use", "user:eve", PermUse, true},
		{"model user can use", "user:alice", PermUse, true},
		{"org member can use", "user:charlie", PermUse, true},
		{"operator can configure", "user:eve", PermConfigure, true},
		{"org admin can configure", "user:diana", PermConfigure, true},
		{"model user cannot configure", "user:alice", PermConfigure, false},
		{"operator can admin", "user:eve", PermAdmin, true},
		{"org admin cannot model-admin", "user:diana", PermAdmin, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, tc.permission, "ai_model:model1")
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, %s, model1).Allowed = %v, want %v",
					tc.user, tc.permission, got.Allowed, tc.want)
			}
		})
	}
}

func TestSessionPermissions(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		name       string
		user       string
		permission string
		want       bool
	}{
		{"owner can view", "user:bob", PermView, true},
		{"participant can view", "user:charlie", PermView, true},
		{"curator is not a participant", "user:alice", PermView, false},
		{"owner can query", "user:bob", PermQuery, true},
		{"participant can query", "user:charlie", PermQuery, true},
		{"owner can access documents", "user:bob", PermAccessDocs, true},
		{"participant can access documents", "user:charlie", PermAccessDocs, true},
		{"outsider cannot access documents", "user:eve", PermAccessDocs, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, tc.permission, "rag_session:session1")
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, %s, session1).Allowed = %v, want %v",
					tc.user, tc.permission, got.Allowed, tc.want)
			}
		})
	}
}

func TestQueryPermissions(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		name       string
		user       string
		permission string
		want       bool
	}{
		{"initiator can view", "user:bob", PermView, true},
		{"participant can view via session", "user:charlie", PermView, true},
		{"outsider cannot view", "user:diana", PermView, false},
		{"initiator can access results", "user:bob", PermAccessResults, true},
		{"participant can access results", "user:charlie", PermAccessResults, true},
		{"outsider cannot access results", "user:diana", PermAccessResults, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Check(tc.user, tc.permission, "rag_query:query1")
			if got.Allowed != tc.want {
				t.Errorf("Check(%s, %s, query1).Allowed = %v, want %v",
					tc.user, tc.permission, got.Allowed, tc.want)
			}
		})
	}
}

func TestResultAccessFlipsWithCitedDocument(t *testing.T) {
	store, c := newChecker(t)

	if !c.Check("user:bob", PermAccessResults, "rag_query:query1").Allowed {
		t.Fatal("bob starts with result access")
	}

	// Revoke bob's path to doc1 by clearing its grant lists; the document
	// becomes confidential-default and bob loses the conjunct.
	g := NewGraph(store)
	g.AddDocument(Document{
		ID: "doc1", Title: "API Documentation",
		Content: "Comprehensive API documentation for the system",
		KBID:    "kb1", OwnerID: "alice",
	})

	if c.Check("user:bob", PermAccessResults, "rag_query:query1").Allowed {
		t.Error("losing access to one cited document must flip results to denied")
	}
	// The plain query view is unaffected.
	if !c.Check("user:bob", PermView, "rag_query:query1").Allowed {
		t.Error("bob still initiated the query")
	}
}

func TestListAccessibleDocuments(t *testing.T) {
	_, c := newChecker(t)

	tests := []struct {
		user string
		want []string
	}{
		// alice owns doc1/doc2 and curates the KB, so she sees everything.
		{"user:alice", []string{"doc1", "doc2", "doc3"}},
		{"user:charlie", []string{"doc1", "doc2"}},
		{"user:eve", []string{"doc1", "doc2"}},
		{"user:diana", []string{"doc1", "doc2", "doc3"}},
	}
	for _, tc := range tests {
		t.Run(tc.user, func(t *testing.T) {
			got := c.ListAccessible(tc.user, PermView, TypeDocument)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("got[%d] = %s, want document:%s", i, got[i], id)
				}
			}
		})
	}
}

func TestFilteredResponseRead(t *testing.T) {
	_, c := newChecker(t)

	got := c.FilteredRead("user:bob", "rag_query:query1")
	if !strings.Contains(got, "OAuth") {
		t.Errorf("bob should read the response, got %q", got)
	}
	if got := c.FilteredRead("user:diana", "rag_query:query1"); got != rebac.AccessDenied {
		t.Errorf("diana got %q, want the access-denied sentinel", got)
	}
	if got := c.FilteredRead("user:charlie", "document:doc1"); got == rebac.AccessDenied {
		t.Error("charlie is a viewer of doc1")
	}
	if got := c.FilteredRead("user:eve", "document:doc3"); got != rebac.AccessDenied {
		t.Errorf("eve got %q for the confidential doc, want the sentinel", got)
	}
}

func TestTupleExport(t *testing.T) {
	store := rebac.NewStore()
	Seed(store)

	set := make(map[rebac.Tuple]bool)
	for tp := range store.Snapshot().Tuples() {
		set[tp] = true
	}

	want := []rebac.Tuple{
		{User: "user:diana", Relation: RelAdmin, Object: "organization:org1"},
		{User: "organization:org1", Relation: RelParentOrg, Object: "knowledge_base:kb1"},
		{User: "user:alice", Relation: RelCurator, Object: "knowledge_base:kb1"},
		{User: "knowledge_base:kb1", Relation: RelParentKB, Object: "document:doc1"},
		{User: "user:alice", Relation: RelOwner, Object: "document:doc1"},
		{User: "organization:org1", Relation: RelParentOrg, Object: "ai_model:model1"},
		{User: "knowledge_base:kb1", Relation: RelParentKB, Object: "rag_session:session1"},
		{User: "ai_model:model1", Relation: RelParentModel, Object: "rag_session:session1"},
		{User: "rag_session:session1", Relation: RelParentSession, Object: "rag_query:query1"},
		{User: "user:bob", Relation: RelInitiatedBy, Object: "rag_query:query1"},
		{User: "document:doc1", Relation: RelQueriedDocs, Object: "rag_query:query1"},
	}
	for _, tp := range want {
		if !set[tp] {
			t.Errorf("missing tuple %v", tp)
		}
	}
}
