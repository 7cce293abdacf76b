package genai

import "github.com/kbukum/authzkit/rebac"

// Seed populates the store with the reference genai graph: one organization,
// one knowledge base with three documents of decreasing openness, one model,
// one session and one query.
func Seed(store *rebac.Store) {
	g := NewGraph(store)

	g.AddUser("alice", "Alice Smith", "alice@company.com", "curator")
	g.AddUser("bob", "Bob Johnson", "bob@company.com", "contributor")
	g.AddUser("charlie", "Charlie Brown", "charlie@company.com", "reader")
	g.AddUser("diana", "Diana Prince", "diana@company.com", "admin")
	g.AddUser("eve", "Eve Adams", "eve@company.com", "model_operator")

	g.AddOrganization("org1", "TechCorp AI Division",
		[]string{"diana"},
		[]string{"alice", "bob", "charlie", "eve"})

	g.AddKnowledgeBase("kb1", "Technical Documentation",
		"Technical documentation and best practices", "org1",
		[]string{"alice"}, []string{"bob"}, []string{"charlie"})

	g.AddDocument(Document{
		ID: "doc1", Title: "API Documentation",
		Content: "Comprehensive API documentation for the system",
		KBID:    "kb1", OwnerID: "alice",
		Editors: []string{"bob"}, Viewers: []string{"charlie"},
		Tags: []string{"api", "documentation"},
	})
	g.AddDocument(Document{
		ID: "doc2", Title: "Security Guidelines",
		Content: "Security best practices and guidelines",
		KBID:    "kb1", OwnerID: "alice",
		Viewers: []string{"bob", "charlie"},
		Tags:    []string{"security", "guidelines"},
	})
	// doc3 has no explicit viewers or editors: confidential-default.
	g.AddDocument(Document{
		ID: "doc3", Title: "Internal Process",
		Content: "Internal company processes - confidential",
		KBID:    "kb1", OwnerID: "diana",
		Tags:    []string{"internal", "confidential"},
	})

	g.AddModel("model1", "RAG-GPT-4", "language_model", "org1",
		[]string{"eve"}, []string{"alice", "bob", "charlie"})

	g.AddSession("session1", "API Help Session", "kb1", "model1",
		"bob", []string{"charlie"})

	g.AddQuery(Query{
		ID: "query1", SessionID: "session1", InitiatedBy: "bob",
		QueryText:   "How do I authenticate with the API?",
		DocumentIDs: []string{"doc1"},
		Response:    "To authenticate with the API, you need to use OAuth 2.0...",
		Confidence:  0.95,
	})
}
