package rebac

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		input   string
		want    Ref
		wantErr bool
	}{
		{"account:acc1", Ref{Type: "account", ID: "acc1"}, false},
		{"user:alice", Ref{Type: "user", ID: "alice"}, false},
		{"rag_query:query1", Ref{Type: "rag_query", ID: "query1"}, false},
		{"doc:a:b", Ref{Type: "doc", ID: "a:b"}, false},
		{"noseparator", Ref{}, true},
		{":acc1", Ref{}, true},
		{"account:", Ref{}, true},
		{"", Ref{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseRef(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseRef(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseRef(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRefString(t *testing.T) {
	r := NewRef("branch", "branch1")
	if r.String() != "branch:branch1" {
		t.Errorf("String() = %q, want branch:branch1", r.String())
	}
	if UserRef("alice").String() != "user:alice" {
		t.Errorf("UserRef = %q", UserRef("alice").String())
	}
}

func TestEntityRelationSetSemantics(t *testing.T) {
	e := NewEntity("account", "acc1")
	e.AddRelation("owner", "alice")
	e.AddRelation("owner", "alice") // re-add is a no-op
	e.AddRelation("owner", "")      // empty ids are dropped

	if got := len(e.Relations["owner"]); got != 1 {
		t.Errorf("len(owner) = %d, want 1", got)
	}
	if !e.HasRelation("owner", "alice") {
		t.Error("alice should be an owner")
	}
	if e.HasRelation("owner", "bob") {
		t.Error("bob should not be an owner")
	}
	if e.HasRelation("co_owner", "alice") {
		t.Error("unknown relation list should be empty")
	}
}

func TestEntityRelationsEmpty(t *testing.T) {
	e := NewEntity("document", "doc3")
	if !e.RelationsEmpty("viewer", "editor") {
		t.Error("fresh entity should have empty relation lists")
	}
	e.AddRelation("viewer", "charlie")
	if e.RelationsEmpty("viewer", "editor") {
		t.Error("viewer list is non-empty")
	}
}

func TestEntityCloneIsolation(t *testing.T) {
	e := NewEntity("document", "doc1").
		SetParent("parent_kb", NewRef("knowledge_base", "kb1")).
		AddRelation("editor", "bob").
		AddLink("cites", NewRef("document", "doc2")).
		SetAttr("tag", "api")

	c := e.clone()
	e.AddRelation("editor", "mallory")
	e.SetAttr("tag", "changed")
	e.AddLink("cites", NewRef("document", "doc9"))

	if c.HasRelation("editor", "mallory") {
		t.Error("clone observed mutation of the original's relations")
	}
	if c.Attr("tag") != "api" {
		t.Error("clone observed mutation of the original's attrs")
	}
	if len(c.Links["cites"]) != 1 {
		t.Error("clone observed mutation of the original's links")
	}
}
