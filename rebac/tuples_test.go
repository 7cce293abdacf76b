package rebac

import "testing"

func tupleSet(sn *Snapshot) map[Tuple]bool {
	set := make(map[Tuple]bool)
	for tp := range sn.Tuples() {
		set[tp] = true
	}
	return set
}

func TestTuplesMembership(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("branch", "branch1").
		SetParent("parent_bank", NewRef("bank", "bank1")).
		AddRelation("manager", "diana").
		AddRelation("teller", "charlie"))
	s.Put(NewEntity("account", "acc1").
		SetParent("parent_branch", NewRef("branch", "branch1")).
		AddRelation("owner", "alice").
		AddRelation("co_owner", "bob"))
	s.Put(NewEntity("rag_query", "query1").
		SetParent("parent_session", NewRef("rag_session", "session1")).
		AddRelation("initiated_by", "bob").
		AddLink("queried_documents", NewRef("document", "doc1")))

	set := tupleSet(s.Snapshot())

	want := []Tuple{
		{User: "bank:bank1", Relation: "parent_bank", Object: "branch:branch1"},
		{User: "user:diana", Relation: "manager", Object: "branch:branch1"},
		{User: "user:charlie", Relation: "teller", Object: "branch:branch1"},
		{User: "branch:branch1", Relation: "parent_branch", Object: "account:acc1"},
		{User: "user:alice", Relation: "owner", Object: "account:acc1"},
		{User: "user:bob", Relation: "co_owner", Object: "account:acc1"},
		{User: "rag_session:session1", Relation: "parent_session", Object: "rag_query:query1"},
		{User: "user:bob", Relation: "initiated_by", Object: "rag_query:query1"},
		{User: "document:doc1", Relation: "queried_documents", Object: "rag_query:query1"},
	}
	for _, tp := range want {
		if !set[tp] {
			t.Errorf("missing tuple %v", tp)
		}
	}
	if len(set) != len(want) {
		t.Errorf("tuple count = %d, want %d", len(set), len(want))
	}
}

func TestTuplesRestartable(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("account", "acc1").AddRelation("owner", "alice"))

	snap := s.Snapshot()
	first := tupleSet(snap)
	second := tupleSet(snap)

	if len(first) != len(second) {
		t.Fatalf("restarted iteration yielded %d tuples, want %d", len(second), len(first))
	}
	for tp := range first {
		if !second[tp] {
			t.Errorf("restarted iteration missing %v", tp)
		}
	}
}

func TestTuplesEarlyStop(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("account", "acc1").AddRelation("owner", "alice").AddRelation("co_owner", "bob"))

	count := 0
	for range s.Snapshot().Tuples() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break yielded %d tuples, want 1", count)
	}
}
