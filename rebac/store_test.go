package rebac

import (
	"fmt"
	"sync"
	"testing"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("account", "acc1").WithName("Checking"))

	e, ok := s.Get("account", "acc1")
	if !ok {
		t.Fatal("acc1 not found")
	}
	if e.Name != "Checking" {
		t.Errorf("Name = %q, want Checking", e.Name)
	}
	if _, ok := s.Get("account", "acc9"); ok {
		t.Error("acc9 should not exist")
	}
	if _, ok := s.Get("loan", "acc1"); ok {
		t.Error("lookup is keyed by type and id together")
	}
}

func TestStorePutIsUpsert(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("branch", "branch1").WithName("Downtown"))
	s.Put(NewEntity("branch", "branch1").WithName("Uptown"))

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	e, _ := s.Get("branch", "branch1")
	if e.Name != "Uptown" {
		t.Errorf("Name = %q, want Uptown", e.Name)
	}
}

func TestStoreIgnoresInvalidEntities(t *testing.T) {
	s := NewStore()
	s.Put(nil)
	s.Put(NewEntity("", "x"))
	s.Put(NewEntity("account", ""))
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStorePutClonesEntity(t *testing.T) {
	s := NewStore()
	e := NewEntity("account", "acc1").AddRelation("owner", "alice")
	s.Put(e)

	// Mutating the caller's entity after Put must not affect the store.
	e.AddRelation("owner", "mallory")

	stored, _ := s.Get("account", "acc1")
	if stored.HasRelation("owner", "mallory") {
		t.Error("store observed mutation of the caller's entity after Put")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("document", "doc1"))

	before := s.Snapshot()
	s.Put(NewEntity("document", "doc2"))
	after := s.Snapshot()

	if before.Len() != 1 {
		t.Errorf("snapshot taken before write has Len = %d, want 1", before.Len())
	}
	if after.Len() != 2 {
		t.Errorf("snapshot taken after write has Len = %d, want 2", after.Len())
	}
	if _, ok := before.Get("document", "doc2"); ok {
		t.Error("old snapshot observed a later write")
	}
}

func TestSnapshotOfTypeSorted(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"doc3", "doc1", "doc2"} {
		s.Put(NewEntity("document", id))
	}
	s.Put(NewEntity("account", "acc1"))

	docs := s.Snapshot().OfType("document")
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3", len(docs))
	}
	for i, want := range []string{"doc1", "doc2", "doc3"} {
		if docs[i].ID != want {
			t.Errorf("docs[%d].ID = %s, want %s", i, docs[i].ID, want)
		}
	}
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	s := NewStore()
	s.Put(NewEntity("account", "acc0").AddRelation("owner", "alice"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Put(NewEntity("account", fmt.Sprintf("acc%d-%d", i, j)).AddRelation("owner", "alice"))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := s.Snapshot()
				if e, ok := snap.Get("account", "acc0"); !ok || !e.HasRelation("owner", "alice") {
					t.Error("snapshot lost a previously written entity")
					return
				}
			}
		}()
	}
	wg.Wait()
}
