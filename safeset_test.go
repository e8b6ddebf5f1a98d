package antglob

import (
	"sync"
	"testing"
)

func TestStoreBasicOperations(t *testing.T) {
	s := NewStore()
	if !s.Empty() {
		t.Fatalf("expected a new Store to be empty")
	}

	p, err := Compile("*.go")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	s.Append(p.Pattern)
	if s.Empty() {
		t.Fatalf("expected Store not to be empty after Append")
	}
	if n := len(s.Patterns()); n != 1 {
		t.Fatalf("expected one Pattern, got %d", n)
	}

	if !s.MatchFile([]string{"main.go"}) {
		t.Errorf("expected main.go to match *.go")
	}
	if s.MatchFile([]string{"main.py"}) {
		t.Errorf("expected main.py not to match *.go")
	}

	if !s.Remove(p.Pattern) {
		t.Errorf("expected Remove to report true for an existing Pattern")
	}
	if !s.Empty() {
		t.Errorf("expected Store to be empty after removing its only Pattern")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			p, err := Compile("*.go")
			if err != nil {
				t.Errorf("Compile failed: %v", err)
				return
			}
			s.Append(p.Pattern)
		}(i)
		go func() {
			defer wg.Done()
			s.MatchFile([]string{"main.go"})
			s.Patterns()
			s.Empty()
			s.AllFiles()
		}()
	}
	wg.Wait()

	if n := len(s.Patterns()); n != goroutines {
		t.Errorf("expected %d Patterns after concurrent Append, got %d", goroutines, n)
	}
}

func TestStoreMatchFiles(t *testing.T) {
	s := NewStore()
	goFiles, err := Compile("*.go")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	s.Extend(goFiles.Pattern)

	unmatched := map[string]bool{"a.go": true, "b.txt": true}
	matched := map[string]bool{}
	s.MatchFiles(matched, unmatched)

	if !matched["a.go"] {
		t.Errorf("expected a.go to be matched")
	}
	if matched["b.txt"] {
		t.Errorf("expected b.txt not to be matched")
	}
}
