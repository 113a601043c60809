package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.Random("x"), b.Random("y"); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestLabelsDoNotAffectValues(t *testing.T) {
	a := New(7)
	b := New(7)

	av := a.Random("backlash_check:p1")
	bv := b.Random("completely_different")
	if av != bv {
		t.Fatalf("label changed the value: %v vs %v", av, bv)
	}
}

func TestCallLogRecordsSequence(t *testing.T) {
	s := New(1)
	s.Random("first")
	s.Random("second")
	s.PickIndex(5, "third")

	calls := s.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	for i, c := range calls {
		if c.Seq != i {
			t.Fatalf("call %d has seq %d", i, c.Seq)
		}
	}
	if calls[0].Label != "first" || calls[2].Label != "third" {
		t.Fatalf("labels not recorded: %+v", calls)
	}
}

func TestPickIndexConsumesOneDraw(t *testing.T) {
	a := New(9)
	b := New(9)

	a.PickIndex(3, "small")
	b.PickIndex(3000, "large")

	if a.CallCount() != 1 || b.CallCount() != 1 {
		t.Fatalf("expected one draw each, got %d and %d", a.CallCount(), b.CallCount())
	}
	if av, bv := a.Random("next"), b.Random("next"); av != bv {
		t.Fatalf("list size shifted the stream: %v vs %v", av, bv)
	}
}

func TestPickIndexBounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		idx := s.PickIndex(4, "bounds")
		if idx < 0 || idx >= 4 {
			t.Fatalf("index %d out of [0, 4)", idx)
		}
	}
	if s.PickIndex(0, "empty") != 0 {
		t.Fatal("empty range should return 0")
	}
}

func TestPickReturnsElement(t *testing.T) {
	s := New(11)
	list := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(s, list, "pick")] = true
	}
	for _, want := range list {
		if !seen[want] {
			t.Fatalf("element %q never picked in 200 draws", want)
		}
	}
}
