package evaluator

import "testing"

func TestCollectFreesUnreachable(t *testing.T) {
	h := NewHeap()
	kept := h.AllocList([]Value{NumValue(1)})
	dropped := h.AllocList([]Value{NumValue(2)})

	h.Collect([]Value{ListValue(kept)})

	if h.List(kept) == nil {
		t.Fatal("reachable list was swept")
	}
	if h.List(dropped) != nil {
		t.Fatal("unreachable list survived")
	}

	// the swept slot is first in line for reuse
	if got := h.AllocList(nil); got != dropped {
		t.Errorf("got handle %d, want reused %d", got, dropped)
	}
}

func TestCollectFollowsNestedContainers(t *testing.T) {
	h := NewHeap()
	inner := h.AllocRecord(map[string]Value{"ক": NumValue(1)})
	outer := h.AllocList([]Value{RecordValue(inner)})

	h.Collect([]Value{ListValue(outer)})

	if h.Record(inner) == nil {
		t.Fatal("record reachable through a list was swept")
	}
}

func TestCollectTerminatesOnCycles(t *testing.T) {
	h := NewHeap()
	a := h.AllocList(nil)
	b := h.AllocList(nil)
	h.SetList(a, []Value{ListValue(b)})
	h.SetList(b, []Value{ListValue(a)})

	h.Collect([]Value{ListValue(a)})

	if h.List(a) == nil || h.List(b) == nil {
		t.Fatal("cyclic pair was swept while reachable")
	}

	h.Collect(nil)
	if h.List(a) != nil || h.List(b) != nil {
		t.Fatal("unreachable cycle survived")
	}
}

func TestCollectTwiceDoesNotDuplicateFreeSlots(t *testing.T) {
	h := NewHeap()
	h.AllocList(nil)
	h.AllocList(nil)

	h.Collect(nil)
	h.Collect(nil)

	a := h.AllocList(nil)
	b := h.AllocList(nil)
	if a == b {
		t.Fatalf("free stack handed out handle %d twice", a)
	}
}

func TestCollectKeepsRecordValues(t *testing.T) {
	h := NewHeap()
	inner := h.AllocList([]Value{NumValue(1)})
	outer := h.AllocRecord(map[string]Value{"ভেতর": ListValue(inner)})

	h.Collect([]Value{RecordValue(outer)})

	if h.List(inner) == nil {
		t.Fatal("list reachable through a record field was swept")
	}
}
