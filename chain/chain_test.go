package chain

import (
	"testing"

	"go.uber.org/zap"

	ferric "github.com/phi9t/ferric-continuum"
)

type dropRecorder struct {
	dropped []int
}

func (r *dropRecorder) OnLifecycleEvent(e ferric.Event) {
	if e.Component == "chain" && e.Type == ferric.EventDropped {
		r.dropped = append(r.dropped, e.Value.(int))
	}
}

func TestCreateListEmpty(t *testing.T) {
	head := CreateList(nil)
	if head != nil {
		t.Fatal("empty input must yield the empty sentinel")
	}
	if CountNodes(head) != 0 {
		t.Fatal("sentinel must count zero nodes")
	}
}

func TestCreateListOrder(t *testing.T) {
	head := CreateList([]int{1, 2, 3, 4, 5})
	if got := CountNodes(head); got != 5 {
		t.Fatalf("expected 5 nodes, got %d", got)
	}

	want := []int{1, 2, 3, 4, 5}
	i := 0
	for n := head; n != nil; n = n.Next() {
		if n.Value() != want[i] {
			t.Fatalf("node %d: value %d, want %d", i, n.Value(), want[i])
		}
		i++
	}
}

func TestAppendTransfersToTail(t *testing.T) {
	head := CreateList([]int{10, 20, 30})
	head.Append(New(40))

	if got := CountNodes(head); got != 4 {
		t.Fatalf("expected 4 nodes, got %d", got)
	}

	tail := head
	for tail.Next() != nil {
		tail = tail.Next()
	}
	if tail.Value() != 40 {
		t.Fatalf("tail value %d, want 40", tail.Value())
	}

	// appending nil is a no-op
	head.Append(nil)
	if CountNodes(head) != 4 {
		t.Fatal("appending nil changed the chain")
	}
}

func TestAppendLongChain(t *testing.T) {
	head := New(0)
	for i := 1; i < 10000; i++ {
		head.Append(New(i))
	}
	if got := CountNodes(head); got != 10000 {
		t.Fatalf("expected 10000 nodes, got %d", got)
	}
}

func TestTakeLeavesSourceEmpty(t *testing.T) {
	head := CreateList([]int{10, 20, 30})
	moved := head.Take()

	if CountNodes(head) != 0 {
		t.Fatal("moved-from head must observe as the empty sentinel")
	}
	if got := CountNodes(moved); got != 3 {
		t.Fatalf("destination owns %d nodes, want 3", got)
	}
	if moved.Value() != 10 || moved.Next().Value() != 20 {
		t.Fatal("values lost in transfer")
	}

	// taking again from the moved-from head yields the sentinel
	if head.Take() != nil {
		t.Fatal("double take must yield the sentinel")
	}
}

func TestReleaseDropsEveryNodeExactlyOnce(t *testing.T) {
	rec := &dropRecorder{}
	ferric.Subscribe(rec)
	defer ferric.Unsubscribe(rec)

	head := CreateList([]int{1, 2, 3, 4, 5})
	head.Release()

	if len(rec.dropped) != 5 {
		t.Fatalf("expected 5 drop events, got %d", len(rec.dropped))
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if rec.dropped[i] != v {
			t.Fatalf("drop order: got %v", rec.dropped)
		}
	}

	// double release is a no-op
	head.Release()
	if len(rec.dropped) != 5 {
		t.Fatalf("double release fired %d extra drops", len(rec.dropped)-5)
	}
}

func TestReleaseSentinel(t *testing.T) {
	var head *Node
	head.Release() // no-op, no panic
}

func TestDemoRunsSilently(t *testing.T) {
	Demo(zap.NewNop())
}
