package shared

import (
	"testing"

	"go.uber.org/zap"

	ferric "github.com/phi9t/ferric-continuum"
)

type dropRecorder struct {
	drops int
}

func (r *dropRecorder) OnLifecycleEvent(e ferric.Event) {
	if e.Component == "shared" && e.Type == ferric.EventDropped {
		r.drops++
	}
}

func TestNewHandle(t *testing.T) {
	before := InstanceCount()
	h := New(7)

	if h.Get() == nil || h.Get().ID() != 7 {
		t.Fatal("handle does not reference the resource")
	}
	if h.UseCount() != 1 {
		t.Fatalf("fresh handle use count %d, want 1", h.UseCount())
	}
	if InstanceCount() != before+1 {
		t.Fatalf("instance count %d, want %d", InstanceCount(), before+1)
	}

	h.Release()
	if InstanceCount() != before {
		t.Fatalf("instance count %d after release, want %d", InstanceCount(), before)
	}
}

func TestCloneSharesTheSameResource(t *testing.T) {
	h1 := New(1)
	h2 := h1.Clone()

	if h1.Get() != h2.Get() {
		t.Fatal("clone must reference the same resource")
	}
	if h1.UseCount() != 2 || h2.UseCount() != 2 {
		t.Fatalf("use counts %d/%d, want 2/2", h1.UseCount(), h2.UseCount())
	}

	h2.Release()
	if h1.UseCount() != 1 {
		t.Fatalf("use count %d after dropping clone, want 1", h1.UseCount())
	}
	h1.Release()
}

func TestShareResource(t *testing.T) {
	h := New(42)
	copies := ShareResource(h, 3)

	if len(copies) != 3 {
		t.Fatalf("expected 3 handles, got %d", len(copies))
	}
	if h.UseCount() != 4 {
		t.Fatalf("use count %d, want 4", h.UseCount())
	}

	for _, c := range copies {
		c.Release()
	}
	if h.UseCount() != 1 {
		t.Fatalf("use count %d after dropping copies, want 1", h.UseCount())
	}
	h.Release()
}

func TestShareResourceCumulative(t *testing.T) {
	h := New(9)
	a := ShareResource(h, 2)
	b := ShareResource(h, 2)

	if h.UseCount() != 5 {
		t.Fatalf("repeated sharing must be cumulative: use count %d, want 5", h.UseCount())
	}

	for _, c := range append(a, b...) {
		c.Release()
	}
	h.Release()
}

func TestShareResourceZeroCopies(t *testing.T) {
	h := New(3)
	copies := ShareResource(h, 0)
	if len(copies) != 0 {
		t.Fatalf("expected no handles, got %d", len(copies))
	}
	if h.UseCount() != 1 {
		t.Fatalf("use count %d, want 1", h.UseCount())
	}
	h.Release()
}

func TestResourceDroppedExactlyOnce(t *testing.T) {
	rec := &dropRecorder{}
	ferric.Subscribe(rec)
	defer ferric.Unsubscribe(rec)

	h := New(5)
	copies := ShareResource(h, 3)

	h.Release()
	if rec.drops != 0 {
		t.Fatal("resource dropped while handles remain")
	}

	for _, c := range copies {
		c.Release()
	}
	if rec.drops != 1 {
		t.Fatalf("expected exactly one drop, got %d", rec.drops)
	}

	// double release of every handle: no second drop
	h.Release()
	for _, c := range copies {
		c.Release()
	}
	if rec.drops != 1 {
		t.Fatalf("double release destroyed the resource again: %d drops", rec.drops)
	}
}

func TestReleasedHandleIsInert(t *testing.T) {
	h := New(11)
	h.Release()

	if h.Get() != nil {
		t.Fatal("released handle must not expose the resource")
	}
	if h.UseCount() != 0 {
		t.Fatalf("released handle use count %d, want 0", h.UseCount())
	}
	if c := h.Clone(); c.Get() != nil || c.UseCount() != 0 {
		t.Fatal("clone of a released handle must be released")
	}
}

func TestInstanceCountReturnsToBaseline(t *testing.T) {
	before := InstanceCount()

	func() {
		h := New(100)
		copies := ShareResource(h, 5)
		for _, c := range copies {
			c.Release()
		}
		h.Release()
	}()

	if InstanceCount() != before {
		t.Fatalf("instance count %d, want baseline %d", InstanceCount(), before)
	}
}

func TestDemoRunsSilently(t *testing.T) {
	Demo(zap.NewNop())
}
