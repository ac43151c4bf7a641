package manager

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewCountsDefaultConstruction(t *testing.T) {
	ResetStats()
	m := New(100)

	if m.Size() != 100 || !m.IsValid() {
		t.Fatalf("size=%d valid=%v", m.Size(), m.IsValid())
	}
	if DefaultConstructions() != 1 {
		t.Fatalf("default constructions %d, want 1", DefaultConstructions())
	}
}

func TestZeroSizeIsValidButEmpty(t *testing.T) {
	m := New(0)
	if m.Size() != 0 {
		t.Fatalf("size %d, want 0", m.Size())
	}
	if m.IsValid() {
		t.Fatal("zero-size manager must report no storage")
	}
}

func TestCloneIsDeep(t *testing.T) {
	ResetStats()
	m1 := New(10)
	m1.Set(0, 7)
	m2 := m1.Clone()

	if CopyConstructions() != 1 {
		t.Fatalf("copy constructions %d, want 1", CopyConstructions())
	}
	if m2.At(0) != 7 {
		t.Fatal("clone missing contents")
	}

	m2.Set(0, 9)
	if m1.At(0) != 7 {
		t.Fatal("clone shares storage with original")
	}
}

func TestTakeInvalidatesSource(t *testing.T) {
	ResetStats()
	r1 := New(100)
	r2 := r1.Take()

	if r1.IsValid() {
		t.Fatal("moved-from manager must be invalid")
	}
	if r1.Size() != 0 {
		t.Fatalf("moved-from size %d, want 0", r1.Size())
	}
	if r2.Size() != 100 {
		t.Fatalf("destination size %d, want 100", r2.Size())
	}
	if MoveConstructions() != 1 {
		t.Fatalf("move constructions %d, want 1", MoveConstructions())
	}
	if CopyConstructions() != 0 {
		t.Fatalf("move must not copy: %d", CopyConstructions())
	}
}

func TestCopyFromAndMoveFrom(t *testing.T) {
	m1 := New(10)
	m1.Set(3, 5)

	m2 := New(0)
	m2.CopyFrom(m1)
	if m2.Size() != 10 || m2.At(3) != 5 {
		t.Fatal("copy-assign lost contents")
	}
	if !m1.IsValid() {
		t.Fatal("copy-assign must leave the source intact")
	}

	m3 := New(0)
	m3.MoveFrom(m1)
	if m1.IsValid() || m3.Size() != 10 {
		t.Fatal("move-assign must transfer storage")
	}

	// self assignment: no-ops that preserve validity
	m3.CopyFrom(m3)
	m3.MoveFrom(m3)
	if m3.Size() != 10 || m3.At(3) != 5 {
		t.Fatal("self assignment must be a no-op")
	}
}

func TestDestroyCountsOnce(t *testing.T) {
	ResetStats()
	m := New(10)
	m.Destroy()

	if m.IsValid() {
		t.Fatal("destroyed manager must be invalid")
	}
	if Destructions() != 1 {
		t.Fatalf("destructions %d, want 1", Destructions())
	}

	m.Destroy()
	if Destructions() != 1 {
		t.Fatalf("double destroy counted: %d", Destructions())
	}
}

func TestFactoriesNeverCopy(t *testing.T) {
	ResetStats()

	m := Create(50)
	if m.Size() != 50 {
		t.Fatalf("size %d, want 50", m.Size())
	}

	batch := CreateBatch(4, 25)
	if len(batch) != 4 {
		t.Fatalf("batch len %d, want 4", len(batch))
	}
	for i, b := range batch {
		if b.Size() != 25 || !b.IsValid() {
			t.Fatalf("batch[%d]: size=%d valid=%v", i, b.Size(), b.IsValid())
		}
	}

	if CopyConstructions() != 0 {
		t.Fatalf("factories incurred %d copies", CopyConstructions())
	}
}

func TestMoveOnlyTransfer(t *testing.T) {
	r := NewMoveOnly("unique.db")
	if !r.IsValid() || r.Name() != "unique.db" {
		t.Fatalf("fresh: valid=%v name=%q", r.IsValid(), r.Name())
	}

	moved := r.Take()
	if r.IsValid() {
		t.Fatal("source must be invalid after move")
	}
	if !moved.IsValid() || moved.Name() != "unique.db" {
		t.Fatalf("destination: valid=%v name=%q", moved.IsValid(), moved.Name())
	}

	other := NewMoveOnly("other.db")
	other.MoveFrom(moved)
	if moved.IsValid() || !other.IsValid() || other.Name() != "unique.db" {
		t.Fatal("move-assign must transfer the resource")
	}

	other.MoveFrom(other)
	if !other.IsValid() {
		t.Fatal("self move must be a no-op")
	}
}

func TestDemoRunsSilently(t *testing.T) {
	Demo(zap.NewNop())
}
