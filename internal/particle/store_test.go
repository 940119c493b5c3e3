package particle

import "testing"

func TestAppendIncrementsLen(t *testing.T) {
	s := New(4)
	i, err := s.Append(Vec3{1, 2, 3}, Vec3{}, 1.0, Vec3{0.2, 0.5, 1}, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 0 {
		t.Errorf("expected first index 0, got %d", i)
	}
	if s.Len() != 1 {
		t.Errorf("expected Len() == 1, got %d", s.Len())
	}
	if s.Densities()[0] != 0 || s.Pressures()[0] != 0 || s.Forces()[0] != (Vec3{}) {
		t.Errorf("expected zero-initialized density/pressure/force")
	}
}

func TestAppendBeyondCapacity(t *testing.T) {
	s := New(1)
	if _, err := s.Append(Vec3{}, Vec3{}, 1, Vec3{}, 0); err != nil {
		t.Fatalf("unexpected error on first append: %v", err)
	}
	if _, err := s.Append(Vec3{}, Vec3{}, 1, Vec3{}, 0); err != ErrCapacity {
		t.Errorf("expected ErrCapacity, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() should remain 1 after failed append, got %d", s.Len())
	}
}

func TestSwapRemoveMiddle(t *testing.T) {
	s := New(3)
	s.Append(Vec3{0, 0, 0}, Vec3{}, 1, Vec3{}, 0)
	s.Append(Vec3{1, 1, 1}, Vec3{}, 2, Vec3{}, 0)
	s.Append(Vec3{2, 2, 2}, Vec3{}, 3, Vec3{}, 0)

	s.SwapRemove(0)

	if s.Len() != 2 {
		t.Fatalf("expected Len() == 2, got %d", s.Len())
	}
	if s.Positions()[0] != (Vec3{2, 2, 2}) {
		t.Errorf("expected last particle swapped into removed slot, got %v", s.Positions()[0])
	}
	if s.Masses()[0] != 3 {
		t.Errorf("expected mass 3 swapped into slot 0, got %v", s.Masses()[0])
	}
}

func TestSwapRemoveLast(t *testing.T) {
	s := New(2)
	s.Append(Vec3{0, 0, 0}, Vec3{}, 1, Vec3{}, 0)
	s.Append(Vec3{1, 1, 1}, Vec3{}, 2, Vec3{}, 0)

	s.SwapRemove(1)

	if s.Len() != 1 {
		t.Fatalf("expected Len() == 1, got %d", s.Len())
	}
	if s.Positions()[0] != (Vec3{0, 0, 0}) {
		t.Errorf("expected slot 0 unchanged, got %v", s.Positions()[0])
	}
}

func TestSwapRemoveOutOfRangeIsNoop(t *testing.T) {
	s := New(2)
	s.Append(Vec3{}, Vec3{}, 1, Vec3{}, 0)
	s.SwapRemove(5)
	if s.Len() != 1 {
		t.Errorf("out-of-range SwapRemove should be a no-op, Len() = %d", s.Len())
	}
}

func TestAccessorsReflectOnlyLiveRange(t *testing.T) {
	s := New(5)
	s.Append(Vec3{}, Vec3{}, 1, Vec3{}, 0)
	s.Append(Vec3{}, Vec3{}, 1, Vec3{}, 0)
	if len(s.Positions()) != 2 {
		t.Errorf("expected accessor length 2, got %d", len(s.Positions()))
	}
}
