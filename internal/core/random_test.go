package core

import "testing"

func TestRandomDeterminism(t *testing.T) {
	a := NewRandom(99)
	b := NewRandom(99)

	for i := 0; i < 100; i++ {
		if x, y := a.Float(10), b.Float(10); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(7)

	for i := 0; i < 1000; i++ {
		if v := r.FloatRange(-0.8, 0.9); v < -0.8 || v >= 0.9 {
			t.Fatalf("FloatRange out of range: %f", v)
		}
		if v := r.IntRange(8, 10); v < 8 || v > 10 {
			t.Fatalf("IntRange out of range: %d", v)
		}
		if v := r.IntRange(3, 3); v != 3 {
			t.Fatalf("IntRange(3, 3) = %d, expected 3", v)
		}
	}
}

func TestRandomReseed(t *testing.T) {
	r := NewRandom(1)
	first := r.Float(1)
	r.Float(1)
	r.Reseed(1)

	if got := r.Float(1); got != first {
		t.Errorf("after Reseed got %f, expected %f", got, first)
	}
}

func TestInputSteer(t *testing.T) {
	in := NewInputFrame()
	if in.Steer() != 0 {
		t.Errorf("empty frame should not steer")
	}
	in.Set(ActionLeft)
	if in.Steer() != -1 {
		t.Errorf("left should steer -1, got %v", in.Steer())
	}
	in.Set(ActionRight)
	if in.Steer() != 0 {
		t.Errorf("left+right should cancel, got %v", in.Steer())
	}
}
