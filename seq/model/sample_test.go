package model

import (
	"math/rand"
	"testing"
)

func TestCombineIdentities(t *testing.T) {
	cases := []struct {
		a, b, want Sample
	}{
		{Absent(), Absent(), Absent()},
		{Absent(), Value(0), Value(0)},
		{Value(0), Absent(), Value(0)},
		{Absent(), Value(-2.5), Value(-2.5)},
		{Value(1), Value(2), Value(3)},
		{Value(1), Value(-1), Value(0)},
	}
	for i, c := range cases {
		if got := Combine(c.a, c.b); got != c.want {
			t.Errorf("case %d: Combine(%v, %v) = %v, want %v", i, c.a, c.b, got, c.want)
		}
	}
}

func randomSample(r *rand.Rand) Sample {
	if r.Intn(3) == 0 {
		return Absent()
	}
	return Value(r.NormFloat64())
}

func TestCombineCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(345))
	for i := 0; i < 1000; i++ {
		a, b := randomSample(r), randomSample(r)
		if Combine(a, b) != Combine(b, a) {
			t.Errorf("Combine(%v, %v) != Combine(%v, %v)", a, b, b, a)
		}
	}
}

func TestCombineAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(678))
	for i := 0; i < 1000; i++ {
		a, b, c := randomSample(r), randomSample(r), randomSample(r)
		left := Combine(Combine(a, b), c)
		right := Combine(a, Combine(b, c))
		if left.OK != right.OK {
			t.Fatalf("presence differs for %v, %v, %v", a, b, c)
		}
		// float addition is only approximately associative
		if left.OK && !approx(left.V, right.V, 1e-12) {
			t.Errorf("Combine not associative for %v, %v, %v: %v vs %v", a, b, c, left, right)
		}
	}
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestScale(t *testing.T) {
	if got := Absent().Scale(5); got.OK {
		t.Errorf("scaling absent produced %v", got)
	}
	if got := Value(2).Scale(-1.5); got != Value(-3) {
		t.Errorf("Value(2).Scale(-1.5) = %v", got)
	}
}
