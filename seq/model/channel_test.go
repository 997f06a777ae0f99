package model

import (
	"strings"
	"testing"
)

// pulse is a test waveform: unit amplitude over an inclusive index range.
type pulse struct {
	lo, hi int
}

func (p pulse) Name() string { return "pulse" }

func (p pulse) Samples(t []float64) []Sample {
	out := make([]Sample, len(t))
	for i := p.lo; i <= p.hi && i < len(t); i++ {
		out[i] = Value(1)
	}
	return out
}

func testGrid(n int) *TimeGrid {
	return Linspace(0, 1, n)
}

func TestFreshChannelAllAbsent(t *testing.T) {
	ch := newChannel("RF", testGrid(100))
	if ch.Variants() != 1 {
		t.Fatalf("fresh channel has %d variants, want 1", ch.Variants())
	}
	for i := 0; i < 100; i++ {
		if ch.At(i, 0).OK {
			t.Fatalf("sample %d present on a fresh channel", i)
		}
	}
	if _, _, ok := ch.Range(); ok {
		t.Error("fresh channel reports a value range")
	}
}

func TestAddNonOverlapping(t *testing.T) {
	ch := newChannel("G", testGrid(100))
	if err := ch.Add(pulse{10, 19}, -1); err != nil {
		t.Fatal(err)
	}
	if err := ch.Add(pulse{40, 49}, 0.5); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		s := ch.At(i, 0)
		switch {
		case i >= 10 && i <= 19:
			if s != Value(-1) {
				t.Errorf("sample %d = %v, want [-1]", i, s)
			}
		case i >= 40 && i <= 49:
			if s != Value(0.5) {
				t.Errorf("sample %d = %v, want [0.5]", i, s)
			}
		default:
			if s.OK {
				t.Errorf("sample %d = %v, want absent", i, s)
			}
		}
	}
}

func TestAddOrderIndependent(t *testing.T) {
	a, b := pulse{5, 14}, pulse{10, 29}

	first := newChannel("G", testGrid(50))
	if err := first.Add(a, 1); err != nil {
		t.Fatal(err)
	}
	if err := first.Add(b, 2); err != nil {
		t.Fatal(err)
	}

	second := newChannel("G", testGrid(50))
	if err := second.Add(b, 2); err != nil {
		t.Fatal(err)
	}
	if err := second.Add(a, 1); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		if first.At(i, 0) != second.At(i, 0) {
			t.Errorf("sample %d differs by order: %v vs %v", i, first.At(i, 0), second.At(i, 0))
		}
	}
	// overlap sums silently
	if got := first.At(12, 0); got != Value(3) {
		t.Errorf("overlapping sample = %v, want [3]", got)
	}
}

func TestAddBroadcastsAmplitudeVector(t *testing.T) {
	ch := newChannel("Phase", testGrid(200))
	ampls := []float64{-1, -0.5, 0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}
	if err := ch.Add(pulse{50, 99}, ampls...); err != nil {
		t.Fatal(err)
	}
	if ch.Variants() != 10 {
		t.Fatalf("channel has %d variants, want 10", ch.Variants())
	}
	for j, a := range ampls {
		for i := 0; i < 200; i++ {
			s := ch.At(i, j)
			if i >= 50 && i <= 99 {
				if s != Value(a) {
					t.Fatalf("variant %d sample %d = %v, want [%g]", j, i, s, a)
				}
			} else if s.OK {
				t.Fatalf("variant %d sample %d = %v, want absent", j, i, s)
			}
		}
	}

	// a later scalar element applies to every variant
	if err := ch.Add(pulse{150, 159}, 7); err != nil {
		t.Fatal(err)
	}
	for j := range ampls {
		if got := ch.At(155, j); got != Value(7) {
			t.Errorf("variant %d sample 155 = %v, want [7]", j, got)
		}
	}
}

func TestAddBroadcastMismatch(t *testing.T) {
	ch := newChannel("Phase", testGrid(50))
	if err := ch.Add(pulse{0, 9}, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	err := ch.Add(pulse{20, 29}, 1, 2)
	if err == nil {
		t.Fatal("broadcasting 2 amplitudes against 3 variants did not fail")
	}
}

func TestAddLengthMismatch(t *testing.T) {
	ch := newChannel("G", testGrid(50))
	bad := badLength{}
	if err := ch.Add(bad); err == nil {
		t.Fatal("generator with wrong output length did not fail")
	}
}

type badLength struct{}

func (badLength) Name() string                 { return "bad" }
func (badLength) Samples(t []float64) []Sample { return make([]Sample, 3) }

func TestStoreLookup(t *testing.T) {
	store := NewStore(testGrid(50))
	if _, err := store.Create("FEG"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Create("FEG"); err == nil {
		t.Error("duplicate create did not fail")
	}
	if _, err := store.Channel("PEG"); err == nil || !strings.Contains(err.Error(), "PEG") {
		t.Errorf("unknown channel lookup: %v", err)
	}
	if err := store.AddElement("PEG", pulse{0, 1}); err == nil {
		t.Error("AddElement on unknown channel did not fail")
	}
	if err := store.AddElement("FEG", pulse{0, 9}); err != nil {
		t.Fatal(err)
	}
}

func TestChannelString(t *testing.T) {
	store := NewStore(testGrid(50))
	ch, err := store.Create("FEG")
	if err != nil {
		t.Fatal(err)
	}
	_ = ch.Add(pulse{0, 4})
	_ = ch.Add(pulse{10, 14})
	want := `channel "FEG" with [pulse pulse]`
	if got := ch.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
