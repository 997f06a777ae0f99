package model

import "testing"

func TestTimeAxisAllAbsent(t *testing.T) {
	store := NewStore(testGrid(100))
	ch, err := store.Create("RF")
	if err != nil {
		t.Fatal(err)
	}
	visible := TimeAxis(ch)
	for i, v := range visible {
		if !v {
			t.Fatalf("baseline invisible at %d on an empty channel", i)
		}
	}
}

func TestTimeAxisSingleActiveRegion(t *testing.T) {
	store := NewStore(testGrid(100))
	ch, err := store.Create("G")
	if err != nil {
		t.Fatal(err)
	}
	if err := ch.Add(pulse{30, 59}); err != nil {
		t.Fatal(err)
	}

	visible := TimeAxis(ch)
	for i, v := range visible {
		// the all-absent mask is dilated by one, so the edge samples of
		// the active region still carry the baseline
		want := i <= 30 || i >= 59
		if v != want {
			t.Errorf("baseline visibility at %d = %v, want %v", i, v, want)
		}
	}
}

func TestTimeAxisMultipleChannels(t *testing.T) {
	store := NewStore(testGrid(100))
	rf, err := store.Create("RF")
	if err != nil {
		t.Fatal(err)
	}
	adc, err := store.Create("ADC")
	if err != nil {
		t.Fatal(err)
	}
	if err := rf.Add(pulse{10, 19}); err != nil {
		t.Fatal(err)
	}
	if err := adc.Add(pulse{40, 49}); err != nil {
		t.Fatal(err)
	}

	visible := TimeAxis(rf, adc)
	for i, v := range visible {
		want := i <= 10 || (i >= 19 && i <= 40) || i >= 49
		if v != want {
			t.Errorf("baseline visibility at %d = %v, want %v", i, v, want)
		}
	}
}

func TestTimeAxisCoversOverlayVariants(t *testing.T) {
	store := NewStore(testGrid(100))
	ch, err := store.Create("Phase")
	if err != nil {
		t.Fatal(err)
	}
	// a zero amplitude still counts as an event
	if err := ch.Add(pulse{20, 39}, -1, 0, 1); err != nil {
		t.Fatal(err)
	}
	visible := TimeAxis(ch)
	if visible[30] {
		t.Error("baseline visible under an active zero-amplitude variant")
	}
}
