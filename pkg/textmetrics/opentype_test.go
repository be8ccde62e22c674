package textmetrics

import "testing"

func TestOpenTypeMeasure(t *testing.T) {
	o, err := NewOpenType()
	if err != nil {
		t.Fatalf("NewOpenType() error: %v", err)
	}
	defer o.Close()

	f := Font{Size: 8}
	short, err := o.MeasureWidth("Sales", f)
	if err != nil {
		t.Fatal(err)
	}
	long, _ := o.MeasureWidth("Sales by region", f)
	if short <= 0 || long <= short {
		t.Errorf("MeasureWidth: short=%v long=%v, want 0 < short < long", short, long)
	}

	bold, _ := o.MeasureWidth("Sales", Font{Size: 8, Bold: true})
	if bold < short {
		t.Errorf("bold width %v should not be narrower than regular %v", bold, short)
	}

	bigger, _ := o.MeasureWidth("Sales", Font{Size: 16})
	if bigger <= short {
		t.Errorf("16pt width %v should exceed 8pt width %v", bigger, short)
	}
}

func TestOpenTypeHeight(t *testing.T) {
	o, err := NewOpenType()
	if err != nil {
		t.Fatal(err)
	}
	h, err := o.EstimateHeight(Font{Size: 12})
	if err != nil {
		t.Fatal(err)
	}
	if h < 12 || h > 32 {
		t.Errorf("EstimateHeight(12pt) = %v, want a line height near 16px", h)
	}
}

func TestOpenTypeTruncate(t *testing.T) {
	o, err := NewOpenType()
	if err != nil {
		t.Fatal(err)
	}
	f := Font{Size: 8}
	text := "A label that is far too long for its slot"

	got, err := o.Truncate(text, f, 60)
	if err != nil {
		t.Fatal(err)
	}
	if !IsTruncated(text, got) {
		t.Fatalf("Truncate() = %q, want an ellipsis form", got)
	}
	w, _ := o.MeasureWidth(got, f)
	if w > 60 {
		t.Errorf("truncated width = %v, want <= 60", w)
	}

	same, _ := o.Truncate("ok", f, 60)
	if same != "ok" {
		t.Errorf("Truncate(short) = %q, want unchanged", same)
	}
}

func TestNewOpenTypeFromDataRejectsGarbage(t *testing.T) {
	if _, err := NewOpenTypeFromData([]byte("nope"), []byte("nope")); err == nil {
		t.Error("NewOpenTypeFromData() should fail on invalid font data")
	}
}
