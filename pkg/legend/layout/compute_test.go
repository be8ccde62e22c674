package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/model"
)

func TestComputeHorizontalFit(t *testing.T) {
	e := newTestEngine()
	label := "Alpha series one" // 96px, wider than the 60px budget
	data := model.Data{DataPoints: points(label, label, label, label, label)}

	l, st, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.NumberOfItems != 4 {
		t.Fatalf("NumberOfItems = %d, want 4", l.NumberOfItems)
	}
	for i, it := range l.Items {
		x := 85 * float64(i)
		if !near(it.Glyph.X, x+5) || !near(it.Glyph.Y, 9.4) {
			t.Errorf("item %d Glyph = %+v, want {%v 9.4}", i, it.Glyph, x+5)
		}
		if !near(it.Text.X, x+15) || !near(it.Text.Y, 12) {
			t.Errorf("item %d Text = %+v, want {%v 12}", i, it.Text, x+15)
		}
		if it.Label != "Alpha ser…" {
			t.Errorf("item %d Label = %q, want %q", i, it.Label, "Alpha ser…")
		}
		if it.Tooltip != label {
			t.Errorf("item %d Tooltip = %q, want original label", i, it.Tooltip)
		}
		if !it.Truncated {
			t.Errorf("item %d Truncated = false, want true", i)
		}
	}
	if st.WindowSize != 4 {
		t.Errorf("WindowSize = %d, want 4", st.WindowSize)
	}
	if len(l.NavigationArrows) != 1 || l.NavigationArrows[0].DataType != Increase {
		t.Fatalf("NavigationArrows = %+v, want one Increase arrow", l.NavigationArrows)
	}
	a := l.NavigationArrows[0]
	if a.X != 392.5 || a.Y != 4.5 {
		t.Errorf("arrow at (%v, %v), want (392.5, 4.5)", a.X, a.Y)
	}
	if a.Path != "M0 0 L0 15 L7.5 7.5 Z" || a.RotateTransform != "rotate(0 3.75 7.5)" {
		t.Errorf("arrow path/transform = %q %q", a.Path, a.RotateTransform)
	}
	if l.Footprint != (model.Viewport{Width: 400, Height: 24}) {
		t.Errorf("Footprint = %+v, want {400 24}", l.Footprint)
	}
	if l.Truncations != 4 {
		t.Errorf("Truncations = %d, want 4", l.Truncations)
	}
}

func TestComputeHorizontalShortLabelsKeepNaturalWidth(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("One", "Two", "Three")}

	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.NumberOfItems != 3 {
		t.Fatalf("NumberOfItems = %d, want 3", l.NumberOfItems)
	}
	// One: 18+25, Two: 18+25
	wantX := []float64{15, 58, 101}
	for i, it := range l.Items {
		if !near(it.Text.X, wantX[i]) {
			t.Errorf("item %d Text.X = %v, want %v", i, it.Text.X, wantX[i])
		}
		if it.Truncated || it.Label != data.DataPoints[i].Label {
			t.Errorf("item %d label changed to %q", i, it.Label)
		}
	}
	if len(l.NavigationArrows) != 0 {
		t.Errorf("NavigationArrows = %+v, want none", l.NavigationArrows)
	}
	if !near(l.Visible.Width, 141) {
		t.Errorf("Visible.Width = %v, want 141", l.Visible.Width)
	}
}

func TestComputeDeterministic(t *testing.T) {
	e := newTestEngine()
	data := model.Data{
		Title:       "Regions",
		DataPoints:  points("North", "South", "East and far east", "West", "Central"),
		PrimaryType: model.PrimaryValue,
	}
	vp := model.Viewport{Width: 300, Height: 60}
	for _, pos := range []model.Position{model.PositionTop, model.PositionRightCenter} {
		l1, s1, err1 := e.Compute(data, vp, NewState(pos), true)
		l2, s2, err2 := e.Compute(data, vp, NewState(pos), true)
		if err1 != nil || err2 != nil {
			t.Fatalf("Compute(%s) errors: %v, %v", pos, err1, err2)
		}
		if !reflect.DeepEqual(l1, l2) || !reflect.DeepEqual(s1, s2) {
			t.Errorf("Compute(%s) is not deterministic", pos)
		}
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	long := strings.Repeat("label ", 30)
	data := model.Data{Title: strings.Repeat("title ", 30), DataPoints: points(long, long)}
	before := data.Clone()

	if _, _, err := e.Compute(data, model.Viewport{Width: 200, Height: 200}, NewState(model.PositionLeft), true); err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !reflect.DeepEqual(before, data) {
		t.Error("Compute() modified its input data")
	}
}

func TestComputeEmptyData(t *testing.T) {
	e := newTestEngine()
	l, st, err := e.Compute(model.Data{Title: "ignored"}, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionLeft), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if st.Position != model.PositionNone || l.Position != model.PositionNone {
		t.Errorf("Position = %s/%s, want None", st.Position, l.Position)
	}
	if l.NumberOfItems != 0 || l.Title != nil || len(l.NavigationArrows) != 0 {
		t.Errorf("Layout = %+v, want empty", l)
	}
	if st.Footprint != (model.Viewport{}) {
		t.Errorf("Footprint = %+v, want {0 0}", st.Footprint)
	}
}

func TestComputeZeroViewport(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("a", "b")}
	for _, pos := range []model.Position{model.PositionTop, model.PositionLeft} {
		l, _, err := e.Compute(data, model.Viewport{}, NewState(pos), true)
		if err != nil {
			t.Fatalf("Compute(%s) error: %v", pos, err)
		}
		if l.NumberOfItems != 0 {
			t.Errorf("Compute(%s) NumberOfItems = %d, want 0", pos, l.NumberOfItems)
		}
	}
}

func TestComputeNeverFitsMoreThanPage(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("a", "b", "c", "d", "e", "f")}
	for _, w := range []float64{1, 5, 20, 50, 90, 150, 1000} {
		for _, pos := range []model.Position{model.PositionTop, model.PositionLeft} {
			st := NewState(pos)
			st.StartIndex = 2
			l, _, err := e.Compute(data, model.Viewport{Width: w, Height: w}, st, true)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if l.NumberOfItems < 0 || l.NumberOfItems > 4 {
				t.Errorf("width %v %s: NumberOfItems = %d, want within [0, 4]", w, pos, l.NumberOfItems)
			}
			if len(l.Items) != l.NumberOfItems {
				t.Errorf("width %v %s: %d items for NumberOfItems %d", w, pos, len(l.Items), l.NumberOfItems)
			}
		}
	}
}

func TestComputeDuplicateKey(t *testing.T) {
	e := newTestEngine()
	one, two := 1, 2
	ok := model.Data{DataPoints: []model.DataPoint{
		{Identity: "a", Label: "A", LayerNumber: &one},
		{Identity: "a", Label: "A", LayerNumber: &two},
	}}
	if _, _, err := e.Compute(ok, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true); err != nil {
		t.Errorf("Compute() with distinct layers error: %v", err)
	}

	dup := model.Data{DataPoints: []model.DataPoint{
		{Identity: "a", Label: "A"},
		{Identity: "a", Label: "B"},
	}}
	_, _, err := e.Compute(dup, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if !errors.Is(err, errors.ErrCodeDuplicateKey) {
		t.Errorf("Compute() error = %v, want %s", err, errors.ErrCodeDuplicateKey)
	}
}

func TestComputeMetricsFailure(t *testing.T) {
	e := New(DefaultConfig(), brokenMetrics{}, nil)
	data := model.Data{DataPoints: points("a")}
	prev := NewState(model.PositionTop)
	prev.StartIndex = 7

	l, st, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, prev, true)
	if !errors.Is(err, errors.ErrCodeMetrics) {
		t.Fatalf("Compute() error = %v, want %s", err, errors.ErrCodeMetrics)
	}
	if !reflect.DeepEqual(l, Layout{}) {
		t.Errorf("Compute() returned a partial layout: %+v", l)
	}
	if !reflect.DeepEqual(st, prev) {
		t.Errorf("state = %+v, want unchanged %+v", st, prev)
	}
}

func TestComputePrimaryMeasureRow(t *testing.T) {
	e := newTestEngine()
	pts := points("Sales", "Costs")
	pts[0].PrimaryMeasure, pts[0].PrimaryTrend = "12%", model.TrendUp
	pts[1].PrimaryMeasure = "3%"
	data := model.Data{DataPoints: pts, PrimaryType: model.PrimaryValue}

	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 80}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for i, it := range l.Items {
		if it.Primary == nil {
			t.Fatalf("item %d has no primary row", i)
		}
		if it.Primary.Pos.Y != 24 {
			t.Errorf("item %d primary Y = %v, want 24", i, it.Primary.Pos.Y)
		}
		if it.Secondary != nil {
			t.Errorf("item %d has a secondary row", i)
		}
	}
	first := l.Items[0].Primary
	if first.Trend != model.TrendUp {
		t.Errorf("Trend = %v, want up", first.Trend)
	}
	// text x 15, "12%" is 18px wide, gap 3
	if first.Indicator.X != 36 || first.Indicator.Y != 17 {
		t.Errorf("Indicator = %+v, want {36 17}", first.Indicator)
	}
	if l.Items[1].Primary.Trend.Visible() {
		t.Error("unset trend should not be visible")
	}
	if l.Footprint.Height != 36 {
		t.Errorf("Footprint.Height = %v, want 36", l.Footprint.Height)
	}
	// Sales (30px) + indicator allowance 15 + pad 25
	if !near(l.Items[1].Glyph.X, 70+5) {
		t.Errorf("second glyph X = %v, want 75", l.Items[1].Glyph.X)
	}
}

func TestComputeSecondaryRowsCollapse(t *testing.T) {
	e := newTestEngine()
	pts := points("A", "B")
	pts[0].SecondaryMeasure = "x"

	tests := []struct {
		name    string
		primary model.PrimaryType
		wantY   float64
		wantH   float64
	}{
		{"secondary only", model.PrimaryNone, 24, 36},
		{"primary and secondary", model.PrimaryBoth, 36, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Data{DataPoints: pts, PrimaryType: tt.primary}
			l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 80}, NewState(model.PositionBottom), true)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			sec := l.Items[0].Secondary
			if sec == nil {
				t.Fatal("secondary row missing")
			}
			if sec.Pos.Y != tt.wantY {
				t.Errorf("secondary Y = %v, want %v", sec.Pos.Y, tt.wantY)
			}
			if l.Items[1].Secondary == nil || l.Items[1].Secondary.Text != "" {
				t.Errorf("points without a secondary value still get an empty row")
			}
			if l.Footprint.Height != tt.wantH {
				t.Errorf("Footprint.Height = %v, want %v", l.Footprint.Height, tt.wantH)
			}
			if l.Anchor.Y != 80-tt.wantH {
				t.Errorf("Anchor.Y = %v, want %v", l.Anchor.Y, 80-tt.wantH)
			}
		})
	}
}

func TestComputeHorizontalTitle(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name      string
		width     float64
		wantText  string
		wantWidth float64
	}{
		// max = 400*0.3 - 20 - 10 = 90
		{"fits", 400, "Legend", 51},
		// max = 200*0.3 - 20 - 10 = 30
		{"truncated", 200, "Lege…", 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Data{Title: "Legend", DataPoints: points("a")}
			l, _, err := e.Compute(data, model.Viewport{Width: tt.width, Height: 50}, NewState(model.PositionTop), true)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if l.Title == nil {
				t.Fatal("Title = nil")
			}
			if l.Title.Text != tt.wantText || l.Title.Width != tt.wantWidth {
				t.Errorf("Title = %q width %v, want %q width %v", l.Title.Text, l.Title.Width, tt.wantText, tt.wantWidth)
			}
			if l.Title.Tooltip != "Legend" {
				t.Errorf("Title.Tooltip = %q, want %q", l.Title.Tooltip, "Legend")
			}
			if got := l.Items[0].Glyph.X; got != tt.wantWidth+5 {
				t.Errorf("first glyph X = %v, want %v", got, tt.wantWidth+5)
			}
		})
	}
}

func TestComputeMeasureTitlesTruncateIndependently(t *testing.T) {
	e := newTestEngine()
	pts := points("a")
	pts[0].PrimaryMeasure, pts[0].SecondaryMeasure = "1", "2"
	data := model.Data{
		Title:          "T",
		PrimaryTitle:   "Primary measure title",
		SecondaryTitle: "Sec",
		PrimaryType:    model.PrimaryValue,
		DataPoints:     pts,
	}
	l, _, err := e.Compute(data, model.Viewport{Width: 200, Height: 80}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	tl := l.Title
	if tl.Primary == nil || tl.Secondary == nil {
		t.Fatalf("measure titles missing: %+v", tl)
	}
	if tl.Text != "T" || tl.Secondary.Text != "Sec" {
		t.Errorf("short titles changed: %q %q", tl.Text, tl.Secondary.Text)
	}
	if tl.Primary.Text != "Prim…" {
		t.Errorf("Primary.Text = %q, want %q", tl.Primary.Text, "Prim…")
	}
	if tl.Width != 30+15 {
		t.Errorf("Width = %v, want 45", tl.Width)
	}
	if tl.Primary.Y != 24 || tl.Secondary.Y != 36 {
		t.Errorf("title rows at %v and %v, want 24 and 36", tl.Primary.Y, tl.Secondary.Y)
	}
}

func TestComputeVerticalLongLabel(t *testing.T) {
	e := newTestEngine()
	long := strings.Repeat("x", 84) // 504px
	data := model.Data{DataPoints: points(long)}

	l, st, err := e.Compute(data, model.Viewport{Width: 200, Height: 300}, NewState(model.PositionLeft), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.NumberOfItems != 1 {
		t.Fatalf("NumberOfItems = %d, want 1", l.NumberOfItems)
	}
	it := l.Items[0]
	// ceiling = 200*0.3 - 2*10 - 10 = 30
	if it.Label != "xxxx…" {
		t.Errorf("Label = %q, want %q", it.Label, "xxxx…")
	}
	if l.Footprint.Width != 60 || st.LastWidth != 60 {
		t.Errorf("width = %v (state %v), want 60", l.Footprint.Width, st.LastWidth)
	}
	if it.Glyph != (model.Point{X: 10, Y: 12}) {
		t.Errorf("Glyph = %+v, want {10 12}", it.Glyph)
	}
	if it.Text.X != 20 || !near(it.Text.Y, 12+32.0/3*0.35) {
		t.Errorf("Text = %+v", it.Text)
	}
}

func TestComputeVerticalShrinksToContent(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("A", "B")}
	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 300}, NewState(model.PositionRight), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	// 6px label + 2*10 icon shift + 10 edge margin
	if l.Footprint.Width != 36 {
		t.Errorf("Footprint.Width = %v, want 36", l.Footprint.Width)
	}
	if l.Anchor.X != 400-36 {
		t.Errorf("Anchor.X = %v, want %v", l.Anchor.X, 400-36)
	}
	if !near(l.Items[1].Glyph.Y-l.Items[0].Glyph.Y, 32.0/3+10) {
		t.Errorf("row pitch = %v, want %v", l.Items[1].Glyph.Y-l.Items[0].Glyph.Y, 32.0/3+10)
	}
}

func TestComputeVerticalFitAndFixedWidth(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("aa", "bb", "cc", "dd", "a much longer label", "ff", "gg")}
	vp := model.Viewport{Width: 400, Height: 100}

	l, st, err := e.Compute(data, vp, NewState(model.PositionLeft), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.NumberOfItems != 4 {
		t.Fatalf("NumberOfItems = %d, want 4", l.NumberOfItems)
	}
	if l.Footprint.Width != 42 {
		t.Errorf("Footprint.Width = %v, want 42", l.Footprint.Width)
	}

	l, st, err = e.Compute(data, vp, st.Advance(Increase), false)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.Footprint.Width != 42 {
		t.Errorf("paged Footprint.Width = %v, want 42", l.Footprint.Width)
	}
	// ceiling 42 - 20 - 10 = 12
	if got := l.Items[0].Label; got != "a…" {
		t.Errorf("paged label = %q, want %q", got, "a…")
	}
	if !l.HasPrevious() {
		t.Error("second page should show a Decrease arrow")
	}
	dec := l.NavigationArrows[0]
	if dec.X != 42.0/2-3.75 || dec.Y != 7.5 || dec.RotateTransform != "rotate(270 3.75 7.5)" {
		t.Errorf("Decrease arrow = %+v", dec)
	}
	if st.LastWidth != 42 {
		t.Errorf("LastWidth = %v, want 42", st.LastWidth)
	}
}

func TestComputeVerticalTitleRetruncated(t *testing.T) {
	e := newTestEngine()
	data := model.Data{Title: "Quarterly revenue", DataPoints: points("A")}
	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 300}, NewState(model.PositionLeft), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.Footprint.Width != 36 {
		t.Fatalf("Footprint.Width = %v, want 36", l.Footprint.Width)
	}
	if l.Title.Text != "Quart…" || l.Title.Width != 36 {
		t.Errorf("Title = %q width %v, want %q width 36", l.Title.Text, l.Title.Width, "Quart…")
	}
	if l.Items[0].Glyph.Y != 24 {
		t.Errorf("first glyph Y = %v, want 24", l.Items[0].Glyph.Y)
	}
}

func TestComputeNotScrollable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scrollable = false
	e := New(cfg, fixedMetrics{}, nil)
	label := "Alpha series one"
	data := model.Data{DataPoints: points(label, label, label, label, label, label)}

	l, st, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(l.NavigationArrows) != 0 {
		t.Errorf("NavigationArrows = %+v, want none", l.NavigationArrows)
	}
	if l.NumberOfItems != 4 || st.WindowSize != 4 {
		t.Errorf("NumberOfItems = %d WindowSize = %d, want 4 and 4", l.NumberOfItems, st.WindowSize)
	}
}

func TestComputeCentered(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("A")}

	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTopCenter), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.CenterOffset != (model.Point{X: (400 - 31) / 2.0}) {
		t.Errorf("CenterOffset = %+v, want {184.5 0}", l.CenterOffset)
	}

	l, _, err = e.Compute(data, model.Viewport{Width: 400, Height: 300}, NewState(model.PositionLeftCenter), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	want := (300 - l.Visible.Height) / 2
	if l.CenterOffset.X != 0 || l.CenterOffset.Y != want || want <= 0 {
		t.Errorf("CenterOffset = %+v, want {0 %v}", l.CenterOffset, want)
	}
	if got := l.Translate(); got != l.CenterOffset {
		t.Errorf("Translate() = %+v, want %+v", got, l.CenterOffset)
	}
}

func TestComputeLargerFontShiftsRows(t *testing.T) {
	e := newTestEngine()
	data := model.Data{DataPoints: points("A"), FontSize: 12}
	l, _, err := e.Compute(data, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	delta := 16 - 32.0/3
	if !near(l.Items[0].Text.Y, 12+delta/2) {
		t.Errorf("Text.Y = %v, want %v", l.Items[0].Text.Y, 12+delta/2)
	}
	if !near(l.Items[0].Text.X, 10+5+delta) {
		t.Errorf("Text.X = %v, want %v", l.Items[0].Text.X, 15+delta)
	}
	if !near(l.Footprint.Height, 24+delta) {
		t.Errorf("Footprint.Height = %v, want %v", l.Footprint.Height, 24+delta)
	}
}

func TestComputeLongDashMarker(t *testing.T) {
	e := newTestEngine()
	pts := points("A", "B")
	pts[0].Marker = "longDash"
	l, _, err := e.Compute(model.Data{DataPoints: pts}, model.Viewport{Width: 400, Height: 50}, NewState(model.PositionTop), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	first := l.Items[0]
	if first.GlyphWidth != 15 || first.Glyph.X != 7.5 || first.Text.X != 20 {
		t.Errorf("long dash item = %+v", first)
	}
	// 6 + (15 + 5 + 10)
	if l.Items[1].Glyph.X != 36+5 {
		t.Errorf("second glyph X = %v, want 41", l.Items[1].Glyph.X)
	}
}

func TestComputeVerticalMeasureRows(t *testing.T) {
	const (
		rowHeight = 8.0*96/72 + 2*5 // default font px plus padding
		textDrop  = 8.0 * 96 / 72 * 0.35
	)
	measured := func(primary, secondary bool) model.Data {
		d := model.Data{Title: "T", PrimaryTitle: "P", SecondaryTitle: "S"}
		if primary {
			d.PrimaryType = model.PrimaryValue
		}
		for _, p := range points("a", "b", "c", "d", "e") {
			if primary {
				p.PrimaryMeasure = "1"
			}
			if secondary {
				p.SecondaryMeasure = "2"
			}
			d.DataPoints = append(d.DataPoints, p)
		}
		return d
	}

	tests := []struct {
		name  string
		data  model.Data
		rows  int
		start float64 // TopHeight/2 + title height * title rows
		want  int
	}{
		{"plain", measured(false, false), 1, 12 + 12, 5},
		{"primary", measured(true, false), 2, 12 + 2*12, 3},
		{"primary and secondary", measured(true, true), 3, 12 + 3*12, 2},
	}
	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, err := e.Compute(tt.data, model.Viewport{Width: 400, Height: 200}, NewState(model.PositionLeft), true)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if got := l.Title.Rows(); got != tt.rows {
				t.Errorf("Title.Rows() = %d, want %d", got, tt.rows)
			}
			if l.NumberOfItems != tt.want {
				t.Fatalf("NumberOfItems = %d, want %d", l.NumberOfItems, tt.want)
			}
			for k, it := range l.Items {
				y := tt.start + float64(k*tt.rows)*rowHeight
				if !near(it.Glyph.Y, y) {
					t.Errorf("item %d Glyph.Y = %v, want %v", k, it.Glyph.Y, y)
				}
				if !near(it.Text.Y, y+textDrop) {
					t.Errorf("item %d Text.Y = %v, want %v", k, it.Text.Y, y+textDrop)
				}
				row := 1
				for _, m := range []*MeasureLayout{it.Primary, it.Secondary} {
					if m == nil {
						continue
					}
					if want := it.Text.Y + float64(row)*rowHeight; !near(m.Pos.Y, want) {
						t.Errorf("item %d measure row %d Y = %v, want %v", k, row, m.Pos.Y, want)
					}
					row++
				}
				if row != tt.rows {
					t.Errorf("item %d has %d rows, want %d", k, row, tt.rows)
				}
			}
		})
	}
}

func TestComputeVerticalMeasureRowsPaging(t *testing.T) {
	data := model.Data{Title: "T", PrimaryTitle: "P", SecondaryTitle: "S", PrimaryType: model.PrimaryValue}
	for _, p := range points("a", "b", "c", "d", "e") {
		p.PrimaryMeasure, p.SecondaryMeasure = "1", "2"
		data.DataPoints = append(data.DataPoints, p)
	}
	e := newTestEngine()
	parent := model.Viewport{Width: 400, Height: 200}

	l, st, err := e.Compute(data, parent, NewState(model.PositionLeft), true)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.NumberOfItems != 2 || !l.HasNext() {
		t.Fatalf("first page: %d items, HasNext %v, want 2 and true", l.NumberOfItems, l.HasNext())
	}
	first, second := l.Items[0], l.Items[1]
	if !near(first.Glyph.Y, 48) || !near(second.Glyph.Y, 110) {
		t.Errorf("glyph Y = %v, %v, want 48, 110", first.Glyph.Y, second.Glyph.Y)
	}
	if !near(first.Primary.Pos.Y, 72.4) || !near(first.Secondary.Pos.Y, 93.0+0.2/3) {
		t.Errorf("measure Y = %v, %v, want 72.4, 93.07", first.Primary.Pos.Y, first.Secondary.Pos.Y)
	}

	l, st, err = e.Compute(data, parent, st.Advance(Increase), false)
	if err != nil {
		t.Fatalf("Compute() next page error: %v", err)
	}
	if l.StartIndex != 2 || !l.HasPrevious() {
		t.Errorf("next page StartIndex = %d, HasPrevious %v, want 2 and true", l.StartIndex, l.HasPrevious())
	}

	l, _, err = e.Compute(data, parent, st.Advance(Decrease), false)
	if err != nil {
		t.Fatalf("Compute() previous page error: %v", err)
	}
	if l.StartIndex != 0 || l.NumberOfItems != 2 {
		t.Errorf("back page = start %d with %d items, want start 0 with 2", l.StartIndex, l.NumberOfItems)
	}
}
