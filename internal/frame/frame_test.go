package frame

import (
	"strings"
	"testing"

	"taframe/internal/model"
)

func testSeries(n int) model.Series {
	s := make(model.Series, n)
	for i := range s {
		c := float64(100 + i)
		s[i] = model.Bar{T: int64(i * 60), Open: c - 1, High: c + 1, Low: c - 2, Close: c, Volume: 10}
	}
	return s
}

func TestAppendFloats_PadsFront(t *testing.T) {
	f := New(testSeries(5))
	if err := f.AppendFloats("sma_2", []float64{1.5, 2.5, 3.5}); err != nil {
		t.Fatalf("append: %v", err)
	}

	col := f.Columns()[0]
	if col.Name != "sma_2" {
		t.Errorf("name = %q", col.Name)
	}
	if len(col.Values) != 5 {
		t.Fatalf("padded len = %d, want 5", len(col.Values))
	}
	if col.Values[0] != nil || col.Values[1] != nil {
		t.Error("expected nil padding at the front")
	}
	if got := col.Values[4].(float64); got != 3.5 {
		t.Errorf("last value = %v, want 3.5 (right-aligned)", got)
	}
}

func TestAppendColumn_Errors(t *testing.T) {
	f := New(testSeries(2))
	if err := f.AppendFloats("x", []float64{1, 2, 3}); err == nil {
		t.Error("expected error for column longer than frame")
	}
	if err := f.AppendFloats("", []float64{1}); err == nil {
		t.Error("expected error for empty column name")
	}
	if err := f.AppendFloats("dup", []float64{1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := f.AppendFloats("dup", []float64{2}); err == nil {
		t.Error("expected error for duplicate column name")
	}
}

func TestClean_DropsWarmupRows(t *testing.T) {
	f := New(testSeries(5))
	if err := f.AppendFloats("a", []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := f.AppendBools("b", []bool{true, false, true, false}); err != nil {
		t.Fatal(err)
	}

	clean := f.Clean()
	if clean.Len() != 3 {
		t.Fatalf("clean len = %d, want 3", clean.Len())
	}
	// Rows 2..4 survive; alignment must hold across bars and columns.
	if clean.Bars()[0].T != 120 {
		t.Errorf("first surviving bar t = %d, want 120", clean.Bars()[0].T)
	}
	if got := clean.Columns()[0].Values[0].(float64); got != 1 {
		t.Errorf("col a[0] = %v, want 1", got)
	}
	if got := clean.Columns()[1].Values[0].(bool); got != false {
		t.Errorf("col b[0] = %v, want false", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(testSeries(4)); err != nil {
		t.Errorf("valid series rejected: %v", err)
	}

	unordered := testSeries(3)
	unordered[2].T = unordered[1].T
	if err := Validate(unordered); err == nil {
		t.Error("expected error for non-ascending timestamps")
	}

	negVol := testSeries(2)
	negVol[1].Volume = -1
	if err := Validate(negVol); err == nil {
		t.Error("expected error for negative volume")
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	f := New(testSeries(4))
	if err := f.AppendFloats("sma", []float64{100.5, 101.5}); err != nil {
		t.Fatal(err)
	}
	if err := f.AppendBools("high", []bool{true, true, false, true}); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := f.WriteCSV(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if lines[0] != "t,o,h,l,c,v,sma,high" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",,true") {
		t.Errorf("warm-up row should have empty sma cell: %q", lines[1])
	}
	if !strings.HasSuffix(lines[4], ",101.5,true") {
		t.Errorf("last row = %q", lines[4])
	}

	// Bars survive a round trip; derived columns are ignored on read.
	bars, err := ReadCSV(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(bars) != 4 {
		t.Fatalf("got %d bars, want 4", len(bars))
	}
	if bars[3] != f.Bars()[3] {
		t.Errorf("bar 3 = %+v, want %+v", bars[3], f.Bars()[3])
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("t,o,h,l,c\n0,1,1,1,1\n"))
	if err == nil || !strings.Contains(err.Error(), `"v"`) {
		t.Errorf("got %v, want missing-column error for v", err)
	}
}

func TestReadCSV_BadNumber(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("t,o,h,l,c,v\n0,1,1,1,abc,1\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("got %v, want parse error naming line 2", err)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	bars, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("got %d bars, want 0", len(bars))
	}
}
