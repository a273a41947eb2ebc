package sqlite

import (
	"path/filepath"
	"testing"

	"taframe/internal/model"
)

func barAt(ts int64, close float64) model.Bar {
	return model.Bar{T: ts, Open: close - 1, High: close + 1, Low: close - 2, Close: close, Volume: 100}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bars.db")

	writer, err := NewWriter(WriterConfig{DBPath: dbPath})
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	if err := writer.DB().Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	// Insert out of order; ReadBars must return chronological order.
	err = writer.WriteBars("AAPL", model.Series{
		barAt(120, 103),
		barAt(0, 100),
		barAt(60, 101),
	})
	if err != nil {
		t.Fatalf("write AAPL: %v", err)
	}
	if err := writer.WriteBars("MSFT", model.Series{barAt(0, 300)}); err != nil {
		t.Fatalf("write MSFT: %v", err)
	}

	// Re-inserting an existing (symbol, ts) replaces the stored bar.
	if err := writer.WriteBars("AAPL", model.Series{barAt(60, 250)}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader, err := NewReader(dbPath)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	defer reader.Close()

	bars, err := reader.ReadBars("AAPL", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	for i, ts := range []int64{0, 60, 120} {
		if bars[i].T != ts {
			t.Errorf("bars[%d].T = %d, want %d", i, bars[i].T, ts)
		}
	}
	if bars[1].Close != 250 {
		t.Errorf("bars[1].Close = %v, want 250 (replaced on conflict)", bars[1].Close)
	}
	if bars[0] != barAt(0, 100) {
		t.Errorf("bars[0] = %+v, want %+v", bars[0], barAt(0, 100))
	}

	// afterTS filters strictly newer bars.
	tail, err := reader.ReadBars("AAPL", 59)
	if err != nil {
		t.Fatalf("read after: %v", err)
	}
	if len(tail) != 2 || tail[0].T != 60 {
		t.Errorf("afterTS=59: got %+v, want bars at 60 and 120", tail)
	}

	symbols, err := reader.Symbols()
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	if len(symbols) != 2 || symbols[0] != "AAPL" || symbols[1] != "MSFT" {
		t.Errorf("symbols = %v, want [AAPL MSFT]", symbols)
	}
}

func TestWriteBars_Empty(t *testing.T) {
	writer, err := NewWriter(WriterConfig{DBPath: filepath.Join(t.TempDir(), "bars.db")})
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	defer writer.Close()

	if err := writer.WriteBars("AAPL", nil); err != nil {
		t.Errorf("empty write: %v", err)
	}
	bars, err := writer.DB().Query(`SELECT * FROM bars`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer bars.Close()
	if bars.Next() {
		t.Error("expected no rows after empty write")
	}
}

func TestReadBars_UnknownSymbol(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bars.db")
	writer, err := NewWriter(WriterConfig{DBPath: dbPath})
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	writer.Close()

	reader, err := NewReader(dbPath)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	defer reader.Close()

	bars, err := reader.ReadBars("NONE", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("got %d bars, want 0", len(bars))
	}
}
